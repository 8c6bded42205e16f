package ows11

import "encoding/xml"

type ValueType struct {
	Value string `xml:",chardata"`
}

// RangeType is a range of values, possibly with a spacing between them.
type RangeType struct {
	MinimumValue *ValueType        `xml:"MinimumValue"`
	MaximumValue *ValueType        `xml:"MaximumValue"`
	Spacing      *ValueType        `xml:"Spacing"`
	Closure      *RangeClosureType `xml:"http://www.opengis.net/ows/1.1 rangeClosure,attr,omitempty"`
}

func (r RangeType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	type plain RangeType
	if r.Closure != nil {
		text, err := r.Closure.MarshalText()
		if err != nil {
			return err
		}
		owsAttr(&start, "rangeClosure", string(text))
		r.Closure = nil
	}
	return e.EncodeElement(plain(r), start)
}

// RangeClosure returns the closure, "closed" when it was never set.
func (r *RangeType) RangeClosure() RangeClosureType {
	if r.Closure == nil {
		return DefaultRangeClosure
	}
	return *r.Closure
}

func (r *RangeType) SetRangeClosure(c RangeClosureType) {
	r.Closure = &c
}

func (r *RangeType) UnsetRangeClosure() {
	r.Closure = nil
}

func (r *RangeType) IsSetRangeClosure() bool {
	return r.Closure != nil
}

// AllowedValue is a member of the AllowedValues choice: *ValueType or *RangeType.
type AllowedValue interface {
	allowedValue()
}

func (*ValueType) allowedValue() {}
func (*RangeType) allowedValue() {}

// AllowedValuesType lists the valid values and ranges of a domain, in
// document order.
type AllowedValuesType struct {
	Group Group[AllowedValue]
}

func (t *AllowedValuesType) Value() []*ValueType {
	var res []*ValueType
	for _, v := range t.Group.Values("Value") {
		if vt, ok := v.(*ValueType); ok {
			res = append(res, vt)
		}
	}
	return res
}

func (t *AllowedValuesType) Range() []*RangeType {
	var res []*RangeType
	for _, v := range t.Group.Values("Range") {
		if r, ok := v.(*RangeType); ok {
			res = append(res, r)
		}
	}
	return res
}

func (t *AllowedValuesType) AddValue(v *ValueType) {
	t.Group.Add("Value", v)
}

func (t *AllowedValuesType) AddRange(r *RangeType) {
	t.Group.Add("Range", r)
}

func (t *AllowedValuesType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeChildren(d, func(d *xml.Decoder, se xml.StartElement) (bool, error) {
		switch se.Name.Local {
		case "Value":
			v, err := decodeNew[ValueType](d, se)
			if err == nil {
				t.AddValue(v)
			}
			return true, err
		case "Range":
			r, err := decodeNew[RangeType](d, se)
			if err == nil {
				t.AddRange(r)
			}
			return true, err
		}
		return false, nil
	})
}

func (t AllowedValuesType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeWrapped(e, start, func() error {
		for _, m := range t.Group {
			if err := e.EncodeElement(m.Value, childStart(m.Name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// AnyValueType says that any value is valid.
type AnyValueType struct{}

// NoValuesType says that no value is allowed.
type NoValuesType struct{}

// ValuesReferenceType references an externally specified list of values.
type ValuesReferenceType struct {
	Value     string `xml:",chardata"`
	Reference string `xml:"http://www.opengis.net/ows/1.1 reference,attr"`
}

func (v ValuesReferenceType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	owsAttr(&start, "reference", v.Reference)
	return e.EncodeElement(chardata{v.Value}, start)
}

// DomainMetadataType is a value with an optional reference to more
// information about it.
type DomainMetadataType struct {
	Value     string `xml:",chardata"`
	Reference string `xml:"http://www.opengis.net/ows/1.1 reference,attr,omitempty"`
}

func (v DomainMetadataType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if v.Reference != "" {
		owsAttr(&start, "reference", v.Reference)
	}
	return e.EncodeElement(chardata{v.Value}, start)
}

type chardata struct {
	Value string `xml:",chardata"`
}

// UnNamedDomainType is the valid domain of a quantity: its possible
// values, default, meaning, data type, unit and reference system.
type UnNamedDomainType struct {
	AllowedValues   *AllowedValuesType   `xml:"AllowedValues"`
	AnyValue        *AnyValueType        `xml:"AnyValue"`
	NoValues        *NoValuesType        `xml:"NoValues"`
	ValuesReference *ValuesReferenceType `xml:"ValuesReference"`
	DefaultValue    *ValueType           `xml:"DefaultValue"`
	Meaning         *DomainMetadataType  `xml:"Meaning"`
	DataType        *DomainMetadataType  `xml:"DataType"`
	UOM             *DomainMetadataType  `xml:"UOM"`
	ReferenceSystem *DomainMetadataType  `xml:"ReferenceSystem"`
	Metadata        []MetadataType       `xml:"Metadata"`
}

// DomainType is a named UnNamedDomainType.
type DomainType struct {
	UnNamedDomainType
	Name string `xml:"name,attr"`
}
