package ows11

import "encoding/xml"

// AbstractReferenceBaseType is the common xlink part of references.
type AbstractReferenceBaseType struct {
	Actuate   string  `xml:"http://www.w3.org/1999/xlink actuate,attr,omitempty"`
	Arcrole   string  `xml:"http://www.w3.org/1999/xlink arcrole,attr,omitempty"`
	Href      string  `xml:"http://www.w3.org/1999/xlink href,attr"`
	Role      string  `xml:"http://www.w3.org/1999/xlink role,attr,omitempty"`
	Show      string  `xml:"http://www.w3.org/1999/xlink show,attr,omitempty"`
	Title     string  `xml:"http://www.w3.org/1999/xlink title,attr,omitempty"`
	XLinkType *string `xml:"http://www.w3.org/1999/xlink type,attr,omitempty"`
}

// Type returns the xlink:type, "simple" when it was never set.
func (t *AbstractReferenceBaseType) Type() string {
	if t.XLinkType == nil {
		return DefaultXLinkType
	}
	return *t.XLinkType
}

func (t *AbstractReferenceBaseType) SetType(v string) {
	t.XLinkType = &v
}

func (t *AbstractReferenceBaseType) UnsetType() {
	t.XLinkType = nil
}

func (t *AbstractReferenceBaseType) IsSetType() bool {
	return t.XLinkType != nil
}

func (t *AbstractReferenceBaseType) RefBase() *AbstractReferenceBaseType {
	return t
}

// ReferenceBase is a member of the AbstractReferenceBase substitution
// group: *ReferenceType or *ServiceReferenceType.
type ReferenceBase interface {
	RefBase() *AbstractReferenceBaseType
}

// ReferenceType is a reference to a remote resource or local payload.
type ReferenceType struct {
	AbstractReferenceBaseType
	Identifier *CodeType            `xml:"Identifier"`
	Abstract   []LanguageStringType `xml:"Abstract"`
	Format     *MimeType            `xml:"Format"`
	Metadata   []MetadataType       `xml:"Metadata"`
}

func (t *ReferenceType) Ref() *ReferenceType {
	return t
}

// ServiceReferenceType is a reference to a resource produced by a service
// request, with the request itself or a reference to it.
type ServiceReferenceType struct {
	ReferenceType
	RequestMessage          *AnyElement `xml:"RequestMessage"`
	RequestMessageReference *string     `xml:"RequestMessageReference"`
}

// ReferenceGroupType is a logical group of references.
type ReferenceGroupType struct {
	BasicIdentificationType
	AbstractReferenceBaseGroup Group[ReferenceBase]
}

func (t *ReferenceGroupType) AbstractReferenceBase() []*AbstractReferenceBaseType {
	var res []*AbstractReferenceBaseType
	for _, m := range t.AbstractReferenceBaseGroup {
		if m.Value != nil {
			res = append(res, m.Value.RefBase())
		}
	}
	return res
}

// Reference returns every reference of the group, service references included.
func (t *ReferenceGroupType) Reference() []*ReferenceType {
	var res []*ReferenceType
	for _, m := range t.AbstractReferenceBaseGroup {
		if r, ok := m.Value.(interface{ Ref() *ReferenceType }); ok {
			res = append(res, r.Ref())
		}
	}
	return res
}

func (t *ReferenceGroupType) ServiceReference() []*ServiceReferenceType {
	var res []*ServiceReferenceType
	for _, v := range t.AbstractReferenceBaseGroup.Values("ServiceReference") {
		if s, ok := v.(*ServiceReferenceType); ok {
			res = append(res, s)
		}
	}
	return res
}

func (t *ReferenceGroupType) AddReference(r *ReferenceType) {
	t.AbstractReferenceBaseGroup.Add("Reference", r)
}

func (t *ReferenceGroupType) AddServiceReference(s *ServiceReferenceType) {
	t.AbstractReferenceBaseGroup.Add("ServiceReference", s)
}

func (t *ReferenceGroupType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeChildren(d, func(d *xml.Decoder, se xml.StartElement) (bool, error) {
		switch se.Name.Local {
		case "Reference":
			r, err := decodeNew[ReferenceType](d, se)
			if err == nil {
				t.AddReference(r)
			}
			return true, err
		case "ServiceReference":
			s, err := decodeNew[ServiceReferenceType](d, se)
			if err == nil {
				t.AddServiceReference(s)
			}
			return true, err
		}
		return t.BasicIdentificationType.decodeChild(d, se)
	})
}

func (t ReferenceGroupType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeWrapped(e, start, func() error {
		if err := t.BasicIdentificationType.encodeChildren(e); err != nil {
			return err
		}
		for _, m := range t.AbstractReferenceBaseGroup {
			if m.Value == nil {
				continue
			}
			if err := e.EncodeElement(m.Value, childStart(m.Name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ManifestType is an unordered list of reference groups.
type ManifestType struct {
	BasicIdentificationType
	ReferenceGroup []ReferenceGroupType `xml:"ReferenceGroup"`
}
