package ows11

import "encoding/xml"

// ServiceIdentificationType is the metadata about a specific server.
type ServiceIdentificationType struct {
	DescriptionType
	ServiceType        *CodeType     `xml:"ServiceType"`
	ServiceTypeVersion []VersionType `xml:"ServiceTypeVersion"`
	Profile            []string      `xml:"Profile"`
	Fees               *string       `xml:"Fees"`
	AccessConstraints  []string      `xml:"AccessConstraints"`
}

// CapabilitiesBaseType is the common part of every GetCapabilities response.
type CapabilitiesBaseType struct {
	ServiceIdentification *ServiceIdentificationType `xml:"ServiceIdentification"`
	ServiceProvider       *ServiceProviderType       `xml:"ServiceProvider"`
	OperationsMetadata    *OperationsMetadataType    `xml:"OperationsMetadata"`
	UpdateSequence        UpdateSequenceType         `xml:"updateSequence,attr,omitempty"`
	Version               VersionType                `xml:"version,attr"`
}

type ContentsBaseType struct {
	DatasetDescriptionSummary []DatasetDescriptionSummaryBaseType `xml:"DatasetDescriptionSummary"`
	OtherSource               []MetadataType                      `xml:"OtherSource"`
}

// BoundingBoxType is a minimum bounding rectangle in a given CRS.
type BoundingBoxType struct {
	LowerCorner PositionType `xml:"LowerCorner"`
	UpperCorner PositionType `xml:"UpperCorner"`
	CRS         string       `xml:"crs,attr,omitempty"`
	Dimensions  int          `xml:"dimensions,attr,omitempty"`
}

// Box returns the bounding box itself; WGS84BoundingBoxType promotes it.
func (b *BoundingBoxType) Box() *BoundingBoxType {
	return b
}

// WGS84BoundingBoxType is a bounding box in WGS 84 longitude/latitude.
type WGS84BoundingBoxType struct {
	BoundingBoxType
}

// BoundingBox is a member of the BoundingBox substitution group:
// *BoundingBoxType or *WGS84BoundingBoxType.
type BoundingBox interface {
	Box() *BoundingBoxType
}

func boundingBoxes(g Group[BoundingBox]) []*BoundingBoxType {
	var res []*BoundingBoxType
	for _, m := range g {
		if m.Value != nil {
			res = append(res, m.Value.Box())
		}
	}
	return res
}

func wgs84BoundingBoxes(g Group[BoundingBox]) []*WGS84BoundingBoxType {
	var res []*WGS84BoundingBoxType
	for _, v := range g.Values("WGS84BoundingBox") {
		if w, ok := v.(*WGS84BoundingBoxType); ok {
			res = append(res, w)
		}
	}
	return res
}

func decodeBoundingBox(d *xml.Decoder, se xml.StartElement, g *Group[BoundingBox]) (bool, error) {
	switch se.Name.Local {
	case "BoundingBox":
		b, err := decodeNew[BoundingBoxType](d, se)
		if err == nil {
			g.Add(se.Name.Local, b)
		}
		return true, err
	case "WGS84BoundingBox":
		w, err := decodeNew[WGS84BoundingBoxType](d, se)
		if err == nil {
			g.Add(se.Name.Local, w)
		}
		return true, err
	}
	return false, nil
}

func encodeBoundingBoxes(e *xml.Encoder, g Group[BoundingBox]) error {
	for _, m := range g {
		if m.Value == nil {
			continue
		}
		if err := e.EncodeElement(m.Value, childStart(m.Name)); err != nil {
			return err
		}
	}
	return nil
}

// IdentificationType is the general identification of a dataset or
// dataset series.
type IdentificationType struct {
	BasicIdentificationType
	BoundingBoxGroup  Group[BoundingBox]
	OutputFormat      []MimeType
	AvailableCRSGroup Group[string]
}

// BoundingBox returns every bounding box of the group, WGS 84 ones included.
func (t *IdentificationType) BoundingBox() []*BoundingBoxType {
	return boundingBoxes(t.BoundingBoxGroup)
}

func (t *IdentificationType) WGS84BoundingBox() []*WGS84BoundingBoxType {
	return wgs84BoundingBoxes(t.BoundingBoxGroup)
}

func (t *IdentificationType) AddBoundingBox(b *BoundingBoxType) {
	t.BoundingBoxGroup.Add("BoundingBox", b)
}

func (t *IdentificationType) AddWGS84BoundingBox(w *WGS84BoundingBoxType) {
	t.BoundingBoxGroup.Add("WGS84BoundingBox", w)
}

// AvailableCRS returns every CRS of the group, SupportedCRS ones included.
func (t *IdentificationType) AvailableCRS() []string {
	return t.AvailableCRSGroup.Values()
}

func (t *IdentificationType) SupportedCRS() []string {
	return t.AvailableCRSGroup.Values("SupportedCRS")
}

func (t *IdentificationType) AddAvailableCRS(crs string) {
	t.AvailableCRSGroup.Add("AvailableCRS", crs)
}

func (t *IdentificationType) AddSupportedCRS(crs string) {
	t.AvailableCRSGroup.Add("SupportedCRS", crs)
}

func (t *IdentificationType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeChildren(d, func(d *xml.Decoder, se xml.StartElement) (bool, error) {
		if ok, err := decodeBoundingBox(d, se, &t.BoundingBoxGroup); ok {
			return ok, err
		}
		switch se.Name.Local {
		case "OutputFormat":
			return true, decodeAppend(d, se, &t.OutputFormat)
		case "AvailableCRS", "SupportedCRS":
			var crs string
			if err := d.DecodeElement(&crs, &se); err != nil {
				return true, err
			}
			t.AvailableCRSGroup.Add(se.Name.Local, crs)
			return true, nil
		}
		return t.BasicIdentificationType.decodeChild(d, se)
	})
}

func (t IdentificationType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeWrapped(e, start, func() error {
		if err := t.BasicIdentificationType.encodeChildren(e); err != nil {
			return err
		}
		if err := encodeBoundingBoxes(e, t.BoundingBoxGroup); err != nil {
			return err
		}
		if err := encodeList(e, "OutputFormat", t.OutputFormat); err != nil {
			return err
		}
		for _, m := range t.AvailableCRSGroup {
			if err := e.EncodeElement(m.Value, childStart(m.Name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// DatasetDescriptionSummaryBaseType is the typical description of a
// dataset in a Contents section; summaries nest for dataset series.
type DatasetDescriptionSummaryBaseType struct {
	DescriptionType
	WGS84BoundingBox          []WGS84BoundingBoxType
	Identifier                *CodeType
	BoundingBoxGroup          Group[BoundingBox]
	Metadata                  []MetadataType
	DatasetDescriptionSummary []DatasetDescriptionSummaryBaseType
}

// BoundingBox returns every bounding box of the group.
func (t *DatasetDescriptionSummaryBaseType) BoundingBox() []*BoundingBoxType {
	return boundingBoxes(t.BoundingBoxGroup)
}

func (t *DatasetDescriptionSummaryBaseType) AddBoundingBox(b *BoundingBoxType) {
	t.BoundingBoxGroup.Add("BoundingBox", b)
}

func (t *DatasetDescriptionSummaryBaseType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	identified := false
	return decodeChildren(d, func(d *xml.Decoder, se xml.StartElement) (bool, error) {
		switch se.Name.Local {
		case "WGS84BoundingBox":
			if !identified {
				return true, decodeAppend(d, se, &t.WGS84BoundingBox)
			}
		case "Identifier":
			identified = true
			v, err := decodeNew[CodeType](d, se)
			t.Identifier = v
			return true, err
		case "Metadata":
			return true, decodeAppend(d, se, &t.Metadata)
		case "DatasetDescriptionSummary":
			return true, decodeAppend(d, se, &t.DatasetDescriptionSummary)
		}
		if ok, err := decodeBoundingBox(d, se, &t.BoundingBoxGroup); ok {
			return ok, err
		}
		return t.DescriptionType.decodeChild(d, se)
	})
}

func (t DatasetDescriptionSummaryBaseType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeWrapped(e, start, func() error {
		if err := t.DescriptionType.encodeChildren(e); err != nil {
			return err
		}
		if err := encodeList(e, "WGS84BoundingBox", t.WGS84BoundingBox); err != nil {
			return err
		}
		if err := encodeOpt(e, "Identifier", t.Identifier); err != nil {
			return err
		}
		if err := encodeBoundingBoxes(e, t.BoundingBoxGroup); err != nil {
			return err
		}
		if err := encodeList(e, "Metadata", t.Metadata); err != nil {
			return err
		}
		return encodeList(e, "DatasetDescriptionSummary", t.DatasetDescriptionSummary)
	})
}
