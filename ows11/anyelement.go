package ows11

import (
	"bytes"
	"encoding/xml"

	"aqwari.net/xml/xmltree"
)

// AnyElement holds wildcard content: an element of any namespace kept
// with its attributes and inner XML. Inner elements carry their own
// namespace declarations, so the content stays valid out of context.
type AnyElement struct {
	XMLName  xml.Name
	Attr     []xml.Attr
	InnerXML []byte
}

type rawElement struct {
	Attr  []xml.Attr `xml:",any,attr"`
	Inner []byte     `xml:",innerxml"`
}

func (a *AnyElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	a.XMLName = start.Name
	a.Attr = declaredAttrs(start.Attr)

	buf := bytes.Buffer{}
	enc := xml.NewEncoder(&buf)
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			t.Attr = declaredAttrs(t.Attr)
			tok = t
		case xml.EndElement:
			if depth == 0 {
				if err := enc.Flush(); err != nil {
					return err
				}
				a.InnerXML = buf.Bytes()
				return nil
			}
			depth--
		}
		if err := enc.EncodeToken(xml.CopyToken(tok)); err != nil {
			return err
		}
	}
}

// declaredAttrs drops the default namespace declaration, the encoder
// writes it from the element name. Prefix declarations stay as plain
// attributes, and attributes in a namespace declared on the same element
// keep that prefix so the encoder does not declare it a second time.
func declaredAttrs(attrs []xml.Attr) []xml.Attr {
	prefixes := map[string]string{}
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" {
			prefixes[attr.Value] = attr.Name.Local
		}
	}
	var res []xml.Attr
	for _, attr := range attrs {
		switch prefix := prefixes[attr.Name.Space]; {
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
		case attr.Name.Space == "xmlns":
			res = append(res, xml.Attr{Name: xml.Name{Local: "xmlns:" + attr.Name.Local}, Value: attr.Value})
		case attr.Name.Space != "" && prefix != "":
			res = append(res, xml.Attr{Name: xml.Name{Local: prefix + ":" + attr.Name.Local}, Value: attr.Value})
		default:
			res = append(res, attr)
		}
	}
	return res
}

func (a AnyElement) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if a.XMLName.Local != "" {
		start.Name = a.XMLName
	}
	raw := rawElement{
		Attr:  append(start.Attr, a.Attr...),
		Inner: a.InnerXML,
	}
	start.Attr = nil
	return e.EncodeElement(raw, start)
}

// Tree parses the element into a navigable tree.
func (a *AnyElement) Tree() (*xmltree.Element, error) {
	doc, err := xml.Marshal(a)
	if err != nil {
		return nil, err
	}
	return xmltree.Parse(doc)
}
