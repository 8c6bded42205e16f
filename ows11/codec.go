package ows11

import "encoding/xml"

// childFunc decodes one child element; it reports false when the
// element is not one it knows.
type childFunc func(d *xml.Decoder, se xml.StartElement) (bool, error)

// decodeChildren consumes the content of the current element, handing
// every child to fn and skipping the ones it does not know.
func decodeChildren(d *xml.Decoder, fn childFunc) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			ok, err := fn(d, t)
			if err != nil {
				return err
			}
			if !ok {
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func decodeAppend[T any](d *xml.Decoder, se xml.StartElement, list *[]T) error {
	var v T
	if err := d.DecodeElement(&v, &se); err != nil {
		return err
	}
	*list = append(*list, v)
	return nil
}

func decodeNew[T any](d *xml.Decoder, se xml.StartElement) (*T, error) {
	v := new(T)
	if err := d.DecodeElement(v, &se); err != nil {
		return nil, err
	}
	return v, nil
}

func childStart(local string) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: local}}
}

func encodeList[T any](e *xml.Encoder, local string, list []T) error {
	for i := range list {
		if err := e.EncodeElement(&list[i], childStart(local)); err != nil {
			return err
		}
	}
	return nil
}

func encodeOpt[T any](e *xml.Encoder, local string, v *T) error {
	if v == nil {
		return nil
	}
	return e.EncodeElement(v, childStart(local))
}

// encodeWrapped writes start, the content produced by body and the
// matching end element.
func encodeWrapped(e *xml.Encoder, start xml.StartElement, body func() error) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := body(); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// owsAttr adds an attribute of the ows namespace written under the ows
// prefix, declaring the prefix on start unless start already binds it.
func owsAttr(start *xml.StartElement, local, value string) {
	bound := ""
	for _, attr := range start.Attr {
		if attr.Name.Space == "" && attr.Name.Local == "xmlns:"+NamespacePrefix {
			bound = attr.Value
		}
	}
	switch bound {
	case Namespace:
	case "":
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:" + NamespacePrefix}, Value: Namespace})
	default:
		// ows is bound to another namespace here, the encoder picks a prefix
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Space: Namespace, Local: local}, Value: value})
		return
	}
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: NamespacePrefix + ":" + local}, Value: value})
}
