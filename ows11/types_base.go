package ows11

import "encoding/xml"

// CodeType is a name or code with an optional authority (codeSpace).
type CodeType struct {
	Value     string `xml:",chardata"`
	CodeSpace string `xml:"codeSpace,attr,omitempty"`
}

// LanguageStringType is text in a language identified by xml:lang.
type LanguageStringType struct {
	Value string `xml:",chardata"`
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
}

type KeywordsType struct {
	Keyword []LanguageStringType `xml:"Keyword"`
	Type    *CodeType            `xml:"Type"`
}

// DescriptionType is the human readable description of a subject.
type DescriptionType struct {
	Title    []LanguageStringType `xml:"Title"`
	Abstract []LanguageStringType `xml:"Abstract"`
	Keywords []KeywordsType       `xml:"Keywords"`
}

func (t *DescriptionType) decodeChild(d *xml.Decoder, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "Title":
		return true, decodeAppend(d, se, &t.Title)
	case "Abstract":
		return true, decodeAppend(d, se, &t.Abstract)
	case "Keywords":
		return true, decodeAppend(d, se, &t.Keywords)
	}
	return false, nil
}

func (t *DescriptionType) encodeChildren(e *xml.Encoder) error {
	if err := encodeList(e, "Title", t.Title); err != nil {
		return err
	}
	if err := encodeList(e, "Abstract", t.Abstract); err != nil {
		return err
	}
	return encodeList(e, "Keywords", t.Keywords)
}

// BasicIdentificationType adds an identifier and metadata to a description.
type BasicIdentificationType struct {
	DescriptionType
	Identifier *CodeType      `xml:"Identifier"`
	Metadata   []MetadataType `xml:"Metadata"`
}

func (t *BasicIdentificationType) decodeChild(d *xml.Decoder, se xml.StartElement) (bool, error) {
	switch se.Name.Local {
	case "Identifier":
		v, err := decodeNew[CodeType](d, se)
		t.Identifier = v
		return true, err
	case "Metadata":
		return true, decodeAppend(d, se, &t.Metadata)
	}
	return t.DescriptionType.decodeChild(d, se)
}

func (t *BasicIdentificationType) encodeChildren(e *xml.Encoder) error {
	if err := t.DescriptionType.encodeChildren(e); err != nil {
		return err
	}
	if err := encodeOpt(e, "Identifier", t.Identifier); err != nil {
		return err
	}
	return encodeList(e, "Metadata", t.Metadata)
}

// XLinkAttrs is the xlink simple link attribute set.
type XLinkAttrs struct {
	Actuate string `xml:"http://www.w3.org/1999/xlink actuate,attr,omitempty"`
	Arcrole string `xml:"http://www.w3.org/1999/xlink arcrole,attr,omitempty"`
	Href    string `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	Role    string `xml:"http://www.w3.org/1999/xlink role,attr,omitempty"`
	Show    string `xml:"http://www.w3.org/1999/xlink show,attr,omitempty"`
	Title   string `xml:"http://www.w3.org/1999/xlink title,attr,omitempty"`
	Type    string `xml:"http://www.w3.org/1999/xlink type,attr,omitempty"`
}

// MetadataType references or contains metadata about its parent.
type MetadataType struct {
	AbstractMetaData *AnyElement `xml:",any"`
	XLinkAttrs
	About string `xml:"about,attr,omitempty"`
}

// OnlineResourceType is a reference to an online resource.
type OnlineResourceType struct {
	XLinkAttrs
}
