package ows11

import "encoding/xml"

// OperationsMetadataType describes the operations a server implements.
type OperationsMetadataType struct {
	Operation            []OperationType `xml:"Operation"`
	Parameter            []DomainType    `xml:"Parameter"`
	Constraint           []DomainType    `xml:"Constraint"`
	ExtendedCapabilities *AnyElement     `xml:"ExtendedCapabilities"`
}

// OperationByName returns the operation with the given name or nil.
func (t *OperationsMetadataType) OperationByName(name string) *OperationType {
	for i := range t.Operation {
		if t.Operation[i].Name == name {
			return &t.Operation[i]
		}
	}
	return nil
}

type OperationType struct {
	DCP        []DCPType      `xml:"DCP"`
	Parameter  []DomainType   `xml:"Parameter"`
	Constraint []DomainType   `xml:"Constraint"`
	Metadata   []MetadataType `xml:"Metadata"`
	Name       string         `xml:"name,attr"`
}

// DCPType is a distributed computing platform; only HTTP is defined.
type DCPType struct {
	HTTP *HTTPType `xml:"HTTP"`
}

// RequestMethodType is a connect point URL with optional constraints.
type RequestMethodType struct {
	OnlineResourceType
	Constraint []DomainType `xml:"Constraint"`
}

// HTTPType holds the Get and Post request methods in document order.
type HTTPType struct {
	Group Group[*RequestMethodType]
}

func (t *HTTPType) Get() []*RequestMethodType {
	return t.Group.Values("Get")
}

func (t *HTTPType) Post() []*RequestMethodType {
	return t.Group.Values("Post")
}

func (t *HTTPType) AddGet(m *RequestMethodType) {
	t.Group.Add("Get", m)
}

func (t *HTTPType) AddPost(m *RequestMethodType) {
	t.Group.Add("Post", m)
}

func (t *HTTPType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return decodeChildren(d, func(d *xml.Decoder, se xml.StartElement) (bool, error) {
		switch se.Name.Local {
		case "Get", "Post":
			m, err := decodeNew[RequestMethodType](d, se)
			if err == nil {
				t.Group.Add(se.Name.Local, m)
			}
			return true, err
		}
		return false, nil
	})
}

func (t HTTPType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeWrapped(e, start, func() error {
		for _, m := range t.Group {
			if err := encodeOpt(e, m.Name, m.Value); err != nil {
				return err
			}
		}
		return nil
	})
}
