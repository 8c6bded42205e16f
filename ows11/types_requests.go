package ows11

// GetCapabilitiesType is a GetCapabilities request.
type GetCapabilitiesType struct {
	AcceptVersions *AcceptVersionsType `xml:"AcceptVersions"`
	Sections       *SectionsType       `xml:"Sections"`
	AcceptFormats  *AcceptFormatsType  `xml:"AcceptFormats"`
	UpdateSequence UpdateSequenceType  `xml:"updateSequence,attr,omitempty"`

	// Request processing state, never encoded.
	BaseURL            string         `xml:"-"`
	Namespace          string         `xml:"-"`
	ExtendedProperties map[string]any `xml:"-"`
}

// AcceptVersionsType lists the versions a client accepts, preferred first.
type AcceptVersionsType struct {
	Version []VersionType `xml:"Version"`
}

type AcceptFormatsType struct {
	OutputFormat []MimeType `xml:"OutputFormat"`
}

type SectionsType struct {
	Section []string `xml:"Section"`
}

// GetResourceByIdType requests resources by identifier.
type GetResourceByIdType struct {
	ResourceID   []string    `xml:"ResourceID"`
	OutputFormat *MimeType   `xml:"OutputFormat"`
	Service      ServiceType `xml:"service,attr"`
	Version      VersionType `xml:"version,attr"`
}
