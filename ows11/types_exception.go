package ows11

// ExceptionReportType reports one or more errors to a client.
type ExceptionReportType struct {
	Exception []ExceptionType `xml:"Exception"`
	Lang      string          `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Version   VersionType     `xml:"version,attr"`
}

type ExceptionType struct {
	ExceptionText []string `xml:"ExceptionText"`
	ExceptionCode string   `xml:"exceptionCode,attr"`
	Locator       string   `xml:"locator,attr,omitempty"`
}
