package ows11

const (
	Namespace       = "http://www.opengis.net/ows/1.1"
	NamespacePrefix = "ows"

	XLinkNamespace = "http://www.w3.org/1999/xlink"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
)

const (
	// Unbounded is the upper bound of a repeatable feature.
	Unbounded = -1
	// Unspecified is the upper bound of a document root element: the
	// element may appear any number of times in documents, but the slot
	// itself holds at most one value.
	Unspecified = -2
)

const (
	DefaultRangeClosure = RangeClosureClosed
	DefaultXLinkType    = "simple"
)

// Section names accepted in GetCapabilities requests.
const (
	SectionServiceIdentification = "ServiceIdentification"
	SectionServiceProvider       = "ServiceProvider"
	SectionOperationsMetadata    = "OperationsMetadata"
	SectionContents              = "Contents"
	SectionAll                   = "All"
)

var allSections = []string{
	SectionServiceIdentification,
	SectionServiceProvider,
	SectionOperationsMetadata,
	SectionContents,
	SectionAll,
}
