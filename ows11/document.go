package ows11

// MixedKind tells what a MixedEntry holds.
type MixedKind int

const (
	MixedText MixedKind = iota
	MixedComment
	MixedProcInst
	MixedDirective
	// MixedRoot marks the position of the root element.
	MixedRoot
)

// MixedEntry is a top level node of a document other than the root
// element: text, a comment, a processing instruction or a directive.
type MixedEntry struct {
	Kind   MixedKind
	Target string // processing instruction target
	Data   string
}

// DocumentRoot is a complete OWS document. It holds exactly one root
// element: setting any element accessor replaces the current root.
type DocumentRoot struct {
	Mixed             []MixedEntry
	XMLNSPrefixMap    map[string]string
	XSISchemaLocation map[string]string
	Closure           *RangeClosureType
	ReferenceAttr     string

	root Member[any]
}

// Root returns the root element name and value; the name is empty when
// the document has no root.
func (d *DocumentRoot) Root() (string, any) {
	return d.root.Name, d.root.Value
}

// ClearRoot removes the root element.
func (d *DocumentRoot) ClearRoot() {
	d.root = Member[any]{}
}

func (d *DocumentRoot) RangeClosure() RangeClosureType {
	if d.Closure == nil {
		return DefaultRangeClosure
	}
	return *d.Closure
}

func (d *DocumentRoot) SetRangeClosure(c RangeClosureType) {
	d.Closure = &c
}

func (d *DocumentRoot) UnsetRangeClosure() {
	d.Closure = nil
}

func (d *DocumentRoot) IsSetRangeClosure() bool {
	return d.Closure != nil
}

func rootElement[T any](d *DocumentRoot, name string) T {
	var zero T
	if d.root.Name != name {
		return zero
	}
	if v, ok := d.root.Value.(T); ok {
		return v
	}
	return zero
}

func setRootElement[T comparable](d *DocumentRoot, name string, v T) {
	var zero T
	if v == zero {
		if d.root.Name == name {
			d.ClearRoot()
		}
		return
	}
	d.root = Member[any]{Name: name, Value: v}
}
