package ows11

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
)

// ClassID identifies a class of the package.
type ClassID int

const noClass ClassID = -1

// FeatureID identifies a structural feature within a class. Inherited
// features keep the identifiers of the class declaring them, so a
// subclass numbers its own features from its base's feature count.
type FeatureID int

type FeatureKind int

const (
	FeatureAttribute FeatureKind = iota
	FeatureElement
	// FeatureSimple is the text content of a simple content type.
	FeatureSimple
	// FeatureGroup is a substitution group slot.
	FeatureGroup
	FeatureWildcard
	FeatureMixed
	FeatureMap
	// FeatureTransient is never written to documents.
	FeatureTransient
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureAttribute:
		return "attribute"
	case FeatureElement:
		return "element"
	case FeatureSimple:
		return "simple"
	case FeatureGroup:
		return "group"
	case FeatureWildcard:
		return "wildcard"
	case FeatureMixed:
		return "mixed"
	case FeatureMap:
		return "map"
	case FeatureTransient:
		return "transient"
	}
	return fmt.Sprintf("FeatureKind(%d)", int(k))
}

// GroupMember is an element allowed in a substitution group slot.
type GroupMember struct {
	Name string
	Type string
}

// Feature describes an attribute or element of a class.
type Feature struct {
	ID      FeatureID
	Name    string
	XMLName xml.Name
	Kind    FeatureKind
	// Type is a class name or a data type name.
	Type  string
	Lower int
	// Upper is a count, Unbounded or Unspecified.
	Upper      int
	Default    string
	Unsettable bool
	// Derived features are read only views computed from Group.
	Derived     bool
	Group       string
	Members     []GroupMember
	Containment bool

	// Field is the Go struct field holding the value.
	Field string
	// Accessor is the Go method base name used instead of, or on top of, Field.
	Accessor string
}

func (f *Feature) Many() bool {
	return f.Upper == Unbounded || f.Upper > 1
}

func (f *Feature) Required() bool {
	return f.Lower > 0
}

func (f *Feature) named(name string) *Feature {
	f.Name = name
	return f
}

func (f *Feature) withField(field string) *Feature {
	f.Field = field
	return f
}

func (f *Feature) unsettable(def, accessor string) *Feature {
	f.Default = def
	f.Unsettable = true
	f.Accessor = accessor
	return f
}

func attribute(id FeatureID, space, local, typ string, lower int) *Feature {
	return &Feature{ID: id, Name: local, XMLName: xml.Name{Space: space, Local: local},
		Kind: FeatureAttribute, Type: typ, Lower: lower, Upper: 1, Field: upperFirst(local)}
}

func element(id FeatureID, local, typ string, lower, upper int) *Feature {
	return &Feature{ID: id, Name: lowerFirst(local), XMLName: xml.Name{Space: Namespace, Local: local},
		Kind: FeatureElement, Type: typ, Lower: lower, Upper: upper, Field: local}
}

func simpleContent(id FeatureID, typ string) *Feature {
	return &Feature{ID: id, Name: "value", Kind: FeatureSimple, Type: typ, Upper: 1, Field: "Value"}
}

func group(id FeatureID, name string, lower int, members ...GroupMember) *Feature {
	return &Feature{ID: id, Name: name, Kind: FeatureGroup, Type: "FeatureMapEntry",
		Lower: lower, Upper: Unbounded, Members: members, Field: upperFirst(name)}
}

func view(id FeatureID, local, typ, group string, lower int) *Feature {
	return &Feature{ID: id, Name: lowerFirst(local), XMLName: xml.Name{Space: Namespace, Local: local},
		Kind: FeatureElement, Type: typ, Lower: lower, Upper: Unbounded, Derived: true, Group: group, Accessor: local}
}

func wildcard(id FeatureID, name, local string) *Feature {
	f := &Feature{ID: id, Name: name, Kind: FeatureWildcard, Type: "AnyElement", Upper: 1, Field: upperFirst(name)}
	if local != "" {
		f.XMLName = xml.Name{Space: Namespace, Local: local}
	}
	return f
}

func transient(id FeatureID, name, typ string) *Feature {
	return &Feature{ID: id, Name: name, Kind: FeatureTransient, Type: typ, Upper: 1, Field: upperFirst(name)}
}

func mixed(id FeatureID, name string) *Feature {
	return &Feature{ID: id, Name: name, Kind: FeatureMixed, Type: "FeatureMapEntry", Upper: Unbounded, Field: upperFirst(name)}
}

func stringMap(id FeatureID, name string) *Feature {
	return &Feature{ID: id, Name: name, Kind: FeatureMap, Type: "StringToStringMap", Upper: Unbounded, Field: upperFirst(name)}
}

func globalElement(id FeatureID, local, typ string) *Feature {
	kind := FeatureElement
	if typ == "AnyElement" {
		kind = FeatureWildcard
	}
	return &Feature{ID: id, Name: lowerFirst(local), XMLName: xml.Name{Space: Namespace, Local: local},
		Kind: kind, Type: typ, Upper: Unspecified, Accessor: local}
}

type classDef struct {
	id           ClassID
	name         string
	super        ClassID
	goType       reflect.Type
	features     []*Feature
	restrictions map[FeatureID]string
}

// Class describes one complex type.
type Class struct {
	ID    ClassID
	Name  string
	Super *Class

	features     []*Feature
	restrictions map[FeatureID]string
	goType       reflect.Type
}

// Features returns the features of the class, inherited ones first.
func (c *Class) Features() []*Feature {
	return c.features
}

func (c *Class) FeatureCount() int {
	return len(c.features)
}

// Feature returns the feature with the given identifier or nil.
func (c *Class) Feature(id FeatureID) *Feature {
	if id < 0 || int(id) >= len(c.features) {
		return nil
	}
	return c.features[id]
}

func (c *Class) FeatureByName(name string) *Feature {
	for _, f := range c.features {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FeatureType returns the data type of the feature value in this class,
// taking restrictions into account.
func (c *Class) FeatureType(f *Feature) string {
	for cls := c; cls != nil; cls = cls.Super {
		if t, ok := cls.restrictions[f.ID]; ok {
			return t
		}
	}
	return f.Type
}

// IsSubclassOf reports whether c is other or derives from it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for cls := c; cls != nil; cls = cls.Super {
		if cls == other {
			return true
		}
	}
	return false
}

func (c *Class) GoType() reflect.Type {
	return c.goType
}

// Layout renders the feature layout of the class, one feature per line.
func (c *Class) Layout() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%s (%d)", c.Name, c.ID))
	if c.Super != nil {
		sb.WriteString(" extends " + c.Super.Name)
	}
	sb.WriteString("\n")
	for _, f := range c.features {
		sb.WriteString(fmt.Sprintf("  %d %s %s %s %s", f.ID, f.Name, f.Kind, c.FeatureType(f), bounds(f)))
		if f.Default != "" {
			sb.WriteString(" default=" + f.Default)
		}
		if f.Unsettable {
			sb.WriteString(" unsettable")
		}
		if f.Derived {
			sb.WriteString(" derived")
		}
		if f.Containment {
			sb.WriteString(" containment")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func bounds(f *Feature) string {
	switch f.Upper {
	case Unbounded:
		return fmt.Sprintf("%d..*", f.Lower)
	case Unspecified:
		return fmt.Sprintf("%d..?", f.Lower)
	}
	return fmt.Sprintf("%d..%d", f.Lower, f.Upper)
}

// Element is a global element declaration.
type Element struct {
	Name              string
	Type              string
	Abstract          bool
	SubstitutionGroup string
	// Feature is the DocumentRoot feature of the element.
	Feature FeatureID

	new func() any
}

// New returns a pointer to a new empty value of the element type.
func (e *Element) New() any {
	return e.new()
}

// DataType describes a simple type and its facets.
type DataType struct {
	Name    string
	Base    string
	Pattern string
	// Length is the exact list length, 0 when unrestricted.
	Length int
	Enum   []string
}

func dataTypeDefs() []*DataType {
	closures := make([]string, len(RangeClosureTypes))
	for i, c := range RangeClosureTypes {
		closures[i] = string(c)
	}
	return []*DataType{
		{Name: "string"},
		{Name: "anyURI", Base: "string"},
		{Name: "language", Base: "string"},
		{Name: "positiveInteger"},
		{Name: "MimeType", Base: "string", Pattern: MimeTypePattern},
		{Name: "VersionType", Base: "string", Pattern: VersionPattern},
		{Name: "ServiceType", Base: "string"},
		{Name: "UpdateSequenceType", Base: "string"},
		{Name: "PositionType"},
		{Name: "PositionType2D", Base: "PositionType", Length: 2},
		{Name: "RangeClosureType", Base: "string", Enum: closures},
	}
}

// Package describes the OWS 1.1 schema. It is immutable once built and
// safe for concurrent use.
type Package struct {
	URI    string
	Prefix string

	classes   []*Class
	byName    map[string]*Class
	byType    map[reflect.Type]*Class
	elements  []*Element
	byElement map[string]*Element
	dataTypes map[string]*DataType
}

// NewPackage builds the package description. It panics if the class
// table is inconsistent with the Go types.
func NewPackage() *Package {
	p := &Package{
		URI:       Namespace,
		Prefix:    NamespacePrefix,
		byName:    map[string]*Class{},
		byType:    map[reflect.Type]*Class{},
		byElement: map[string]*Element{},
		dataTypes: map[string]*DataType{},
	}
	if err := p.build(); err != nil {
		panic(err)
	}
	return p
}

func (p *Package) build() error {
	defs := classDefs()
	if len(defs) != int(ClassCount) {
		return ErrInvalid("%d classes declared, %d expected", len(defs), ClassCount)
	}
	p.classes = make([]*Class, len(defs))
	for i, def := range defs {
		if def.id != ClassID(i) {
			return ErrInvalid("class «%s» has id %d at position %d", def.name, def.id, i)
		}
		p.classes[i] = &Class{ID: def.id, Name: def.name, goType: def.goType, restrictions: def.restrictions}
		p.byName[def.name] = p.classes[i]
		p.byType[def.goType] = p.classes[i]
	}
	for _, def := range defs {
		if err := p.inherit(defs, def.id, map[ClassID]bool{}); err != nil {
			return err
		}
	}
	for _, dt := range dataTypeDefs() {
		p.dataTypes[dt.Name] = dt
	}
	for _, c := range p.classes {
		for _, f := range c.features {
			if f.Kind == FeatureGroup {
				f.Containment = true
				continue
			}
			if _, ok := p.byName[f.Type]; ok && !f.Derived {
				f.Containment = true
			}
		}
		if err := checkGoType(c); err != nil {
			return err
		}
	}
	for _, e := range elementDefs() {
		p.elements = append(p.elements, e)
		p.byElement[e.Name] = e
	}
	return nil
}

func (p *Package) inherit(defs []classDef, id ClassID, visiting map[ClassID]bool) error {
	c := p.classes[id]
	if c.features != nil {
		return nil
	}
	if visiting[id] {
		return ErrInvalid("class «%s» inherits from itself", c.Name)
	}
	visiting[id] = true
	def := defs[id]
	var features []*Feature
	if def.super != noClass {
		if err := p.inherit(defs, def.super, visiting); err != nil {
			return err
		}
		c.Super = p.classes[def.super]
		features = append(features, c.Super.features...)
	}
	for i, f := range def.features {
		if f == nil {
			return ErrMissed("feature %d of class «%s»", i, c.Name)
		}
		if f.ID != FeatureID(len(features)) {
			return ErrInvalid("feature «%s.%s» has id %d, %d expected", c.Name, f.Name, f.ID, len(features))
		}
		features = append(features, f)
	}
	c.features = append(make([]*Feature, 0, len(features)), features...)
	return nil
}

func checkGoType(c *Class) error {
	ptr := reflect.PointerTo(c.goType)
	for _, f := range c.features {
		if f.Field != "" {
			if _, ok := c.goType.FieldByName(f.Field); !ok {
				return ErrNotFound("field «%s» of «%s.%s»", f.Field, c.Name, f.Name)
			}
		}
		if f.Accessor != "" {
			if _, ok := ptr.MethodByName(f.Accessor); !ok {
				return ErrNotFound("method «%s» of «%s.%s»", f.Accessor, c.Name, f.Name)
			}
		}
	}
	return nil
}

// Class returns the class with the given identifier or nil.
func (p *Package) Class(id ClassID) *Class {
	if id < 0 || int(id) >= len(p.classes) {
		return nil
	}
	return p.classes[id]
}

func (p *Package) ClassByName(name string) *Class {
	return p.byName[name]
}

// ClassOf returns the class of a model value, given as struct or pointer.
func (p *Package) ClassOf(v any) *Class {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return p.byType[t]
}

func (p *Package) Classes() []*Class {
	return p.classes
}

// Element returns the global element declaration with the given local name.
func (p *Package) Element(name string) *Element {
	return p.byElement[name]
}

func (p *Package) Elements() []*Element {
	return p.elements
}

func (p *Package) DataType(name string) *DataType {
	return p.dataTypes[name]
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
