package ows11

import (
	"errors"
	"fmt"
	"reflect"
)

// SkipChildren is returned by a WalkFunc to not descend into the
// instance it was called for.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every model instance of a tree. The path names
// the containment slots leading to the instance, e.g.
// "OperationsMetadata/Operation[1]/DCP[0]"; it is empty for the start.
type WalkFunc func(path string, v any) error

// Walk visits v and every instance it contains, depth first in feature
// order. A DocumentRoot is walked through its root element.
func (p *Package) Walk(v any, fn WalkFunc) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || p.byType[rv.Elem().Type()] == nil {
		return ErrInvalid("%T is not a model instance", v)
	}
	return p.walk("", rv, fn)
}

func (p *Package) walk(path string, v reflect.Value, fn WalkFunc) error {
	if err := fn(path, v.Interface()); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	if doc, ok := v.Interface().(*DocumentRoot); ok {
		name, root := doc.Root()
		return p.visit(join(path, name), reflect.ValueOf(root), fn)
	}
	c := p.byType[v.Elem().Type()]
	for _, f := range c.features {
		if !f.Containment || f.Derived || f.Field == "" {
			continue
		}
		field := v.Elem().FieldByName(f.Field)
		switch {
		case f.Kind == FeatureGroup:
			counts := map[string]int{}
			for i := 0; i < field.Len(); i++ {
				m := field.Index(i)
				name := m.Field(0).String()
				if err := p.visit(join(path, fmt.Sprintf("%s[%d]", name, counts[name])), m.Field(1), fn); err != nil {
					return err
				}
				counts[name]++
			}
		case field.Kind() == reflect.Slice:
			for i := 0; i < field.Len(); i++ {
				if err := p.visit(join(path, fmt.Sprintf("%s[%d]", f.XMLName.Local, i)), field.Index(i).Addr(), fn); err != nil {
					return err
				}
			}
		default:
			if err := p.visit(join(path, f.XMLName.Local), field, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Package) visit(path string, v reflect.Value, fn WalkFunc) error {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Pointer || v.IsNil() || p.byType[v.Elem().Type()] == nil {
		return nil
	}
	return p.walk(path, v, fn)
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "/" + name
}
