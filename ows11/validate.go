package ows11

import (
	"errors"
	"reflect"
	"strings"

	"github.com/jf-tech/go-corelib/caches"
	"golang.org/x/exp/slices"
)

type instanceKey struct {
	t   reflect.Type
	ptr uintptr
}

// Validate checks a tree: required features, data type facets, group
// members and single ownership of every instance. It returns nil or
// every problem found, joined.
func (p *Package) Validate(v any) error {
	var errs []error
	owners := map[instanceKey]string{}
	err := p.Walk(v, func(path string, obj any) error {
		rv := reflect.ValueOf(obj)
		// every zero-size allocation may share one address
		if rv.Elem().Type().Size() > 0 {
			key := instanceKey{rv.Type(), rv.Pointer()}
			if prev, ok := owners[key]; ok {
				errs = append(errs, ErrShared("«%s» is the same instance as «%s»", where(path, rv), where(prev, rv)))
				return SkipChildren
			}
			owners[key] = path
		}
		errs = append(errs, p.validateInstance(path, rv)...)
		return nil
	})
	if err != nil {
		return err
	}
	return errors.Join(errs...)
}

func where(path string, v reflect.Value) string {
	if path == "" {
		return v.Elem().Type().Name()
	}
	return path
}

func (p *Package) validateInstance(path string, v reflect.Value) (errs []error) {
	if doc, ok := v.Interface().(*DocumentRoot); ok {
		if name, _ := doc.Root(); name == "" {
			errs = append(errs, ErrMissed("«%s» has no root element", where(path, v)))
		} else if e := p.Element(name); e == nil {
			errs = append(errs, ErrElementNotFound(name))
		} else if e.Abstract {
			errs = append(errs, ErrInvalid("root element «%s» is abstract", name))
		}
	}
	c := p.byType[v.Elem().Type()]
	for _, f := range c.features {
		if f.Derived || f.Field == "" || f.Kind == FeatureTransient || f.Kind == FeatureMixed || f.Kind == FeatureMap {
			continue
		}
		field := v.Elem().FieldByName(f.Field)
		at := join(where(path, v), f.Name)
		if n := occurrences(f, field); n < f.Lower {
			errs = append(errs, ErrMissed("«%s» needs %d value(s), has %d", at, f.Lower, n))
		}
		if f.Kind == FeatureGroup {
			errs = append(errs, p.validateGroup(at, f, field)...)
			continue
		}
		if dt := p.dataTypes[c.FeatureType(f)]; dt != nil {
			errs = append(errs, validateFacets(at, dt, field)...)
		}
	}
	return errs
}

func occurrences(f *Feature, field reflect.Value) int {
	if isEmpty(field) {
		return 0
	}
	if f.Many() && field.Kind() == reflect.Slice {
		return field.Len()
	}
	return 1
}

func (p *Package) validateGroup(at string, f *Feature, field reflect.Value) (errs []error) {
	for i := 0; i < field.Len(); i++ {
		m := field.Index(i)
		name := m.Field(0).String()
		val := m.Field(1)
		var member *GroupMember
		for j := range f.Members {
			if f.Members[j].Name == name {
				member = &f.Members[j]
			}
		}
		if member == nil {
			errs = append(errs, ErrInvalid("«%s» does not allow member «%s»", at, name))
			continue
		}
		if val.Kind() == reflect.Interface {
			if val.IsNil() {
				errs = append(errs, ErrMissed("«%s» member «%s» has no value", at, name))
				continue
			}
			val = val.Elem()
		}
		if c := p.ClassByName(member.Type); c != nil {
			if val.Kind() == reflect.Pointer && val.IsNil() {
				errs = append(errs, ErrMissed("«%s» member «%s» has no value", at, name))
			} else if got := p.ClassOf(val.Interface()); got != c {
				errs = append(errs, ErrInvalid("«%s» member «%s» holds %v, %s expected", at, name, val.Type(), c.Name))
			}
		}
	}
	return errs
}

func validateFacets(at string, dt *DataType, field reflect.Value) (errs []error) {
	if dt.Length > 0 {
		if !isEmpty(field) && field.Len() != dt.Length {
			errs = append(errs, ErrInvalid("«%s» has %d ordinates, %s needs %d", at, field.Len(), dt.Name, dt.Length))
		}
		return errs
	}
	if dt.Pattern == "" && len(dt.Enum) == 0 {
		return nil
	}
	for _, s := range stringValues(field) {
		if len(dt.Enum) > 0 && !slices.Contains(dt.Enum, s) {
			errs = append(errs, ErrInvalid("«%s» value «%s» is not one of %s", at, s, strings.Join(dt.Enum, ", ")))
		}
		if dt.Pattern != "" {
			re, err := caches.GetRegex(`^(?:` + dt.Pattern + `)$`)
			if err != nil {
				errs = append(errs, ErrInvalid("%s pattern: %v", dt.Name, err))
				return errs
			}
			if !re.MatchString(s) {
				errs = append(errs, ErrInvalid("«%s» value «%s» does not match %s", at, s, dt.Name))
			}
		}
	}
	return errs
}

// stringValues returns the present string values of a string, *string or
// string slice field.
func stringValues(field reflect.Value) []string {
	switch field.Kind() {
	case reflect.String:
		if field.Len() > 0 {
			return []string{field.String()}
		}
	case reflect.Pointer:
		if !field.IsNil() && field.Elem().Kind() == reflect.String {
			return []string{field.Elem().String()}
		}
	case reflect.Slice:
		var res []string
		for i := 0; i < field.Len(); i++ {
			res = append(res, stringValues(field.Index(i))...)
		}
		return res
	}
	return nil
}
