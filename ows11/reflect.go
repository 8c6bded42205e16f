package ows11

import "reflect"

// resolve returns the addressable struct and the class of a model pointer.
func (p *Package) resolve(obj any) (reflect.Value, *Class, error) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, nil, ErrInvalid("%T is not a non-nil pointer", obj)
	}
	c := p.byType[v.Elem().Type()]
	if c == nil {
		return reflect.Value{}, nil, ErrClassNotFound(v.Elem().Type())
	}
	return v, c, nil
}

func (p *Package) feature(obj any, id FeatureID) (reflect.Value, *Class, *Feature, error) {
	v, c, err := p.resolve(obj)
	if err != nil {
		return v, c, nil, err
	}
	f := c.Feature(id)
	if f == nil {
		return v, c, nil, ErrFeatureNotFound(c, id)
	}
	return v, c, f, nil
}

func call(v reflect.Value, method string, args ...reflect.Value) []reflect.Value {
	return v.MethodByName(method).Call(args)
}

// Get returns the value of a feature. Unsettable features report their
// default when unset; derived features return their computed view.
func (p *Package) Get(obj any, id FeatureID) (any, error) {
	v, _, f, err := p.feature(obj, id)
	if err != nil {
		return nil, err
	}
	if f.Accessor != "" {
		return call(v, f.Accessor)[0].Interface(), nil
	}
	return v.Elem().FieldByName(f.Field).Interface(), nil
}

// Set assigns a feature. Derived views are read only.
func (p *Package) Set(obj any, id FeatureID, value any) error {
	v, c, f, err := p.feature(obj, id)
	if err != nil {
		return err
	}
	if f.Derived {
		return ErrReadOnly("feature «%s.%s»", c.Name, f.Name)
	}
	if f.Unsettable && value == nil {
		call(v, "Unset"+f.Accessor)
		return nil
	}
	if f.Accessor != "" {
		m := v.MethodByName("Set" + f.Accessor)
		arg, err := convert(value, m.Type().In(0))
		if err != nil {
			return EnrichError(err, "feature «%s.%s»", c.Name, f.Name)
		}
		m.Call([]reflect.Value{arg})
		return nil
	}
	field := v.Elem().FieldByName(f.Field)
	arg, err := convert(value, field.Type())
	if err != nil {
		return EnrichError(err, "feature «%s.%s»", c.Name, f.Name)
	}
	field.Set(arg)
	return nil
}

// IsSet reports whether a feature holds a value other than its default.
// For unsettable features it reports whether the value was set explicitly.
func (p *Package) IsSet(obj any, id FeatureID) (bool, error) {
	v, _, f, err := p.feature(obj, id)
	if err != nil {
		return false, err
	}
	switch {
	case f.Unsettable:
		return call(v, "IsSet"+f.Accessor)[0].Bool(), nil
	case f.Accessor != "":
		return !isEmpty(call(v, f.Accessor)[0]), nil
	}
	return !isEmpty(v.Elem().FieldByName(f.Field)), nil
}

// Unset returns a feature to its initial state.
func (p *Package) Unset(obj any, id FeatureID) error {
	v, c, f, err := p.feature(obj, id)
	if err != nil {
		return err
	}
	switch {
	case f.Derived:
		return ErrReadOnly("feature «%s.%s»", c.Name, f.Name)
	case f.Unsettable:
		call(v, "Unset"+f.Accessor)
	case f.Accessor != "":
		m := v.MethodByName("Set" + f.Accessor)
		m.Call([]reflect.Value{reflect.Zero(m.Type().In(0))})
	default:
		field := v.Elem().FieldByName(f.Field)
		field.Set(reflect.Zero(field.Type()))
	}
	return nil
}

// convert makes value assignable to t: nil becomes the zero value, named
// string types convert to each other and a value is boxed into a pointer.
func convert(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if v.Kind() == reflect.String && t.Kind() == reflect.String {
		return v.Convert(t), nil
	}
	if t.Kind() == reflect.Pointer && v.Kind() != reflect.Pointer {
		inner, err := convert(value, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(inner)
		return ptr, nil
	}
	if v.Kind() == reflect.Slice && t.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.String && t.Elem().Kind() == reflect.String {
		res := reflect.MakeSlice(t, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			res.Index(i).Set(v.Index(i).Convert(t.Elem()))
		}
		return res, nil
	}
	return reflect.Value{}, ErrInvalid("%T is not assignable to %v", value, t)
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Invalid:
		return true
	}
	return v.IsZero()
}
