package ows11

import (
	"strconv"
	"strings"
)

// Patterns of the restricted string types.
const (
	MimeTypePattern = `(application|audio|image|text|video|message|multipart|model)/.+(;\s*.+=.+)*`
	VersionPattern  = `\d+\.\d?\d\.\d?\d`
)

// MimeType is an IETF media type such as "text/xml; subtype=gml/3.1.1".
type MimeType string

// VersionType is a service or standard version in "x.y.z" form.
type VersionType string

// ServiceType names an OWS service such as "WMS" or "WFS".
type ServiceType string

// UpdateSequenceType identifies a revision of a capabilities document.
type UpdateSequenceType string

// PositionType is a list of ordinates, encoded as space separated doubles.
type PositionType []float64

func (p PositionType) MarshalText() ([]byte, error) {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return []byte(strings.Join(parts, " ")), nil
}

func (p *PositionType) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	pos := make(PositionType, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ErrInvalid("position ordinate «%s»", f)
		}
		pos = append(pos, v)
	}
	*p = pos
	return nil
}

// RangeClosureType tells which ends of a RangeType are included.
type RangeClosureType string

const (
	RangeClosureClosed     RangeClosureType = "closed"
	RangeClosureOpen       RangeClosureType = "open"
	RangeClosureOpenClosed RangeClosureType = "open-closed"
	RangeClosureClosedOpen RangeClosureType = "closed-open"
)

// RangeClosureTypes lists the literals in declaration order.
var RangeClosureTypes = []RangeClosureType{
	RangeClosureClosed,
	RangeClosureOpen,
	RangeClosureOpenClosed,
	RangeClosureClosedOpen,
}

func ParseRangeClosureType(s string) (RangeClosureType, error) {
	for _, c := range RangeClosureTypes {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalid("range closure «%s»", s)
}

func (c RangeClosureType) Valid() bool {
	_, err := ParseRangeClosureType(string(c))
	return err == nil
}

func (c RangeClosureType) String() string {
	return string(c)
}

func (c RangeClosureType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalid("range closure «%s»", string(c))
	}
	return []byte(c), nil
}

func (c *RangeClosureType) UnmarshalText(text []byte) error {
	v, err := ParseRangeClosureType(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
