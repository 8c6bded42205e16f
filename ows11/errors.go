package ows11

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrClassNotFound(c any) error {
	return ErrNotFound("class «%v»", c)
}

func ErrFeatureNotFound(c *Class, f any) error {
	return ErrNotFound("feature «%v» in class «%v»", f, c.Name)
}

func ErrElementNotFound(name string) error {
	return ErrNotFound("element «%v»", name)
}

var ErrSharedError = errors.New("shared")

func ErrShared(msg string, args ...any) error {
	return EnrichError(ErrSharedError, msg, args...)
}

var ErrReadOnlyError = errors.New("read only")

func ErrReadOnly(msg string, args ...any) error {
	return EnrichError(ErrReadOnlyError, msg, args...)
}

var ErrTooManyError = errors.New("too many")

func ErrTooMany(msg string, args ...any) error {
	return EnrichError(ErrTooManyError, msg, args...)
}
