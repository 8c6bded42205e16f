package ows11

import (
	"errors"
	"strings"
)

// ExceptionCode is an OWS exception code.
type ExceptionCode string

const (
	OperationNotSupported    ExceptionCode = "OperationNotSupported"
	MissingParameterValue    ExceptionCode = "MissingParameterValue"
	InvalidParameterValue    ExceptionCode = "InvalidParameterValue"
	VersionNegotiationFailed ExceptionCode = "VersionNegotiationFailed"
	InvalidUpdateSequence    ExceptionCode = "InvalidUpdateSequence"
	OptionNotSupported       ExceptionCode = "OptionNotSupported"
	NoApplicableCode         ExceptionCode = "NoApplicableCode"
)

// ExceptionReportVersion is the version written to exception reports.
const ExceptionReportVersion VersionType = "1.1.0"

// ServiceError is an error a service reports to its client.
type ServiceError struct {
	Code ExceptionCode
	// Locator names the parameter or part of the request in error.
	Locator string
	Text    []string
}

func NewServiceError(code ExceptionCode, locator string, text ...string) *ServiceError {
	return &ServiceError{Code: code, Locator: locator, Text: text}
}

func (e *ServiceError) Error() string {
	sb := strings.Builder{}
	sb.WriteString(string(e.Code))
	if e.Locator != "" {
		sb.WriteString(" «" + e.Locator + "»")
	}
	if len(e.Text) > 0 {
		sb.WriteString(": " + strings.Join(e.Text, "; "))
	}
	return sb.String()
}

func (e *ServiceError) Exception() ExceptionType {
	return ExceptionType{
		ExceptionText: append([]string(nil), e.Text...),
		ExceptionCode: string(e.Code),
		Locator:       e.Locator,
	}
}

// NewExceptionReport reports errs; errors other than *ServiceError
// become NoApplicableCode exceptions and joined errors are reported one
// by one.
func NewExceptionReport(lang string, errs ...error) *ExceptionReportType {
	r := &ExceptionReportType{Lang: lang, Version: ExceptionReportVersion}
	for _, err := range errs {
		r.add(err)
	}
	return r
}

func (r *ExceptionReportType) add(err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			r.add(e)
		}
		return
	}
	var se *ServiceError
	if errors.As(err, &se) {
		r.Exception = append(r.Exception, se.Exception())
		return
	}
	r.Exception = append(r.Exception, ExceptionType{
		ExceptionText: []string{err.Error()},
		ExceptionCode: string(NoApplicableCode),
	})
}

// Err returns the reported exceptions as an error, nil when there are none.
func (r *ExceptionReportType) Err() error {
	errs := make([]error, 0, len(r.Exception))
	for _, e := range r.Exception {
		errs = append(errs, &ServiceError{
			Code:    ExceptionCode(e.ExceptionCode),
			Locator: e.Locator,
			Text:    append([]string(nil), e.ExceptionText...),
		})
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return errors.Join(errs...)
}
