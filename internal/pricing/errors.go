package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownSku      = errors.New("unknown sku")
	ErrUnknownCustomer = errors.New("unknown customer")
	ErrOutOfRange      = errors.New("value out of range")
	ErrInvalidValue    = errors.New("invalid value")
	ErrEmptyLineList   = errors.New("quote has no lines")
	ErrConfiguration   = errors.New("pricing configuration error")
)

// ValidationError is a client-caused rejection. Line is the zero-based index
// of the offending line, or -1 when the error concerns the whole request.
type ValidationError struct {
	Code    error    `json:"-"`
	Line    int      `json:"line"`
	Field   string   `json:"field,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Value   string   `json:"value,omitempty"`
	Message string   `json:"message"`
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Line >= 0 {
		b.WriteString("line ")
		b.WriteString(strconv.Itoa(e.Line))
		b.WriteString(": ")
	}
	b.WriteString(e.Code.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Code }

// CodeName is the stable identifier of the error code used on the wire.
func (e *ValidationError) CodeName() string {
	switch e.Code {
	case ErrUnknownSku:
		return "UnknownSku"
	case ErrUnknownCustomer:
		return "UnknownCustomer"
	case ErrOutOfRange:
		return "OutOfRange"
	case ErrEmptyLineList:
		return "EmptyLineList"
	}
	return "InvalidValue"
}

// ValidationErrors collects every rejection found in one request.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (es ValidationErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}

// ConfigurationError reports missing or malformed reference data. It is a
// server-side failure and is never caused by the request.
type ConfigurationError struct {
	Table  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s table %s", ErrConfiguration, e.Table, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func unknownSku(line int, sku string) *ValidationError {
	return &ValidationError{Code: ErrUnknownSku, Line: line, Field: "sku", Value: sku, Message: fmt.Sprintf("item %q not found", sku)}
}

func unknownCustomer(id string) *ValidationError {
	return &ValidationError{Code: ErrUnknownCustomer, Line: -1, Field: "customer_id", Value: id, Message: fmt.Sprintf("customer %q not found", id)}
}

func outOfRange(line int, field string, value float64, r Range) *ValidationError {
	lo, hi := r.Min, r.Max
	return &ValidationError{
		Code:    ErrOutOfRange,
		Line:    line,
		Field:   field,
		Min:     &lo,
		Max:     &hi,
		Value:   formatFloat(value),
		Message: fmt.Sprintf("%s must be between %s and %s, got %s", field, formatFloat(lo), formatFloat(hi), formatFloat(value)),
	}
}

func invalidValue(line int, field, msg string) *ValidationError {
	return &ValidationError{Code: ErrInvalidValue, Line: line, Field: field, Message: msg}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
