package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigurationInvalid is returned (wrapped) for every record that cannot
// be turned into a descriptor.
var ErrConfigurationInvalid = errors.New("configuration invalid")

// FieldError reports a problem with a single record field.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message, Err: ErrConfigurationInvalid}
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every FieldError found in one record.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("%s: %s", ErrConfigurationInvalid, strings.Join(msgs, "; "))
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}
	return errs
}

// Fields returns the names of the offending fields in report order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, e := range v {
		fields = append(fields, e.Field)
	}
	return fields
}
