package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report violations under the json field names the client sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks the draft against the record invariants: title required,
// workout type and checkbox vocabulary membership, rating range, and the
// "would repeat" union rules. Returns *ValidationError on the first violation.
func (d *FormDraft) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return newValidationError(verrs[0])
		}
		return err
	}

	// The literal radio tag must never survive into a stored answer.
	if d.Updates.String() == RepeatOptionOthers {
		return &ValidationError{Field: "updates", Reason: "the Others tag is not a storable answer"}
	}
	return nil
}

func newValidationError(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Reason: "is required"}
	case "oneof":
		return &ValidationError{Field: field, Reason: "must be one of " + fe.Param()}
	case "min":
		return &ValidationError{Field: field, Reason: "must be at least " + fe.Param()}
	case "max":
		return &ValidationError{Field: field, Reason: "must be at most " + fe.Param()}
	case "unique":
		return &ValidationError{Field: field, Reason: "contains duplicate entries"}
	}
	return &ValidationError{Field: field, Reason: "failed " + fe.Tag() + " check"}
}

// ValidationError reports a single bad field value in a draft.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrFormNotFound covers both a missing record and a record owned by someone
// else, so existence never leaks across owners.
var ErrFormNotFound = errors.New("form not found")

// StorageError wraps a backing-store failure for a single operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
