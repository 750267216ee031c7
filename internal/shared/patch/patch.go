// Package patch models partial-update request fields that distinguish
// "absent" from "explicit null" from "value".
package patch

import (
	"encoding/json"
	"strings"

	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/dateutil"

	"gorm.io/datatypes"
)

type Field[T any] struct {
	Present bool
	Value   *T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

func (f Field[T]) Get() (*T, bool) { return f.Value, f.Present }

// IsNull reports a field that was sent as JSON null.
func (f Field[T]) IsNull() bool { return f.Present && f.Value == nil }

func Of[T any](v T) Field[T] { return Field[T]{Present: true, Value: &v} }

func Null[T any]() Field[T] { return Field[T]{Present: true} }

// Apply writes the value into a non-nullable column. Absent fields are a
// no-op and an explicit null is rejected.
func (f Field[T]) Apply(dst *T, name string) error {
	if !f.Present {
		return nil
	}
	if f.Value == nil {
		return apperror.Invalid("%s cannot be null", name)
	}
	*dst = *f.Value
	return nil
}

// ApplyPtr writes the value into a nullable column; an explicit null clears it.
func (f Field[T]) ApplyPtr(dst **T) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}

// FirstErr returns the first non-nil error, so a chain of Apply calls can be
// checked once.
func FirstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Text writes a trimmed, non-blank value into a required column.
func Text(f Field[string], dst *string, name string) error {
	if !f.Present {
		return nil
	}
	if f.Value == nil || strings.TrimSpace(*f.Value) == "" {
		return apperror.RequiredField(name)
	}
	*dst = strings.TrimSpace(*f.Value)
	return nil
}

// Date parses a YYYY-MM-DD value into a required date column.
func Date(f Field[string], dst *datatypes.Date, name string) error {
	if !f.Present {
		return nil
	}
	if f.Value == nil {
		return apperror.Invalid("%s cannot be null", name)
	}
	d, err := dateutil.ParseDate(name, *f.Value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func DatePtr(f Field[string], dst **datatypes.Date, name string) error {
	if !f.Present {
		return nil
	}
	d, err := dateutil.ParseDatePtr(name, f.Value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
