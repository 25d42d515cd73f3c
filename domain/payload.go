package domain

import (
	"sort"
	"time"
)

// DateLayout is how every entity date is rendered to clients.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatDate renders t in UTC using DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Payload is a raw request body as decoded from JSON.
type Payload map[string]any

// stringField reads a required string property. A missing key, a nil value and an
// empty string all count as missing.
func (p Payload) stringField(entity, field string) (string, error) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return "", &ValidationError{Entity: entity, Field: field, Err: ErrMissingRequiredProperty}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Entity: entity, Field: field, Err: ErrTypeMismatch}
	}
	if s == "" {
		return "", &ValidationError{Entity: entity, Field: field, Err: ErrMissingRequiredProperty}
	}
	return s, nil
}

// stringFields reads several properties and reports missing ones before type mismatches,
// so a payload that is both incomplete and mistyped fails as incomplete.
func (p Payload) stringFields(entity string, fields ...string) ([]string, error) {
	values := make([]string, len(fields))
	var mismatch error
	for i, f := range fields {
		v, err := p.stringField(entity, f)
		if err != nil {
			if ve, ok := err.(*ValidationError); ok && ve.Err == ErrTypeMismatch {
				if mismatch == nil {
					mismatch = err
				}
				continue
			}
			return nil, err
		}
		values[i] = v
	}
	if mismatch != nil {
		return nil, mismatch
	}
	return values, nil
}

// requireStrings checks that every named value is non-empty.
func requireStrings(entity string, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if fields[name] == "" {
			return &ValidationError{Entity: entity, Field: name, Err: ErrMissingRequiredProperty}
		}
	}
	return nil
}

// Params names the positional identifiers a use case receives.
type Params map[string]string

// RequireParams fails with ErrMissingParameter for the first (by name) empty parameter.
// It does no I/O and is meant to run before any repository call.
func RequireParams(useCase string, params Params) error {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if params[name] == "" {
			return &ValidationError{Entity: useCase, Field: name, Err: ErrMissingParameter}
		}
	}
	return nil
}
