// Package normalize turns loosely typed input, as found in request bodies
// and imported files, into domain values.
//
// Parsers are lenient: absent or malformed fields fall back to defaults
// and the value is still returned. Only input that cannot describe an
// entity at all fails.
package normalize

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid input")

// ValidationError describes why an input could not be parsed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalid, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalid, e.Field, e.Reason)
}

func (e ValidationError) Unwrap() error {
	return ErrInvalid
}

// Result is the outcome of parsing one input. Either Err is nil and
// Value holds the parsed entity, or Err is a ValidationError.
type Result[T any] struct {
	Value T
	Err   error

	// Defaulted lists the fields that were absent or malformed and
	// received a default value.
	Defaulted []string
}

// OK reports if the input was accepted.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Get returns the value and the validation error.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

func failure[T any](field, reason string) Result[T] {
	return Result[T]{Err: ValidationError{Field: field, Reason: reason}}
}

// Failure is a rejected element of a bulk parse.
type Failure struct {
	Index int
	Err   error
}

// all parses every element of a list. Rejected elements are skipped and
// reported with their index.
func all[T any](list []map[string]any, parse func(map[string]any) Result[T]) ([]T, []Failure) {
	values := make([]T, 0, len(list))
	var failures []Failure

	for i, raw := range list {
		r := parse(raw)
		if !r.OK() {
			failures = append(failures, Failure{Index: i, Err: r.Err})
			continue
		}
		values = append(values, r.Value)
	}

	return values, failures
}
