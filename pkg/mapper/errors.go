package mapper

import "fmt"

// DecodeError is returned when a provider payload is not valid JSON or a
// field carries the wrong JSON type for its record.
type DecodeError struct {
	// RecordType names the record being decoded (e.g. "github repository").
	RecordType string

	// Err is the underlying encoding/json error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.RecordType, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when a required wire field is absent from a
// provider payload.
type MissingFieldError struct {
	// RecordType names the record being decoded.
	RecordType string

	// Field is the wire name of the missing field.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("decoding %s: required field %q is missing", e.RecordType, e.Field)
}
