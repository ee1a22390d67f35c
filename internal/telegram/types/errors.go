package types

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned when a setter is called on a builder whose value
// has already been built. Frozen objects are never mutated in place;
// constructing a changed copy is the only way to "update" one.
var ErrFrozen = errors.New("telegram object is frozen")

// SchemaError reports a raw payload that cannot be interpreted as its
// declared object kind: a missing mandatory field, a value of the wrong
// JSON type, or a value outside its domain.
type SchemaError struct {
	Object string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Object, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Object, e.Field, e.Reason)
}

func schemaErr(object, field, reason string) *SchemaError {
	return &SchemaError{Object: object, Field: field, Reason: reason}
}
