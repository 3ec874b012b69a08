package fluentdom

import "fmt"

// TypeMismatchError reports a value outside the *Builder | Element union
// handed to Append or AppendAll. The message names the offending value and
// its type.
//
// Host errors are never converted into TypeMismatchError; they pass
// through the Builder exactly as the host produced them.
type TypeMismatchError struct {
	// Op is the operation that rejected the value.
	Op string

	// Value is the rejected value as passed in.
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: unsupported child type %T (%v)", e.Op, e.Value, e.Value)
}
