package htmlbuilder

import (
	"fmt"

	"github.com/pkg/errors"
)

// TypeConstraintError is returned when a value of the wrong kind is used: a
// child that is not text, a node, a table or a style rule, a missing parent,
// a matrix that is not a slice of slices or a child that renders to nothing.
type TypeConstraintError struct {
	Op  string
	Msg string
}

func (e *TypeConstraintError) Error() string {
	return fmt.Sprintf("htmlbuilder: %s: %s", e.Op, e.Msg)
}

// UnknownAttributeError is returned when an attribute outside of the
// recognized set is read or written.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("htmlbuilder: unknown attribute %q", e.Name)
}

func typeConstraint(op, format string, args ...interface{}) error {
	return errors.WithStack(&TypeConstraintError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

func unknownAttribute(name string) error {
	return errors.WithStack(&UnknownAttributeError{Name: name})
}
