package cobaya

import (
	"errors"
	"fmt"
)

// Naming errors.
var (
	// ErrInvalidName is returned when a compound name does not carry the
	// expected base prefix.
	ErrInvalidName = errors.New("invalid compound name")

	// ErrUnknownKind is returned for a component kind outside the closed set.
	ErrUnknownKind = errors.New("unknown component kind")

	// ErrUnknownTag is returned for a parameter tag outside the closed set.
	ErrUnknownTag = errors.New("unknown parameter tag")
)

// InvalidNameError reports a compound name that could not be decomposed.
type InvalidNameError struct {
	Name string
	Base string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s: %q does not start with %q", ErrInvalidName, e.Name, e.Base+Separator)
}

// Is reports whether target is ErrInvalidName.
func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

// UnknownKindError reports a component kind that is not sampler, theory or
// likelihood.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownKind, e.Kind)
}

// Is reports whether target is ErrUnknownKind.
func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// UnknownTagError reports a parameter tag outside the closed set.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTag, e.Tag)
}

// Is reports whether target is ErrUnknownTag.
func (e *UnknownTagError) Is(target error) bool {
	return target == ErrUnknownTag
}
