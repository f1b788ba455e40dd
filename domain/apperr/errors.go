// Package apperr defines the failure kinds returned by the stores, validators
// and services. Each failure carries structured context so the boundary layer
// decides how to present it.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind string

const (
	// KindInvalidArgument is a structurally invalid request (empty ID, nil entity).
	KindInvalidArgument Kind = "invalid_argument"
	// KindValidation means the entity content breaks domain rules.
	KindValidation Kind = "validation"
	// KindNotFound means the referenced entity does not exist.
	KindNotFound Kind = "not_found"
	// KindDuplicate means a uniqueness constraint was violated.
	KindDuplicate Kind = "duplicate"
	// KindInternal is anything not produced by this package.
	KindInternal Kind = "internal"
)

// Entity names used in error context.
const (
	EntityTask     = "Task"
	EntityCategory = "Category"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate entity")
)

// Error is a typed domain failure.
type Error struct {
	Kind    Kind
	Entity  string
	Field   string
	Value   string
	Reasons []string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrDuplicate:
		return e.Kind == KindDuplicate
	}
	return false
}

// InvalidArgument reports a malformed request.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation wraps the full list of rule violations. The message joins them with "; ".
func Validation(reasons []string) *Error {
	r := make([]string, len(reasons))
	copy(r, reasons)
	return &Error{
		Kind:    KindValidation,
		Reasons: r,
		Message: strings.Join(r, "; "),
	}
}

// NotFound reports a missing entity looked up by field (e.g. "ID", "name").
func NotFound(entity, field, value string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("%s not found with %s: %s", entity, field, value),
	}
}

// TaskNotFound is NotFound for a task ID.
func TaskNotFound(id string) *Error {
	return NotFound(EntityTask, "ID", id)
}

// CategoryNotFound is NotFound for a category ID.
func CategoryNotFound(id string) *Error {
	return NotFound(EntityCategory, "ID", id)
}

// CategoryNameNotFound is NotFound for a category name.
func CategoryNameNotFound(name string) *Error {
	return NotFound(EntityCategory, "name", name)
}

// Duplicate reports a uniqueness violation on identifier.
func Duplicate(entity, identifier string) *Error {
	return &Error{
		Kind:    KindDuplicate,
		Entity:  entity,
		Field:   "name",
		Value:   identifier,
		Message: fmt.Sprintf("%s already exists: %s", entity, identifier),
	}
}

// KindOf classifies err. Nil yields the empty kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
