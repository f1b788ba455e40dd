// Package validation runs ordered rule phases over a candidate entity and
// aggregates every violation. Validators never consult storage.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-monolith/mono/pkg/types"

	"github.com/example/todo-tracker/domain/apperr"
)

// MsgNilEntity is the sole error reported for a nil entity.
const MsgNilEntity = "Entity cannot be null"

// Check inspects an entity and returns the violations it found, if any.
type Check[T any] func(entity *T) []string

// Rules groups checks by phase. Phases run in the order Required, Format,
// Length, Business; all of them always run and their results concatenate.
type Rules[T any] struct {
	Required []Check[T]
	Format   []Check[T]
	Length   []Check[T]
	Business []Check[T]
}

// Validator drives a fixed set of Rules.
type Validator[T any] struct {
	name   string
	rules  Rules[T]
	logger types.Logger
}

// New creates a validator for entities of the given kind.
func New[T any](name string, rules Rules[T], logger types.Logger) *Validator[T] {
	return &Validator[T]{
		name:   name,
		rules:  rules,
		logger: logger,
	}
}

// Errors returns every violation, or an empty slice for a valid entity.
// A nil entity yields only MsgNilEntity.
func (v *Validator[T]) Errors(entity *T) []string {
	errs := make([]string, 0)
	if entity == nil {
		return append(errs, MsgNilEntity)
	}

	for _, phase := range [][]Check[T]{v.rules.Required, v.rules.Format, v.rules.Length, v.rules.Business} {
		for _, check := range phase {
			errs = append(errs, check(entity)...)
		}
	}
	return errs
}

// Validate returns an apperr validation error carrying all violations, or nil.
func (v *Validator[T]) Validate(entity *T) error {
	errs := v.Errors(entity)
	if len(errs) == 0 {
		v.logger.Debug("Validation successful", "entity", v.name)
		return nil
	}
	err := apperr.Validation(errs)
	v.logger.Warn("Validation failed", "entity", v.name, "errors", err.Message)
	return err
}

// IsValid reports whether entity has no violations.
func (v *Validator[T]) IsValid(entity *T) bool {
	return len(v.Errors(entity)) == 0
}

// isBlank reports whether s is empty or whitespace only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// length counts characters, not bytes.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

func exceedsMaxLength(s string, max int) bool {
	return length(s) > max
}
