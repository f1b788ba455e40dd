package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-monolith/mono/pkg/types"

	"github.com/example/todo-tracker/domain/category"
)

// Category field limits.
const (
	MaxCategoryNameLength        = 100
	MaxCategoryDescriptionLength = 500
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// NewCategoryValidator builds the validator for categories.
func NewCategoryValidator(logger types.Logger) *Validator[category.Category] {
	return New("Category", CategoryRules(logger), logger)
}

// CategoryRules returns the category rule set.
func CategoryRules(logger types.Logger) Rules[category.Category] {
	return Rules[category.Category]{
		Required: []Check[category.Category]{categoryNameRequired},
		Format:   []Check[category.Category]{categoryColorFormat},
		Length:   []Check[category.Category]{categoryLengths},
		Business: []Check[category.Category]{categoryNameWhitespace(logger)},
	}
}

func categoryNameRequired(c *category.Category) []string {
	if isBlank(c.Name) {
		return []string{"Category name is required and cannot be empty"}
	}
	return nil
}

func categoryColorFormat(c *category.Category) []string {
	if c.Color != "" && !IsValidHexColor(c.Color) {
		return []string{fmt.Sprintf("Category color must be in hex format (#RRGGBB), got: %s", c.Color)}
	}
	return nil
}

func categoryLengths(c *category.Category) []string {
	var errs []string
	if exceedsMaxLength(c.Name, MaxCategoryNameLength) {
		errs = append(errs, fmt.Sprintf("Category name cannot exceed %d characters (current: %d)",
			MaxCategoryNameLength, length(c.Name)))
	}
	if exceedsMaxLength(c.Description, MaxCategoryDescriptionLength) {
		errs = append(errs, fmt.Sprintf("Category description cannot exceed %d characters (current: %d)",
			MaxCategoryDescriptionLength, length(c.Description)))
	}
	return errs
}

// categoryNameWhitespace reports whitespace-only names and logs names that
// carry leading or trailing whitespace.
func categoryNameWhitespace(logger types.Logger) Check[category.Category] {
	return func(c *category.Category) []string {
		if c.Name != "" && isBlank(c.Name) {
			return []string{"Category name cannot contain only whitespace"}
		}
		if c.Name != strings.TrimSpace(c.Name) {
			logger.Debug("Category name has leading/trailing whitespace", "name", c.Name)
		}
		return nil
	}
}

// IsValidHexColor reports whether color is exactly #RRGGBB.
func IsValidHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

// IsValidName reports whether name would pass the name rules.
func IsValidName(name string) bool {
	return !isBlank(name) && !exceedsMaxLength(name, MaxCategoryNameLength)
}
