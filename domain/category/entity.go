// Package category holds the Category domain entity.
package category

import "github.com/example/todo-tracker/domain/entity"

// Category groups tasks. Name is unique across all categories; Color is
// either empty or a #RRGGBB hex string.
type Category struct {
	entity.Base
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// New creates a category with a fresh ID.
func New(name, description, color string) *Category {
	return &Category{
		Base:        entity.NewBase(),
		Name:        name,
		Description: description,
		Color:       color,
	}
}

func (c *Category) SetName(name string) {
	c.Name = name
	c.Touch()
}

func (c *Category) SetDescription(description string) {
	c.Description = description
	c.Touch()
}

// SetColor sets the colour; an empty string removes it.
func (c *Category) SetColor(color string) {
	c.Color = color
	c.Touch()
}
