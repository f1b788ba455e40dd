package apperr

import "errors"

// Payload is the wire form of an Error, carried inside request-reply
// responses so the kind survives the service boundary.
type Payload struct {
	Kind    Kind     `json:"kind"`
	Entity  string   `json:"entity,omitempty"`
	Field   string   `json:"field,omitempty"`
	Value   string   `json:"value,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
	Message string   `json:"message"`
}

// ToPayload converts err for transport. Nil yields nil; foreign errors become
// KindInternal with their message.
func ToPayload(err error) *Payload {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Payload{
			Kind:    e.Kind,
			Entity:  e.Entity,
			Field:   e.Field,
			Value:   e.Value,
			Reasons: e.Reasons,
			Message: e.Message,
		}
	}
	return &Payload{Kind: KindInternal, Message: err.Error()}
}

// Err rebuilds the typed error. A nil payload yields nil.
func (p *Payload) Err() error {
	if p == nil {
		return nil
	}
	return &Error{
		Kind:    p.Kind,
		Entity:  p.Entity,
		Field:   p.Field,
		Value:   p.Value,
		Reasons: p.Reasons,
		Message: p.Message,
	}
}
