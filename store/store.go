// Package store provides a generic, concurrency-safe, in-memory entity store.
//
// A Store owns its entities: Save copies the value in, and every read hands
// out a fresh copy, so callers can mutate what they receive without racing
// other readers. Entities with pointer or slice fields implement Detacher so
// those copies are deep. Single-key operations are linearizable; scans (FindAll,
// Filter) hold the read lock only for their own duration and give no
// snapshot guarantee across calls.
package store

import (
	"sync"

	"github.com/example/todo-tracker/domain/apperr"
)

// Entity is anything addressable by a string ID.
type Entity interface {
	GetID() string
}

// Detacher is implemented by entities holding pointer or reference fields.
// Detach replaces them with private copies so a stored value shares no
// memory with what callers hold.
type Detacher interface {
	Detach()
}

// Ptr constrains P to *E where *E is an Entity.
type Ptr[E any] interface {
	*E
	Entity
}

// Store is a keyed map of entities of one type guarded by a RWMutex.
type Store[E any, P Ptr[E]] struct {
	name  string
	items map[string]E
	mu    sync.RWMutex
}

// New creates an empty store. name is the entity kind used in error messages.
func New[E any, P Ptr[E]](name string) *Store[E, P] {
	return &Store[E, P]{
		name:  name,
		items: make(map[string]E),
	}
}

// Name returns the entity kind this store holds.
func (s *Store[E, P]) Name() string {
	return s.name
}

// Save inserts or overwrites the entity under its ID and returns a copy of
// what was stored.
func (s *Store[E, P]) Save(entity P) (P, error) {
	if err := s.checkEntity(entity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[entity.GetID()] = *clone[E, P](*entity)
	return clone[E, P](*entity), nil
}

// SaveExclusive saves entity unless some other stored entity (different ID)
// satisfies conflicts(existing, entity). The check and the write happen under
// one lock. On conflict it returns the conflicting entity and saves nothing.
func (s *Store[E, P]) SaveExclusive(entity P, conflicts func(existing, candidate P) bool) (saved P, conflict P, err error) {
	if err := s.checkEntity(entity); err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.GetID()
	if conflict := s.conflictLocked(entity, conflicts); conflict != nil {
		return nil, conflict, nil
	}

	s.items[id] = *clone[E, P](*entity)
	return clone[E, P](*entity), nil, nil
}

// ReplaceExclusive is SaveExclusive for an entity that must already exist.
// Existence, the conflict check and the write happen under one lock, so an
// entity deleted concurrently is never brought back. found is false when no
// entity is stored under the ID.
func (s *Store[E, P]) ReplaceExclusive(entity P, conflicts func(existing, candidate P) bool) (saved P, conflict P, found bool, err error) {
	if err := s.checkEntity(entity); err != nil {
		return nil, nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.GetID()
	if _, found := s.items[id]; !found {
		return nil, nil, false, nil
	}
	if conflict := s.conflictLocked(entity, conflicts); conflict != nil {
		return nil, conflict, true, nil
	}

	s.items[id] = *clone[E, P](*entity)
	return clone[E, P](*entity), nil, true, nil
}

func (s *Store[E, P]) conflictLocked(entity P, conflicts func(existing, candidate P) bool) P {
	id := entity.GetID()
	for key, item := range s.items {
		if key == id {
			continue
		}
		existing := clone[E, P](item)
		if conflicts(existing, entity) {
			return existing
		}
	}
	return nil
}

// FindByID returns a copy of the entity and whether it exists.
func (s *Store[E, P]) FindByID(id string) (P, bool, error) {
	if id == "" {
		return nil, false, apperr.InvalidArgument("%s ID cannot be empty", s.name)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, found := s.items[id]
	if !found {
		return nil, false, nil
	}
	return clone[E, P](item), true, nil
}

// Update applies mutate to the stored entity with the write lock held and
// stores the result. It returns found=false when the ID is unknown. If mutate
// returns an error nothing is written.
func (s *Store[E, P]) Update(id string, mutate func(P) error) (P, bool, error) {
	if id == "" {
		return nil, false, apperr.InvalidArgument("%s ID cannot be empty", s.name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, found := s.items[id]
	if !found {
		return nil, false, nil
	}
	working := clone[E, P](item)
	if err := mutate(working); err != nil {
		return nil, true, err
	}
	s.items[id] = *clone[E, P](*working)
	return clone[E, P](*working), true, nil
}

// FindAll returns copies of every entity in unspecified order.
func (s *Store[E, P]) FindAll() []P {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]P, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, clone[E, P](item))
	}
	return result
}

// Filter returns copies of the entities for which match is true.
func (s *Store[E, P]) Filter(match func(P) bool) []P {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]P, 0)
	for _, item := range s.items {
		candidate := clone[E, P](item)
		if match(candidate) {
			result = append(result, candidate)
		}
	}
	return result
}

// FindFirst returns a copy of some entity for which match is true.
func (s *Store[E, P]) FindFirst(match func(P) bool) (P, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		candidate := clone[E, P](item)
		if match(candidate) {
			return candidate, true
		}
	}
	return nil, false
}

// DeleteByID removes the entity and reports whether it existed.
func (s *Store[E, P]) DeleteByID(id string) (bool, error) {
	if id == "" {
		return false, apperr.InvalidArgument("%s ID cannot be empty", s.name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.items[id]; !found {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// Delete removes the given entity by its ID.
func (s *Store[E, P]) Delete(entity P) (bool, error) {
	if entity == nil {
		return false, apperr.InvalidArgument("%s cannot be nil", s.name)
	}
	return s.DeleteByID(entity.GetID())
}

// ExistsByID reports whether an entity is stored under id.
func (s *Store[E, P]) ExistsByID(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.items[id]
	return found
}

// Count returns the number of stored entities.
func (s *Store[E, P]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// DeleteAll clears the store.
func (s *Store[E, P]) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]E)
}

func (s *Store[E, P]) checkEntity(entity P) error {
	if entity == nil {
		return apperr.InvalidArgument("%s cannot be nil", s.name)
	}
	if entity.GetID() == "" {
		return apperr.InvalidArgument("%s ID cannot be null or empty", s.name)
	}
	return nil
}

func clone[E any, P Ptr[E]](item E) P {
	c := item
	p := P(&c)
	if d, ok := any(p).(Detacher); ok {
		d.Detach()
	}
	return p
}
