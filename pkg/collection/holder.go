package collection

import (
	"errors"
	"sync"

	"wardrobe-planner/pkg/idgen"
)

var (
	ErrNotFound    = errors.New("collection: entity not found")
	ErrDuplicateID = errors.New("collection: duplicate id")
)

// Entity is the pointer side of a collection element: anything that exposes
// a string identifier.
type Entity[T any] interface {
	*T
	GetID() string
	SetID(string)
}

// cloner is optionally implemented by elements that carry slices or maps, so
// callers never share backing storage with the holder.
type cloner[T any] interface {
	Clone() T
}

// Patch mutates the named fields of an entity copy.
type Patch[T any] func(*T)

// BoolField selects a boolean field for Toggle.
type BoolField[T any] func(*T) *bool

// Holder is an ordered, mutex-guarded in-memory collection. Every mutation is
// synchronous and visible to the next read.
type Holder[T any, PT Entity[T]] struct {
	mu    sync.RWMutex
	items []T
	ids   idgen.Generator
}

// New creates a Holder. A nil generator falls back to idgen.Default.
func New[T any, PT Entity[T]](ids idgen.Generator) *Holder[T, PT] {
	if ids == nil {
		ids = idgen.Default
	}
	return &Holder[T, PT]{ids: ids}
}

// Insert appends v, assigning a fresh client id when v has none.
func (h *Holder[T, PT]) Insert(v T) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	v = clone(v)
	p := PT(&v)
	if p.GetID() == "" {
		p.SetID(h.ids.Next())
	}
	if h.indexOf(p.GetID()) >= 0 {
		var zero T
		return zero, ErrDuplicateID
	}

	h.items = append(h.items, v)
	return clone(v), nil
}

// Patch applies fn to the entity with the given id. The id itself is not
// patchable; use Replace for that.
func (h *Holder[T, PT]) Patch(id string, fn Patch[T]) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}

	v := clone(h.items[i])
	fn(&v)
	PT(&v).SetID(id)
	h.items[i] = v
	return clone(v), nil
}

// Toggle flips the boolean selected by field.
func (h *Holder[T, PT]) Toggle(id string, field BoolField[T]) (T, error) {
	return h.Patch(id, func(v *T) {
		b := field(v)
		*b = !*b
	})
}

// Replace swaps the entity at id for v in place, keeping its position. v may
// carry a different id, which must not collide with another entity.
func (h *Holder[T, PT]) Replace(id string, v T) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}

	v = clone(v)
	p := PT(&v)
	if p.GetID() == "" {
		p.SetID(id)
	}
	if newID := p.GetID(); newID != id && h.indexOf(newID) >= 0 {
		var zero T
		return zero, ErrDuplicateID
	}

	h.items[i] = v
	return clone(v), nil
}

// Remove deletes the entity with the given id.
func (h *Holder[T, PT]) Remove(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	h.items = append(h.items[:i], h.items[i+1:]...)
	return nil
}

// Get returns a copy of the entity with the given id.
func (h *Holder[T, PT]) Get(id string) (T, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	i := h.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return clone(h.items[i]), true
}

// Items returns a snapshot in collection order.
func (h *Holder[T, PT]) Items() []T {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]T, len(h.items))
	for i, v := range h.items {
		out[i] = clone(v)
	}
	return out
}

func (h *Holder[T, PT]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}

// Reset replaces the whole collection, typically with a fresh backend
// listing. On error the previous contents are kept.
func (h *Holder[T, PT]) Reset(items []T) error {
	next := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, v := range items {
		v = clone(v)
		p := PT(&v)
		if p.GetID() == "" {
			p.SetID(h.ids.Next())
		}
		if _, dup := seen[p.GetID()]; dup {
			return ErrDuplicateID
		}
		seen[p.GetID()] = struct{}{}
		next = append(next, v)
	}

	h.items = next
	return nil
}

func (h *Holder[T, PT]) indexOf(id string) int {
	for i := range h.items {
		if PT(&h.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

func clone[T any](v T) T {
	if c, ok := any(&v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}
