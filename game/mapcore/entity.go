package mapcore

// Playability describes how much a ship or planet's data can be trusted
// and whether the local player may issue orders against it.
type Playability int

const (
	NotPlayable Playability = iota
	ReadOnly
	Playable
)

// Optional represents a possibly-unknown field, the norm for partial-
// knowledge entities rather than a dedicated nil pointer per field.
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps a known value.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// None returns an unknown Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is known.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether the value is known.
func (o Optional[T]) IsSet() bool { return o.set }

// OrElse returns the value if known, else fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Entity is the common interface every map object implements: a stable
// integer id.
type Entity interface {
	ID() int
}

// EntityCollection manages a sparse, id-indexed set of entities of the
// same type. The zero value is not ready to use; call
// NewEntityCollection.
type EntityCollection[T Entity] struct {
	byID map[int]T
	ids  []int // ascending id order
}

// NewEntityCollection returns an empty, ready-to-use collection.
func NewEntityCollection[T Entity]() *EntityCollection[T] {
	return &EntityCollection[T]{byID: make(map[int]T)}
}

// Get retrieves the entity with the given id.
func (c *EntityCollection[T]) Get(id int) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// Set inserts or replaces the entity at its own id.
func (c *EntityCollection[T]) Set(e T) {
	id := e.ID()
	if _, exists := c.byID[id]; !exists {
		c.insertSorted(id)
	}
	c.byID[id] = e
}

// Delete removes the entity with the given id, if present.
func (c *EntityCollection[T]) Delete(id int) {
	if _, exists := c.byID[id]; !exists {
		return
	}
	delete(c.byID, id)
	for i, v := range c.ids {
		if v == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
}

func (c *EntityCollection[T]) insertSorted(id int) {
	i := 0
	for i < len(c.ids) && c.ids[i] < id {
		i++
	}
	c.ids = append(c.ids, 0)
	copy(c.ids[i+1:], c.ids[i:])
	c.ids[i] = id
}

// Count returns the number of entities in the collection.
func (c *EntityCollection[T]) Count() int { return len(c.ids) }

// All returns every entity, ordered by ascending id.
func (c *EntityCollection[T]) All() []T {
	out := make([]T, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.byID[id])
	}
	return out
}

// FindNextIndex returns the smallest id strictly greater than i that exists
// in the collection, or 0 when there is none (matching ObjectType's
// "0 means past the end" convention).
func (c *EntityCollection[T]) FindNextIndex(i int) int {
	for _, id := range c.ids {
		if id > i {
			return id
		}
	}
	return 0
}
