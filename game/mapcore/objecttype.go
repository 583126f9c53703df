package mapcore

// ObjectType is the predicate-filtered view over an entity collection the
// design notes call for in place of virtual dispatch: the container is
// always the same entity vector, and the predicate closure is the only
// variation point between "all ships", "played ships", "history ships",
// and so on.
type ObjectType[T Entity] struct {
	collection *EntityCollection[T]
	position   func(T) Point
	predicate  func(T) bool
}

// NewObjectType builds a view over collection, exposing only entities for
// which predicate returns true. position extracts an entity's location,
// used by FindFirstObjectAt/FindNextObjectAt.
func NewObjectType[T Entity](collection *EntityCollection[T], position func(T) Point, predicate func(T) bool) *ObjectType[T] {
	return &ObjectType[T]{collection: collection, position: position, predicate: predicate}
}

// FindNextIndex returns the smallest id greater than i whose entity passes
// the predicate, or 0 when there is none.
func (o *ObjectType[T]) FindNextIndex(i int) int {
	for {
		next := o.collection.FindNextIndex(i)
		if next == 0 {
			return 0
		}
		if e, ok := o.collection.Get(next); ok && o.predicate(e) {
			return next
		}
		i = next
	}
}

// GetObjectByIndex returns the entity at id i, or the zero value and false
// if it doesn't exist or fails the predicate.
func (o *ObjectType[T]) GetObjectByIndex(i int) (T, bool) {
	e, ok := o.collection.Get(i)
	if !ok || !o.predicate(e) {
		var zero T
		return zero, false
	}
	return e, true
}

// FindNextIndexNoWrap is FindNextIndex restricted to entities not already
// present (by id) in marked.
func (o *ObjectType[T]) FindNextIndexNoWrap(i int, marked map[int]bool) int {
	idx := i
	for {
		idx = o.FindNextIndex(idx)
		if idx == 0 {
			return 0
		}
		if !marked[idx] {
			return idx
		}
	}
}

// FindFirstObjectAt returns the id of the first entity at pt, or 0.
func (o *ObjectType[T]) FindFirstObjectAt(pt Point) int {
	return o.FindNextObjectAt(pt, 0, nil)
}

// FindNextObjectAt returns the id of the next entity at pt after id after,
// skipping ids present in marked, or 0 when there is none.
func (o *ObjectType[T]) FindNextObjectAt(pt Point, after int, marked map[int]bool) int {
	idx := after
	for {
		idx = o.FindNextIndex(idx)
		if idx == 0 {
			return 0
		}
		if marked != nil && marked[idx] {
			continue
		}
		e, _ := o.collection.Get(idx)
		if o.position(e) == pt {
			return idx
		}
	}
}

// Count iterates the full type once, returning how many entities pass.
func (o *ObjectType[T]) Count() int {
	n := 0
	for i := o.FindNextIndex(0); i != 0; i = o.FindNextIndex(i) {
		n++
	}
	return n
}

func shipPosition(s *Ship) Point    { return s.Position.OrElse(Point{}) }
func planetPosition(p *Planet) Point { return p.Position }

// AnyShipType views every ship with a known position.
func AnyShipType(u *Universe) *ObjectType[*Ship] {
	return NewObjectType(u.Ships, shipPosition, func(s *Ship) bool { return s.Position.IsSet() })
}

// PlayedShipType views ships the local player can give orders to.
func PlayedShipType(u *Universe) *ObjectType[*Ship] {
	return NewObjectType(u.Ships, shipPosition, func(s *Ship) bool { return s.Playability == Playable })
}

// HistoryShipType views ships known only from history (not currently
// playable or read-only, but still visible).
func HistoryShipType(u *Universe) *ObjectType[*Ship] {
	return NewObjectType(u.Ships, shipPosition, func(s *Ship) bool {
		return s.Playability == NotPlayable && s.Visible
	})
}

// AnyPlanetType views every visible planet.
func AnyPlanetType(u *Universe) *ObjectType[*Planet] {
	return NewObjectType(u.Planets, planetPosition, func(p *Planet) bool { return p.Visible })
}

// PlayedPlanetType views planets the local player can give orders to.
func PlayedPlanetType(u *Universe) *ObjectType[*Planet] {
	return NewObjectType(u.Planets, planetPosition, func(p *Planet) bool { return p.Playability == Playable })
}

// PlayedBaseType views starbases the local player can give orders to.
func PlayedBaseType(u *Universe) *ObjectType[*Planet] {
	return NewObjectType(u.Planets, planetPosition, func(p *Planet) bool {
		return p.Playability == Playable && p.HasBase
	})
}

// FleetType views ships flagged as a fleet leader.
func FleetType(u *Universe) *ObjectType[*Ship] {
	return NewObjectType(u.Ships, shipPosition, func(s *Ship) bool {
		leader, _ := s.FleetLeader.Get()
		return leader
	})
}
