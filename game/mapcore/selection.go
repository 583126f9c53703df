package mapcore

// NumSelectionLayers is the fixed number of selection layers the system
// maintains (the source's typical configuration).
const NumSelectionLayers = 8

// SelectionVector is a sparse marked-state set over entity ids.
type SelectionVector map[int]bool

// Clone returns an independent copy of v.
func (v SelectionVector) Clone() SelectionVector {
	out := make(SelectionVector, len(v))
	for k, b := range v {
		out[k] = b
	}
	return out
}

// selectionLayer holds one layer's ship and planet marked-state.
type selectionLayer struct {
	ships   SelectionVector
	planets SelectionVector
}

// SelectionSystem holds NumSelectionLayers layers of ship/planet
// selection state, plus the universe's "current" live marked-state.
type SelectionSystem struct {
	layers       [NumSelectionLayers]selectionLayer
	currentLayer int

	currentShips   SelectionVector
	currentPlanets SelectionVector
}

// NewSelectionSystem returns a ready-to-use system with every layer empty.
func NewSelectionSystem() *SelectionSystem {
	s := &SelectionSystem{currentShips: SelectionVector{}, currentPlanets: SelectionVector{}}
	for i := range s.layers {
		s.layers[i] = selectionLayer{ships: SelectionVector{}, planets: SelectionVector{}}
	}
	return s
}

// CurrentLayer returns the index of the layer currently mirrored into the
// universe's live marked-state.
func (s *SelectionSystem) CurrentLayer() int { return s.currentLayer }

// MarkShip/IsShipMarked manipulate the live (current) marked-state, the
// one CopyFrom copies into a layer and CopyTo overwrites from a layer.
func (s *SelectionSystem) MarkShip(id int, marked bool) {
	if marked {
		s.currentShips[id] = true
	} else {
		delete(s.currentShips, id)
	}
}

func (s *SelectionSystem) IsShipMarked(id int) bool { return s.currentShips[id] }

func (s *SelectionSystem) MarkPlanet(id int, marked bool) {
	if marked {
		s.currentPlanets[id] = true
	} else {
		delete(s.currentPlanets, id)
	}
}

func (s *SelectionSystem) IsPlanetMarked(id int) bool { return s.currentPlanets[id] }

// CopyFrom pulls the universe's current marked-state into layer.
func (s *SelectionSystem) CopyFrom(univ *Universe, layer int) {
	s.limitToExistingObjects(univ)
	s.layers[layer] = selectionLayer{ships: s.currentShips.Clone(), planets: s.currentPlanets.Clone()}
}

// CopyTo pushes layer back onto the universe's current marked-state.
func (s *SelectionSystem) CopyTo(univ *Universe, layer int) {
	s.currentShips = s.layers[layer].ships.Clone()
	s.currentPlanets = s.layers[layer].planets.Clone()
	s.limitToExistingObjects(univ)
}

// SetCurrentLayer persists the live state into the current layer's slot,
// then loads newLayer as the new live state.
func (s *SelectionSystem) SetCurrentLayer(univ *Universe, newLayer int) {
	s.layers[s.currentLayer] = selectionLayer{ships: s.currentShips.Clone(), planets: s.currentPlanets.Clone()}
	s.currentLayer = newLayer
	s.currentShips = s.layers[newLayer].ships.Clone()
	s.currentPlanets = s.layers[newLayer].planets.Clone()
	s.limitToExistingObjects(univ)
}

// limitToExistingObjects clears marked bits for ids the universe has no
// entity for.
func (s *SelectionSystem) limitToExistingObjects(univ *Universe) {
	for id := range s.currentShips {
		if _, ok := univ.Ships.Get(id); !ok {
			delete(s.currentShips, id)
		}
	}
	for id := range s.currentPlanets {
		if _, ok := univ.Planets.Get(id); !ok {
			delete(s.currentPlanets, id)
		}
	}
}

// ObjectKind names the object collection an Expr is evaluated over.
type ObjectKind int

const (
	KindShip ObjectKind = iota
	KindPlanet
)

// Expr is a compiled boolean selection expression, evaluated per-id across
// one of the two object kinds.
type Expr interface {
	eval(s *SelectionSystem, kind ObjectKind, id int) bool
}

type layerExpr struct{ layer int }

func (e layerExpr) eval(s *SelectionSystem, kind ObjectKind, id int) bool {
	l := s.layers[e.layer]
	switch kind {
	case KindShip:
		return l.ships[id]
	default:
		return l.planets[id]
	}
}

type currentExpr struct{}

func (currentExpr) eval(s *SelectionSystem, kind ObjectKind, id int) bool {
	switch kind {
	case KindShip:
		return s.currentShips[id]
	default:
		return s.currentPlanets[id]
	}
}

type andExpr struct{ a, b Expr }

func (e andExpr) eval(s *SelectionSystem, kind ObjectKind, id int) bool {
	return e.a.eval(s, kind, id) && e.b.eval(s, kind, id)
}

type orExpr struct{ a, b Expr }

func (e orExpr) eval(s *SelectionSystem, kind ObjectKind, id int) bool {
	return e.a.eval(s, kind, id) || e.b.eval(s, kind, id)
}

type notExpr struct{ a Expr }

func (e notExpr) eval(s *SelectionSystem, kind ObjectKind, id int) bool {
	return !e.a.eval(s, kind, id)
}

// Layer references selection layer n (0-based) as an expression leaf.
func Layer(n int) Expr { return layerExpr{n} }

// Current references the live marked-state as an expression leaf.
func Current() Expr { return currentExpr{} }

// And, Or, Not combine expressions.
func And(a, b Expr) Expr { return andExpr{a, b} }
func Or(a, b Expr) Expr  { return orExpr{a, b} }
func Not(a Expr) Expr    { return notExpr{a} }

// ExecuteCompiledExpression evaluates expr over every ship and planet the
// universe knows about, writing the result into targetLayer, then limits
// the result to ids that still exist.
func (s *SelectionSystem) ExecuteCompiledExpression(univ *Universe, expr Expr, targetLayer int) {
	ships := SelectionVector{}
	for _, sh := range univ.Ships.All() {
		if expr.eval(s, KindShip, sh.Id) {
			ships[sh.Id] = true
		}
	}
	planets := SelectionVector{}
	for _, p := range univ.Planets.All() {
		if expr.eval(s, KindPlanet, p.Id) {
			planets[p.Id] = true
		}
	}
	s.layers[targetLayer] = selectionLayer{ships: ships, planets: planets}
}
