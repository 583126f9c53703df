package mapcore

// BoundingBox accumulates points and circles to determine the displayable
// area of a universe. Bounds are half-open: Min is inclusive, Max is
// exclusive.
type BoundingBox struct {
	Min, Max Point
	empty    bool
}

// NewBoundingBox returns an empty box, ready to accumulate.
func NewBoundingBox() *BoundingBox {
	return &BoundingBox{empty: true}
}

// AddPoint widens the box to include pt.
func (b *BoundingBox) AddPoint(pt Point) {
	if b.empty {
		b.Min = pt
		b.Max = Point{pt.X + 1, pt.Y + 1}
		b.empty = false
		return
	}
	if pt.X < b.Min.X {
		b.Min.X = pt.X
	}
	if pt.Y < b.Min.Y {
		b.Min.Y = pt.Y
	}
	if pt.X+1 > b.Max.X {
		b.Max.X = pt.X + 1
	}
	if pt.Y+1 > b.Max.Y {
		b.Max.Y = pt.Y + 1
	}
}

// AddCircle widens the box to include a circle centered at pt with the
// given radius.
func (b *BoundingBox) AddCircle(pt Point, radius int) {
	b.AddPoint(Point{pt.X - radius, pt.Y - radius})
	b.AddPoint(Point{pt.X + radius, pt.Y + radius})
}

// defaultMarkerRadius is the assumed radius a Marker drawing contributes
// to the bounding box (markers have no stored radius).
const defaultMarkerRadius = 10

// AddUniverse widens the box to include every ship, planet, minefield,
// ion storm, ufo, and user drawing in univ.
func (b *BoundingBox) AddUniverse(univ *Universe) {
	for _, p := range univ.Planets.All() {
		b.AddPoint(p.Position)
	}
	for _, s := range univ.Ships.All() {
		if pos, ok := s.Position.Get(); ok {
			b.AddPoint(pos)
		}
	}
	for _, m := range univ.Minefields.All() {
		b.AddCircle(m.Center, m.Radius())
	}
	for _, s := range univ.IonStorms.All() {
		b.AddCircle(s.Center, s.Radius)
	}
	for _, u := range univ.Ufos.All() {
		b.AddCircle(u.Position, u.Radius)
	}
	for _, d := range univ.Drawings.All() {
		switch d.Kind {
		case DrawingLine, DrawingRectangle:
			b.AddPoint(d.Pos)
			if sp, ok := d.SecondaryPos.Get(); ok {
				b.AddPoint(sp)
			}
		case DrawingCircle:
			b.AddCircle(d.Pos, d.Radius.OrElse(0))
		case DrawingMarker:
			b.AddCircle(d.Pos, defaultMarkerRadius)
		}
	}
}

// IsEmpty reports whether nothing has been accumulated.
func (b *BoundingBox) IsEmpty() bool { return b.empty }
