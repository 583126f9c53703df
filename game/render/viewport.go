package render

import "github.com/playbymail/vgacore/game/mapcore"

// Options is a bitmask of what a Viewport should draw.
type Options uint32

const (
	ShowMinefields Options = 1 << iota
	ShowUfos
	ShowIonStorms
	ShowDrawings
	ShowShipDots
	ShowShipTrails
	ShowWarpWells
	RoundGravityWells
)

// Viewport is the renderer's sole input: the universe plus display state.
type Viewport struct {
	Universe    *mapcore.Universe
	Options     Options
	Zoom        float64
	ViewerOwner int
	VisibleTags map[uint16]bool

	Center mapcore.Point
	HalfExtent mapcore.Point // half the visible width/height, in map units

	TurnNumber int
}

func (v *Viewport) min() mapcore.Point {
	return mapcore.Point{X: v.Center.X - v.HalfExtent.X, Y: v.Center.Y - v.HalfExtent.Y}
}

func (v *Viewport) max() mapcore.Point {
	return mapcore.Point{X: v.Center.X + v.HalfExtent.X, Y: v.Center.Y + v.HalfExtent.Y}
}

// ContainsPoint reports whether pt is inside the viewport's visible area.
func (v *Viewport) ContainsPoint(pt mapcore.Point) bool {
	min, max := v.min(), v.max()
	return pt.X >= min.X && pt.X <= max.X && pt.Y >= min.Y && pt.Y <= max.Y
}

// ContainsLine reports whether the segment a-b might be visible (a cheap
// bounding-box overlap test, not exact clipping).
func (v *Viewport) ContainsLine(a, b mapcore.Point) bool {
	min, max := v.min(), v.max()
	lo := mapcore.Point{X: minInt(a.X, b.X), Y: minInt(a.Y, b.Y)}
	hi := mapcore.Point{X: maxInt(a.X, b.X), Y: maxInt(a.Y, b.Y)}
	return lo.X <= max.X && hi.X >= min.X && lo.Y <= max.Y && hi.Y >= min.Y
}

// ContainsCircle reports whether a circle at center with radius r might
// overlap the viewport.
func (v *Viewport) ContainsCircle(center mapcore.Point, r int) bool {
	min, max := v.min(), v.max()
	return center.X+r >= min.X && center.X-r <= max.X && center.Y+r >= min.Y && center.Y-r <= max.Y
}

// ContainsRectangle reports whether the rectangle a-b might overlap the
// viewport.
func (v *Viewport) ContainsRectangle(a, b mapcore.Point) bool {
	return v.ContainsLine(a, b)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
