package mapcore

// Mode identifies a universe's wraparound topology.
type Mode int

const (
	Flat Mode = iota
	Wrapped
	Circular
)

// wrappedImageOffsets are the 3x3 grid of wrap copies used for Wrapped maps.
var wrappedImageOffsets = []Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// circularImageOffsets extends the wrapped set with the four axis-aligned
// "double-step" copies a circular map's overlap band can expose.
var circularImageOffsets = append(append([]Point{}, wrappedImageOffsets...),
	Point{-2, 0}, Point{2, 0}, Point{0, -2}, Point{0, 2},
)

// MapConfiguration describes a universe's geometric mode, extent, and
// coordinate bounds.
type MapConfiguration struct {
	Mode       Mode
	Center     Point
	Size       Point // width/height for Wrapped, or radius*2 for Circular
	MinCoord   Point
	MaxCoord   Point
}

// NewFlatConfiguration builds a non-wrapping configuration bounded by min/max.
func NewFlatConfiguration(min, max Point) MapConfiguration {
	return MapConfiguration{Mode: Flat, MinCoord: min, MaxCoord: max}
}

// NewWrappedConfiguration builds a Wrapped configuration of the given size
// centered at center.
func NewWrappedConfiguration(center, size Point) MapConfiguration {
	half := Point{size.X / 2, size.Y / 2}
	return MapConfiguration{
		Mode: Wrapped, Center: center, Size: size,
		MinCoord: center.Sub(half), MaxCoord: center.Add(half),
	}
}

// NewCircularConfiguration builds a Circular configuration of the given
// radius (stored doubled in Size, matching Wrapped's width/height shape).
func NewCircularConfiguration(center Point, radius int) MapConfiguration {
	size := Point{radius * 2, radius * 2}
	return MapConfiguration{
		Mode: Circular, Center: center, Size: size,
		MinCoord: center.Sub(Point{radius, radius}),
		MaxCoord: center.Add(Point{radius, radius}),
	}
}

func wrapCoord(v, min, size int) int {
	if size <= 0 {
		return v
	}
	m := (v - min) % size
	if m < 0 {
		m += size
	}
	return m + min
}

// GetCanonicalLocation normalizes pt to its canonical image: a no-op for
// Flat, mod-wrapped into [min,max) for Wrapped, and radially projected back
// inside the boundary circle for Circular.
func (c MapConfiguration) GetCanonicalLocation(pt Point) Point {
	switch c.Mode {
	case Wrapped:
		return Point{
			wrapCoord(pt.X, c.MinCoord.X, c.Size.X),
			wrapCoord(pt.Y, c.MinCoord.Y, c.Size.Y),
		}
	case Circular:
		radius := c.Size.X / 2
		if radius <= 0 {
			return pt
		}
		rel := pt.Sub(c.Center)
		distSq := rel.X*rel.X + rel.Y*rel.Y
		if distSq <= radius*radius {
			return pt
		}
		// project onto the boundary circle, preserving direction.
		dist := isqrt(distSq)
		if dist == 0 {
			return c.Center
		}
		return Point{
			c.Center.X + rel.X*radius/dist,
			c.Center.Y + rel.Y*radius/dist,
		}
	default:
		return pt
	}
}

// GetNumRectangularImages returns how many rectangular copies of the map
// the renderer should consider drawing: 1 for Flat, 9 for the classical
// 3x3 Wrapped grid, 13 for Circular (adds the four double-step copies).
func (c MapConfiguration) GetNumRectangularImages() int {
	switch c.Mode {
	case Wrapped:
		return len(wrappedImageOffsets)
	case Circular:
		return len(circularImageOffsets)
	default:
		return 1
	}
}

// GetSimplePointAlias translates pt to the given image index, per the
// offset table GetNumRectangularImages draws from.
func (c MapConfiguration) GetSimplePointAlias(pt Point, imageIndex int) Point {
	offsets := c.imageOffsets()
	if imageIndex < 0 || imageIndex >= len(offsets) {
		return pt
	}
	off := offsets[imageIndex]
	return Point{pt.X + off.X*c.Size.X, pt.Y + off.Y*c.Size.Y}
}

func (c MapConfiguration) imageOffsets() []Point {
	switch c.Mode {
	case Wrapped:
		return wrappedImageOffsets
	case Circular:
		return circularImageOffsets
	default:
		return []Point{{0, 0}}
	}
}

// GetPointAlias finds an aliased copy of pt near center. For Wrapped/Circular
// maps it walks the image offsets (skipping the identity image) and returns
// the alias closest to center among those strictly closer than pt; with
// isExactPoint, an alias exactly as far as pt also counts when no closer
// one has been seen yet. mode=1 additionally requires the alias to lie
// outside the boundary circle (the "outside-of-circle" alias Circular maps
// use for overlap rendering). Returns false when Flat, or when no alias
// qualifies.
func (c MapConfiguration) GetPointAlias(pt Point, center Point, mode int, isExactPoint bool) (Point, bool) {
	if c.Mode == Flat {
		return Point{}, false
	}
	best := pt
	bestDist := pt.SquaredDistanceTo(center)
	found := false
	for i, off := range c.imageOffsets() {
		if off.X == 0 && off.Y == 0 {
			continue
		}
		_ = i
		candidate := Point{pt.X + off.X*c.Size.X, pt.Y + off.Y*c.Size.Y}
		if mode == 1 && c.Mode == Circular {
			radius := c.Size.X / 2
			rel := candidate.Sub(c.Center)
			if rel.X*rel.X+rel.Y*rel.Y <= radius*radius {
				continue
			}
		}
		d := candidate.SquaredDistanceTo(center)
		if d < bestDist || (isExactPoint && d == bestDist && !found) {
			best, bestDist, found = candidate, d, true
		}
	}
	return best, found
}

// GetSquaredDistance returns the wraparound-aware squared distance between
// a and b: for Wrapped/Circular maps, the minimum over all image copies.
func (c MapConfiguration) GetSquaredDistance(a, b Point) int64 {
	if c.Mode == Flat {
		return a.SquaredDistanceTo(b)
	}
	best := a.SquaredDistanceTo(b)
	for _, off := range c.imageOffsets() {
		candidate := Point{a.X + off.X*c.Size.X, a.Y + off.Y*c.Size.Y}
		if d := candidate.SquaredDistanceTo(b); d < best {
			best = d
		}
	}
	return best
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
