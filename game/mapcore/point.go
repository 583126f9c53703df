// Package mapcore implements the in-memory universe: entities, geometric
// configuration, post-processing, and the selection system.
package mapcore

// Point is an integer 2D coordinate.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// SquaredDistanceTo returns the flat squared distance between p and q,
// ignoring any map wraparound (use MapConfiguration.GetSquaredDistance for
// wraparound-aware distance).
func (p Point) SquaredDistanceTo(q Point) int64 {
	dx := int64(p.X - q.X)
	dy := int64(p.Y - q.Y)
	return dx*dx + dy*dy
}
