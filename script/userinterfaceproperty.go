// Package script implements the small slice of the scripting interface
// the core exposes to callers, without specifying the scripting engine
// itself: the user-interface property stack a running script reads
// "UI.X"/"UI.Screen"-style values through, and the values those
// properties carry.
package script

// Property identifies one user-interface value a script may read or
// write — current screen, scanner/starchart cursor, and so on.
type Property int

const (
	ScreenNumber Property = iota
	Iterator
	SimFlag
	ScanX
	ScanY
	ChartX
	ChartY
)

// Value is whatever a property holds: an int, a bool, or nil ("not
// currently known" — e.g. ScanX before anything has been scanned).
type Value = any
