// Package render traverses a mapcore.Universe and emits semantic drawing
// events to a RendererListener, independent of any UI backend.
package render

import "github.com/playbymail/vgacore/game/mapcore"

// ShipFlags and PlanetFlags mirror the source's ris*/rip* bit names.
type ShipFlags uint16

const (
	ShipShowIcon ShipFlags = 1 << iota
	ShipShowDot
	ShipFleetLeader
	ShipAtPlanet
)

type PlanetFlags uint16

const (
	PlanetUnowned PlanetFlags = 1 << iota
	PlanetOwn
	PlanetAllied
	PlanetEnemy
	PlanetHasBase
	PlanetOwnShips
	PlanetAlliedShips
	PlanetEnemyShips
	PlanetGuessedAlliedShips
	PlanetGuessedEnemyShips
)

// TrailFlags marks which endpoint of a ship trail segment is known.
type TrailFlags uint8

const (
	TrailFromPosition TrailFlags = 1 << iota
	TrailToPosition
)

// Relation classifies an object relative to the viewing player.
type Relation int

const (
	RelationUnowned Relation = iota
	RelationOwn
	RelationAllied
	RelationEnemy
)

// Direction is one of the four cardinal warp-well edge directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Listener is the opaque sink the renderer emits semantic draw events to
// (§6.1). Any UI backend implements this once.
type Listener interface {
	DrawGridLine(a, b mapcore.Point)
	DrawBorderLine(a, b mapcore.Point)
	DrawBorderCircle(center mapcore.Point, radius int)

	DrawMinefield(center mapcore.Point, id int, radius int, isWeb bool, relation Relation, filled bool)
	DrawUfo(center mapcore.Point, id int, radius int, color int, speed, heading int, filled bool)
	DrawUfoConnection(a, b mapcore.Point, color int)
	DrawIonStorm(center mapcore.Point, radius, voltage, speed, heading int, filled bool)

	DrawUserLine(a, b mapcore.Point, color int)
	DrawUserRectangle(a, b mapcore.Point, color int)
	DrawUserCircle(center mapcore.Point, radius int, color int)
	DrawUserMarker(center mapcore.Point, kind int, color int, comment string)
	DrawExplosion(pos mapcore.Point)

	DrawSelection(pos mapcore.Point)
	DrawMessageMarker(pos mapcore.Point)

	DrawShip(pos mapcore.Point, id int, relation Relation, flags ShipFlags, label string)
	DrawShipTrail(a, b mapcore.Point, relation Relation, flags TrailFlags, age int)
	DrawShipWaypoint(a, b mapcore.Point, relation Relation)
	DrawShipVector(a, b mapcore.Point, relation Relation)

	DrawPlanet(pos mapcore.Point, id int, flags PlanetFlags, label string)
	DrawWarpWellEdge(pos mapcore.Point, direction Direction)
}
