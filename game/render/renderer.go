package render

import "github.com/playbymail/vgacore/game/mapcore"

const historyTrailLength = 16

// relationOf classifies owner relative to the viewer.
func relationOf(viewer, owner int, allied func(a, b int) bool) Relation {
	switch {
	case owner == 0:
		return RelationUnowned
	case owner == viewer:
		return RelationOwn
	case allied != nil && allied(viewer, owner):
		return RelationAllied
	default:
		return RelationEnemy
	}
}

// AlliedFunc reports whether two owners are mutual allies, for relation
// classification; nil means no alliances are modeled.
type AlliedFunc func(a, b int) bool

// Render traverses vp.Universe in the fixed order the source establishes:
// map border, minefields/ufos/ion storms/drawings, ship extras, planets,
// ships. Minefields, ufos, ion storms, drawings, planets and ships are
// clipped against the viewport and emitted once per visible wrap/circular
// image; ufo connections, explosions and ship extras are clipped at their
// stored position and emitted once, and the border is always emitted.
func Render(vp *Viewport, listener Listener, allied AlliedFunc) {
	images := vp.Universe.Configuration.GetNumRectangularImages()

	drawGrid(vp, listener)

	if vp.Options&ShowMinefields != 0 {
		drawMinefields(vp, listener, allied, images)
	}
	if vp.Options&ShowUfos != 0 {
		drawUfos(vp, listener, images)
	}
	if vp.Options&ShowIonStorms != 0 {
		drawIonStorms(vp, listener, images)
	}
	if vp.Options&ShowDrawings != 0 {
		drawDrawings(vp, listener, images)
	}

	drawShipExtras(vp, listener, allied, images)

	drawPlanets(vp, listener, allied, images)
	drawShips(vp, listener, allied, images)
}

func forEachImage(vp *Viewport, pt mapcore.Point, images int, fn func(mapcore.Point)) {
	for i := 0; i < images; i++ {
		fn(vp.Universe.Configuration.GetSimplePointAlias(pt, i))
	}
}

func drawGrid(vp *Viewport, listener Listener) {
	min := mapcore.Point{X: vp.Universe.Configuration.MinCoord.X, Y: vp.Universe.Configuration.MinCoord.Y}
	max := vp.Universe.Configuration.MaxCoord
	switch vp.Universe.Configuration.Mode {
	case mapcore.Circular:
		listener.DrawBorderCircle(vp.Universe.Configuration.Center, vp.Universe.Configuration.Size.X/2)
	default:
		listener.DrawBorderLine(mapcore.Point{X: min.X, Y: min.Y}, mapcore.Point{X: max.X, Y: min.Y})
		listener.DrawBorderLine(mapcore.Point{X: max.X, Y: min.Y}, mapcore.Point{X: max.X, Y: max.Y})
		listener.DrawBorderLine(mapcore.Point{X: max.X, Y: max.Y}, mapcore.Point{X: min.X, Y: max.Y})
		listener.DrawBorderLine(mapcore.Point{X: min.X, Y: max.Y}, mapcore.Point{X: min.X, Y: min.Y})
	}
}

func drawMinefields(vp *Viewport, listener Listener, allied AlliedFunc, images int) {
	for _, m := range vp.Universe.Minefields.All() {
		rel := relationOf(vp.ViewerOwner, m.Owner, allied)
		radius := m.Radius()
		forEachImage(vp, m.Center, images, func(pt mapcore.Point) {
			if vp.ContainsCircle(pt, radius) {
				listener.DrawMinefield(pt, m.Id, radius, m.IsWeb, rel, false)
			}
		})
	}
}

func drawUfos(vp *Viewport, listener Listener, images int) {
	for _, u := range vp.Universe.Ufos.All() {
		forEachImage(vp, u.Position, images, func(pt mapcore.Point) {
			if vp.ContainsCircle(pt, u.Radius) {
				listener.DrawUfo(pt, u.Id, u.Radius, u.Color, u.Speed.OrElse(0), u.Heading.OrElse(0), false)
			}
		})
		if other, ok := u.OtherEnd.Get(); ok {
			if otherUfo, ok2 := vp.Universe.Ufos.Get(other); ok2 {
				if vp.ContainsLine(u.Position, otherUfo.Position) {
					listener.DrawUfoConnection(u.Position, otherUfo.Position, u.Color)
				}
			}
		}
	}
}

func drawIonStorms(vp *Viewport, listener Listener, images int) {
	for _, s := range vp.Universe.IonStorms.All() {
		forEachImage(vp, s.Center, images, func(pt mapcore.Point) {
			if vp.ContainsCircle(pt, s.Radius) {
				listener.DrawIonStorm(pt, s.Radius, s.Voltage, s.Speed, s.Heading, false)
			}
		})
	}
}

func drawDrawings(vp *Viewport, listener Listener, images int) {
	for _, d := range vp.Universe.Drawings.All() {
		if !d.IsVisible(vp.TurnNumber, vp.VisibleTags) {
			continue
		}
		forEachImage(vp, d.Pos, images, func(pt mapcore.Point) {
			switch d.Kind {
			case mapcore.DrawingLine:
				sp := d.SecondaryPos.OrElse(pt)
				if vp.ContainsLine(pt, sp) {
					listener.DrawUserLine(pt, sp, d.Color)
				}
			case mapcore.DrawingRectangle:
				sp := d.SecondaryPos.OrElse(pt)
				if vp.ContainsRectangle(pt, sp) {
					listener.DrawUserRectangle(pt, sp, d.Color)
				}
			case mapcore.DrawingCircle:
				r := d.Radius.OrElse(0)
				if vp.ContainsCircle(pt, r) {
					listener.DrawUserCircle(pt, r, d.Color)
				}
			case mapcore.DrawingMarker:
				if vp.ContainsPoint(pt) {
					listener.DrawUserMarker(pt, d.MarkerKind.OrElse(0), d.Color, d.Comment.OrElse(""))
				}
			}
		})
	}
	for _, e := range vp.Universe.Explosions.All() {
		if vp.ContainsPoint(e.Position) {
			listener.DrawExplosion(e.Position)
		}
	}
}

func drawShipExtras(vp *Viewport, listener Listener, allied AlliedFunc, images int) {
	for _, s := range vp.Universe.Ships.All() {
		pos, ok := s.Position.Get()
		if !ok || !vp.ContainsPoint(pos) {
			continue
		}
		rel := relationOf(vp.ViewerOwner, s.Owner.OrElse(0), allied)

		if vp.Options&ShowShipTrails != 0 {
			drawShipTrail(s, rel, listener)
		}
		if leader, _ := s.FleetLeader.Get(); leader {
			listener.DrawShipWaypoint(pos, pos, rel) // placeholder for fleet-leader icon position
		}
	}
	_ = images
}

func drawShipTrail(s *mapcore.Ship, rel Relation, listener Listener) {
	for age := 0; age < historyTrailLength-1 && age+1 < len(s.History); age++ {
		newer, newerOK := s.History[age].Get()
		older, olderOK := s.History[age+1].Get()
		if !newerOK && !olderOK {
			continue
		}
		var a, b mapcore.Point
		var flags TrailFlags
		if newerOK {
			if p, ok := newer.Position.Get(); ok {
				a = p
				flags |= TrailFromPosition
			}
		}
		if olderOK {
			if p, ok := older.Position.Get(); ok {
				b = p
				flags |= TrailToPosition
			}
		}
		if flags == TrailFromPosition && newerOK {
			// Synthesize the missing endpoint from heading+speed.
			if heading, hok := newer.Heading.Get(); hok {
				if speed, sok := newer.Speed.Get(); sok {
					dist := speed * speed / 2
					if dist < 15 {
						dist = 15
					}
					b = movePoint(a, heading, dist)
				}
			}
		}
		listener.DrawShipTrail(a, b, rel, flags, age)
	}
}

func movePoint(p mapcore.Point, heading, distance int) mapcore.Point {
	// Heading is degrees clockwise from north; approximate with integer
	// trig tables would be overkill here, so snap to the nearest of the
	// four compass directions.
	switch {
	case heading < 45 || heading >= 315:
		return mapcore.Point{X: p.X, Y: p.Y - distance}
	case heading < 135:
		return mapcore.Point{X: p.X + distance, Y: p.Y}
	case heading < 225:
		return mapcore.Point{X: p.X, Y: p.Y + distance}
	default:
		return mapcore.Point{X: p.X - distance, Y: p.Y}
	}
}

func drawPlanets(vp *Viewport, listener Listener, allied AlliedFunc, images int) {
	for _, p := range vp.Universe.Planets.All() {
		if !p.Visible {
			continue
		}
		flags := planetFlags(vp, p, allied)
		forEachImage(vp, p.Position, images, func(pt mapcore.Point) {
			if !vp.ContainsPoint(pt) {
				return
			}
			if vp.Options&ShowWarpWells != 0 {
				drawWarpWell(pt, warpWellRange(p), vp.Options&RoundGravityWells != 0, listener)
			}
			listener.DrawPlanet(pt, p.Id, flags, "")
		})
	}
}

func planetFlags(vp *Viewport, p *mapcore.Planet, allied AlliedFunc) PlanetFlags {
	var flags PlanetFlags
	owner := p.Owner.OrElse(0)
	switch relationOf(vp.ViewerOwner, owner, allied) {
	case RelationUnowned:
		flags |= PlanetUnowned
	case RelationOwn:
		flags |= PlanetOwn
	case RelationAllied:
		flags |= PlanetAllied
	case RelationEnemy:
		flags |= PlanetEnemy
	}
	if p.HasBase {
		flags |= PlanetHasBase
	}
	for _, s := range vp.Universe.Ships.All() {
		pos, ok := s.Position.Get()
		if !ok || pos != p.Position {
			continue
		}
		switch relationOf(vp.ViewerOwner, s.Owner.OrElse(0), allied) {
		case RelationOwn:
			flags |= PlanetOwnShips
		case RelationAllied:
			flags |= PlanetAlliedShips
		case RelationEnemy:
			flags |= PlanetEnemyShips
		}
	}
	return flags
}

// warpWellRange is the classic ~3 ly gravitational capture radius.
func warpWellRange(p *mapcore.Planet) int { return 3 }

func drawWarpWell(center mapcore.Point, radius int, round bool, listener Listener) {
	if round {
		drawDigitalCircleEdges(center, radius, listener)
		return
	}
	side := 2*radius + 1
	half := side / 2
	top := mapcore.Point{X: center.X - half, Y: center.Y - half}
	for dx := 0; dx < side; dx++ {
		listener.DrawWarpWellEdge(mapcore.Point{X: top.X + dx, Y: top.Y}, North)
		listener.DrawWarpWellEdge(mapcore.Point{X: top.X + dx, Y: top.Y + side - 1}, South)
	}
	for dy := 0; dy < side; dy++ {
		listener.DrawWarpWellEdge(mapcore.Point{X: top.X, Y: top.Y + dy}, West)
		listener.DrawWarpWellEdge(mapcore.Point{X: top.X + side - 1, Y: top.Y + dy}, East)
	}
}

// drawDigitalCircleEdges traces a Bresenham-style digital circle
// octant-by-octant, emitting one DrawWarpWellEdge per unit boundary edge.
func drawDigitalCircleEdges(center mapcore.Point, radius int, listener Listener) {
	x, y := radius, 0
	err := 0
	for x >= y {
		pts := []mapcore.Point{
			{X: center.X + x, Y: center.Y + y}, {X: center.X + y, Y: center.Y + x},
			{X: center.X - y, Y: center.Y + x}, {X: center.X - x, Y: center.Y + y},
			{X: center.X - x, Y: center.Y - y}, {X: center.X - y, Y: center.Y - x},
			{X: center.X + y, Y: center.Y - x}, {X: center.X + x, Y: center.Y - y},
		}
		dirs := []Direction{East, North, North, West, West, South, South, East}
		for i, p := range pts {
			listener.DrawWarpWellEdge(p, dirs[i])
		}
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func drawShips(vp *Viewport, listener Listener, allied AlliedFunc, images int) {
	for _, s := range vp.Universe.Ships.All() {
		pos, ok := s.Position.Get()
		if !ok {
			continue
		}
		rel := relationOf(vp.ViewerOwner, s.Owner.OrElse(0), allied)
		var flags ShipFlags
		if vp.Options&ShowShipDots == 0 {
			flags |= ShipShowDot
		} else {
			flags |= ShipShowIcon
		}
		if leader, _ := s.FleetLeader.Get(); leader {
			flags |= ShipFleetLeader
		}
		forEachImage(vp, pos, images, func(pt mapcore.Point) {
			if vp.ContainsPoint(pt) {
				listener.DrawShip(pt, s.Id, rel, flags, s.FriendlyCode.OrElse(""))
			}
		})
		if wp, ok := s.Waypoint.Get(); ok && vp.ContainsLine(pos, wp) {
			listener.DrawShipWaypoint(pos, wp, rel)
		}
	}
}
