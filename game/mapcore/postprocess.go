package mapcore

import "github.com/playbymail/vgacore/log"

// Postprocess validates and enriches freshly loaded data: canonicalizing
// positions, assigning playability, pruning expired minefields/drawings/
// ufos, and raising change signals so observers refresh. playingSet holds
// the player ids the local session actively plays; defaultPlayability is
// assigned to entities owned by a playing-set member (typically Playable).
func (u *Universe) Postprocess(playingSet map[int]bool, defaultPlayability Playability, turnNumber int) {
	u.SigPreUpdate.Emit()

	for _, p := range u.Planets.All() {
		u.internalCheckPlanet(p)
		u.assignPlanetPlayability(p, playingSet, defaultPlayability)
	}
	for _, s := range u.Ships.All() {
		u.internalCheckShip(s)
		u.assignShipPlayability(s, playingSet, defaultPlayability)
	}

	u.internalCheckMinefields(turnNumber)
	u.eraseExpiredDrawings(turnNumber)
	u.postprocessUfos(turnNumber)

	u.combinedCheck1()
	u.combinedCheck2()

	u.SigPlanetSetChange.Emit()
	u.SigShipSetChange.Emit()
	u.SigUniverseChange.Emit()
}

func (u *Universe) internalCheckPlanet(p *Planet) {
	p.Position = u.Configuration.GetCanonicalLocation(p.Position)
	if !p.HasBase {
		p.Base = nil
	}
}

func (u *Universe) assignPlanetPlayability(p *Planet, playingSet map[int]bool, defaultPlayability Playability) {
	owner, hasOwner := p.Owner.Get()
	fullData := p.Colonists.IsSet()
	switch {
	case p.Visible && fullData && hasOwner && owner != 0:
		if playingSet[owner] {
			p.Playability = defaultPlayability
		} else {
			p.Playability = ReadOnly
		}
	default:
		p.Playability = NotPlayable
	}
}

func (u *Universe) internalCheckShip(s *Ship) {
	if pos, ok := s.Position.Get(); ok {
		s.Position = Some(u.Configuration.GetCanonicalLocation(pos))
	}
	if wp, ok := s.Waypoint.Get(); ok {
		s.Waypoint = Some(u.Configuration.GetCanonicalLocation(wp))
	}
}

func (u *Universe) assignShipPlayability(s *Ship, playingSet map[int]bool, defaultPlayability Playability) {
	owner, hasOwner := s.Owner.Get()
	fullData := s.Crew.IsSet() && s.HullType.IsSet()
	switch {
	case s.Visible && fullData && hasOwner && owner != 0:
		if playingSet[owner] {
			s.Playability = defaultPlayability
		} else {
			s.Playability = ReadOnly
		}
	default:
		s.Playability = NotPlayable
	}
}

// internalCheckMinefields prunes fields whose units have decayed to zero
// or whose last scan is stale relative to turnNumber (minefields not
// reported for more than 30 turns are aged out, mirroring the source's
// "minefield goes stale" rule).
func (u *Universe) internalCheckMinefields(turnNumber int) {
	const staleAfterTurns = 30
	for _, m := range u.Minefields.All() {
		if m.Units <= 0 || turnNumber-m.LastScan > staleAfterTurns {
			u.Minefields.Delete(m.Id)
		}
	}
}

func (u *Universe) eraseExpiredDrawings(turnNumber int) {
	for _, d := range u.Drawings.All() {
		if d.Expires != -1 && turnNumber > d.Expires {
			u.Drawings.Delete(d.Id)
		}
	}
}

// postprocessUfos removes ufos that haven't been scanned recently enough
// to still be considered live.
func (u *Universe) postprocessUfos(turnNumber int) {
	const staleAfterTurns = 10
	for _, uf := range u.Ufos.All() {
		if turnNumber-uf.LastScan > staleAfterTurns {
			u.Ufos.Delete(uf.Id)
		}
	}
}

// combinedCheck1 infers ship visibility from neighbor knowledge: a ship at
// the same position as a fully-known planet (Playable or ReadOnly) is
// implicitly visible even without its own scan record.
func (u *Universe) combinedCheck1() {
	ownedPlanetAt := make(map[Point]bool)
	for _, p := range u.Planets.All() {
		if p.Playability != NotPlayable {
			ownedPlanetAt[p.Position] = true
		}
	}
	for _, s := range u.Ships.All() {
		if s.Visible {
			continue
		}
		if pos, ok := s.Position.Get(); ok && ownedPlanetAt[pos] {
			s.Visible = true
			log.Debug("ship visibility inferred from co-located owned planet", log.F("ship", s.Id))
		}
	}
}

// combinedCheck2 is the orbit-detection pass. It changes no state: whether
// a ship orbits a planet (exact position match) is not stored on Ship.
func (u *Universe) combinedCheck2() {
	planetAt := make(map[Point]int)
	for _, p := range u.Planets.All() {
		planetAt[p.Position] = p.Id
	}
	for _, s := range u.Ships.All() {
		pos, ok := s.Position.Get()
		if !ok {
			continue
		}
		_, orbiting := planetAt[pos]
		_ = orbiting // orbit state surfaces through the renderer's planet-flag computation, not stored on Ship
	}
}
