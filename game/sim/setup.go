// Package sim implements the battle simulator: a deterministic,
// parallelizable Monte-Carlo combat engine replaying a fleet configuration
// under one of several hosting rulesets.
package sim

import "github.com/playbymail/vgacore/game/fcode"

// Aggressiveness mirrors mapcore.Aggressiveness for simulator ships, which
// carry their own copy of combat-relevant fields rather than referencing
// live map entities (jobs run concurrently against private copies).
type Aggressiveness int

// AggressivePassive and AggressiveNoFuel bound the range of real player
// ids (1..99) a ship can target; AggressiveKill is the "attack anyone"
// sentinel below that range. A value strictly between Passive and NoFuel
// is an ordinary "primary enemy is player N" target.
const (
	AggressiveKill    Aggressiveness = -1
	AggressivePassive Aggressiveness = 0
	AggressiveNoFuel  Aggressiveness = 100
)

// Flags are per-ship simulator toggles.
type Flags uint8

const (
	FlagFlak Flags = 1 << iota
	FlagCommander
	FlagRandomFCOnEveryFight
	FlagRandomFCOnce
)

// Ship is one simulator combatant.
type Ship struct {
	Id              int
	Name            string
	FriendlyCode    string
	Owner           int
	HullType        int
	EngineType      int
	NumBeams        int
	BeamType        int
	NumLaunchers    int
	LauncherType    int
	Ammo            int
	NumBays         int
	Damage          int
	Shield          int
	Crew            int
	Mass            int
	Aggressiveness  Aggressiveness
	InterceptTarget int
	Flags           Flags
	ExperienceLevel int
}

// HasWeapons reports whether this ship carries any offense.
func (s *Ship) HasWeapons() bool {
	return s.NumBeams > 0 || s.NumLaunchers > 0 || s.NumBays > 0
}

// Planet is the (optional) planet combatant in a fight.
type Planet struct {
	FriendlyCode string
	Owner        int
	Defense      int
	NumBaseFighters int
	BaseBeamTech    int
	BaseTorpedoTech int
}

// Setup is the ordered fleet configuration a Runner replays.
type Setup struct {
	Ships  []*Ship
	Planet *Planet // nil when no planet is in this fight
}

// Clone deep-copies the setup so concurrent jobs never alias state.
func (s *Setup) Clone() *Setup {
	out := &Setup{Ships: make([]*Ship, len(s.Ships))}
	for i, sh := range s.Ships {
		cp := *sh
		out.Ships[i] = &cp
	}
	if s.Planet != nil {
		cp := *s.Planet
		out.Planet = &cp
	}
	return out
}

// getFCodeValue looks up a combatant's friendly-code numeric value using
// the battle-order host's numeric rules (not random-code availability
// rules, which is a different fcode.List concern entirely).
func getFCodeValue(code string, host fcode.Host) int {
	return fcode.GetNumericValue(code, host)
}
