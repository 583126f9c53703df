package sim

import "github.com/playbymail/vgacore/game/fcode"

// Mode selects which host combat algorithm a Configuration replays.
type Mode int

const (
	HostPHostMixed Mode = iota
	VcrHost
	VcrPHost2
	VcrPHost3
	VcrPHost4
	VcrNuHost
	VcrFLAK
)

// BalancingMode controls Tim-Host's left/right sub-fight weighting.
type BalancingMode int

const (
	BalanceNone BalancingMode = iota
	Balance40K
	BalanceMasterAtArms
)

// Configuration holds the per-batch simulator toggles that apply across
// every fight in a run.
type Configuration struct {
	Mode              Mode
	Host              fcode.Host
	EngineShieldBonus bool
	ScottishTholians  bool
	LizardsCanAssimilate bool
	Balancing         BalancingMode
	Seed              uint64
	Alliances         map[int]map[int]bool // owner -> allied owner set
}

// IsAllied reports whether a and b are mutual allies under config.
func (c Configuration) IsAllied(a, b int) bool {
	if c.Alliances == nil {
		return false
	}
	return c.Alliances[a][b]
}

// IsPHost reports whether this mode runs one of the PHost combat variants
// (battle-order adjustment differs between PHost and Tim-Host/FLAK).
func (c Configuration) IsPHost() bool {
	switch c.Mode {
	case VcrPHost2, VcrPHost3, VcrPHost4, HostPHostMixed:
		return true
	default:
		return false
	}
}

// FlakConfig carries FLAK-specific combat parameters (independent from
// Configuration since only VcrFLAK mode consumes it).
type FlakConfig struct {
	RatingBeamScale     int
	RatingTorpScale     int
	CompensationShipScale int
	CompensationBeamScale int
	CompensationTorpScale int
	StartingDistanceShip  int
	StartingDistancePlanet int
}
