package sim

import (
	"math/rand"

	"github.com/playbymail/vgacore/game/fcode"
)

// RunOptions are the per-run toggles the kernel consults, distinct from
// Configuration which is per-batch: these are per-fight randomization
// flags carried alongside the setup being replayed.
type RunOptions struct {
	RandomizeFCEveryFight bool
	RandomizeFCOnce       bool
	FCodeList             *fcode.List
}

// RunSimulation performs exactly one fight, mutating setup in place to
// reflect post-battle state and returning per-unit statistics plus a
// Result describing this fight's weight and series position.
//
// The host-specific combat algorithms (Tim-Host, PHost 2/3/4, NuHost,
// FLAK) are not independently re-derived bit-for-bit here — that would
// require porting several thousand lines of host-specific combat replay
// logic, out of reach for a from-scratch reimplementation without the
// original combat kernel sources. What IS implemented faithfully: battle
// order computation (§4.2.4, byte-for-byte against the source), the
// per-job seed formula (parentSeed XOR serial, advanced once), and the
// aggregation contract ResultList relies on. combatRound below dispatches
// on config.Mode into one of three distinct, deterministic, seed-driven
// combat algorithms (free-for-all melee, paired PHost duels, FLAK group
// combat) that honor aggressiveness and weapon loadout — close enough to
// each host family's shape to exercise the runner/aggregator machinery and
// its regression properties (same setup+seed -> same ResultList, serial
// vs parallel equivalence), but not a byte-exact replay of any one host's
// kernel.
func RunSimulation(setup *Setup, config Configuration, flak FlakConfig, opts RunOptions, rng *rand.Rand) (map[int]*Statistic, *Result) {
	if opts.RandomizeFCEveryFight && opts.FCodeList != nil {
		for _, sh := range setup.Ships {
			if sh.Flags&FlagRandomFCOnEveryFight != 0 {
				sh.FriendlyCode = opts.FCodeList.GenerateRandomCode(rng, config.Host)
			}
		}
	}

	order := computeBattleOrder(config, setup)

	stats := make(map[int]*Statistic, len(setup.Ships))
	for _, sh := range setup.Ships {
		stats[sh.Id] = &Statistic{MinFightersAboard: sh.NumBays}
	}

	weight := combatRound(setup, order, config, flak, rng, stats)

	return stats, &Result{
		ThisBattleWeight: weight,
		SeriesLength:     1,
		SeriesIndex:      0,
		Setup:            setup,
	}
}

// computeBattleOrder returns ship ids sorted by ascending battle order,
// the order combat resolves attacks in.
func computeBattleOrder(config Configuration, setup *Setup) []int {
	type entry struct {
		id    int
		order int
	}
	entries := make([]entry, len(setup.Ships))
	for i, sh := range setup.Ships {
		entries[i] = entry{sh.Id, ShipBattleOrder(config, sh)}
	}
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].order > entries[j].order; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}

// canInitiate reports whether sh may open fire on its own account. A
// Passive or NoFuel unit never starts a fight — the same hasEnemy test
// battleorder.go applies when computing battle order.
func canInitiate(sh *Ship) bool {
	return sh.Aggressiveness == AggressiveKill ||
		(sh.Aggressiveness > AggressivePassive && sh.Aggressiveness < AggressiveNoFuel)
}

// primaryEnemy reports the owner id sh's aggressiveness names as its
// preferred target, and whether one is named at all. AggressiveKill names
// none (attacks whoever it meets); Passive and NoFuel name none either,
// since neither can initiate.
func primaryEnemy(sh *Ship) (int, bool) {
	if sh.Aggressiveness > AggressivePassive && sh.Aggressiveness < AggressiveNoFuel {
		return int(sh.Aggressiveness), true
	}
	return 0, false
}

// selectTarget finds the ship attacker should engage this round: its
// primary enemy if one is named and still alive, otherwise the first
// living, non-allied enemy in setup order.
func selectTarget(setup *Setup, attacker *Ship, config Configuration) *Ship {
	if pref, ok := primaryEnemy(attacker); ok {
		for _, sh := range setup.Ships {
			if sh.Owner == pref && sh.Damage < 100 {
				return sh
			}
		}
	}
	for _, sh := range setup.Ships {
		if sh == attacker {
			continue
		}
		if sh.Owner != attacker.Owner && sh.Damage < 100 && !config.IsAllied(attacker.Owner, sh.Owner) {
			return sh
		}
	}
	return nil
}

// combatOver reports whether at most one owner still has a living ship.
func combatOver(setup *Setup) bool {
	owners := map[int]bool{}
	for _, sh := range setup.Ships {
		if sh.Damage < 100 {
			owners[sh.Owner] = true
		}
	}
	return len(owners) <= 1
}

// hasExperienceBonus reports whether mode's host family models crew
// experience affecting combat (PHost introduced this in its 3.x line;
// NuHost carried the mechanic forward). Tim-Host, PHost2, and FLAK predate
// or omit it.
func hasExperienceBonus(mode Mode) bool {
	switch mode {
	case VcrPHost3, VcrPHost4, VcrNuHost:
		return true
	default:
		return false
	}
}

// applyDamage lands dmg on target, absorbing through shields first, and
// credits both combatants' FightCount. Shared by every mode's damage
// resolution so shield/crew bookkeeping stays in one place.
func applyDamage(attacker, target *Ship, dmg int, stats map[int]*Statistic) {
	if dmg <= 0 {
		return
	}
	if target.Shield > 0 {
		absorb := dmg
		if absorb > target.Shield {
			absorb = target.Shield
		}
		target.Shield -= absorb
		dmg -= absorb
	}
	target.Damage += dmg
	if target.Damage > 100 {
		target.Damage = 100
	}
	if st := stats[attacker.Id]; st != nil {
		st.FightCount++
	}
	if st := stats[target.Id]; st != nil {
		st.FightCount++
	}
}

// resolveAttack runs attacker's full weapon suite against target for one
// round: beams add flat damage, torpedoes consume ammo and credit
// TorpedoHitsDealt per hit, and fighter bays expend fighters with a chance
// of loss each sortie, updating MinFightersAboard as the running minimum
// of fighters actually still aboard.
func resolveAttack(attacker, target *Ship, config Configuration, rng *rand.Rand, stats map[int]*Statistic) {
	dmg := 0
	if attacker.NumBeams > 0 {
		dmg += attacker.NumBeams*(3+attacker.BeamType) + rng.Intn(5)
	}
	if attacker.NumLaunchers > 0 && attacker.Ammo > 0 {
		hits := attacker.NumLaunchers
		if hits > attacker.Ammo {
			hits = attacker.Ammo
		}
		attacker.Ammo -= hits
		dmg += hits * (4 + attacker.LauncherType)
		if st := stats[attacker.Id]; st != nil {
			st.TorpedoHitsDealt += hits
		}
	}
	if attacker.NumBays > 0 {
		launched := attacker.NumBays
		if launched > 3 {
			launched = 3
		}
		lost := rng.Intn(launched + 1)
		attacker.NumBays -= lost
		dmg += (launched - lost) * 2
		if st := stats[attacker.Id]; st != nil && attacker.NumBays < st.MinFightersAboard {
			st.MinFightersAboard = attacker.NumBays
		}
	}
	if hasExperienceBonus(config.Mode) {
		dmg += attacker.ExperienceLevel
	}
	applyDamage(attacker, target, dmg, stats)
}

// combatRound dispatches to the combat algorithm config.Mode names and
// returns this fight's weight contribution. Tim-Host balancing (left/right
// sub-fight weight splitting) isn't modeled — this kernel always produces
// one fight of weight 1000 — since the Runner/Job abstraction carries a
// single Result per job; splitting it would require a job-level change
// out of scope for the combat loop itself.
func combatRound(setup *Setup, order []int, config Configuration, flak FlakConfig, rng *rand.Rand, stats map[int]*Statistic) int {
	switch config.Mode {
	case VcrPHost2, VcrPHost3, VcrPHost4, HostPHostMixed:
		byID := make(map[int]*Ship, len(setup.Ships))
		for _, sh := range setup.Ships {
			byID[sh.Id] = sh
		}
		runPHostDuels(setup, order, byID, config, rng, stats)
	case VcrFLAK:
		runFlakMelee(setup, flak, rng, stats)
	default: // VcrHost, VcrNuHost
		byID := make(map[int]*Ship, len(setup.Ships))
		for _, sh := range setup.Ships {
			byID[sh.Id] = sh
		}
		runMelee(setup, order, byID, config, rng, stats)
	}

	return 1000
}

// runMelee is Tim-Host's (and, absent a separate NuHost kernel, NuHost's)
// free-for-all: every eligible ship gets one attack per round, in battle
// order, against its selected target, until a round passes with no
// attacks or only one owner remains standing.
func runMelee(setup *Setup, order []int, byID map[int]*Ship, config Configuration, rng *rand.Rand, stats map[int]*Statistic) {
	for round := 0; round < 20; round++ {
		anyFought := false
		for _, id := range order {
			attacker := byID[id]
			if attacker.Damage >= 100 || !attacker.HasWeapons() || !canInitiate(attacker) {
				continue
			}
			target := selectTarget(setup, attacker, config)
			if target == nil {
				continue
			}
			resolveAttack(attacker, target, config, rng, stats)
			anyFought = true
		}
		if !anyFought || combatOver(setup) {
			break
		}
	}
}

// runPHostDuels is PHost's pairing model: rather than every ship trading
// blows simultaneously each round, combatants are paired off in battle
// order and fight each other to a conclusion (destruction, capture, or the
// round cap) before the next pair engages. A ship's counter-attack fires
// only if it can still initiate and isn't allied with its attacker.
func runPHostDuels(setup *Setup, order []int, byID map[int]*Ship, config Configuration, rng *rand.Rand, stats map[int]*Statistic) {
	engaged := map[int]bool{}
	for {
		var attacker, target *Ship
		for _, id := range order {
			sh := byID[id]
			if sh.Damage >= 100 || engaged[sh.Id] || !sh.HasWeapons() || !canInitiate(sh) {
				continue
			}
			t := selectTarget(setup, sh, config)
			if t == nil {
				continue
			}
			attacker, target = sh, t
			break
		}
		if attacker == nil {
			break
		}
		engaged[attacker.Id] = true
		engaged[target.Id] = true

		for round := 0; round < 20 && attacker.Damage < 100 && target.Damage < 100; round++ {
			resolveAttack(attacker, target, config, rng, stats)
			if target.Damage < 100 && target.HasWeapons() && canInitiate(target) && !config.IsAllied(target.Owner, attacker.Owner) {
				resolveAttack(target, attacker, config, rng, stats)
			}
		}
	}
}

// runFlakMelee is FLAK's group-combat model: every eligible ship fires
// each round (no pairing), with damage scaled by FlakConfig's per-weapon
// rating and, when more than one attacker is active, reduced by the
// compensation factor FLAK applies so a crowd doesn't trivially overpower
// a single well-armed defender.
func runFlakMelee(setup *Setup, flak FlakConfig, rng *rand.Rand, stats map[int]*Statistic) {
	config := Configuration{Mode: VcrFLAK}
	for round := 0; round < 20; round++ {
		attackers := make([]*Ship, 0, len(setup.Ships))
		for _, sh := range setup.Ships {
			if sh.Damage < 100 && sh.HasWeapons() && canInitiate(sh) {
				attackers = append(attackers, sh)
			}
		}
		if len(attackers) == 0 {
			break
		}
		for _, attacker := range attackers {
			target := selectTarget(setup, attacker, config)
			if target == nil {
				continue
			}
			dmg := flakDamage(attacker, flak, rng, stats)
			if flak.CompensationShipScale > 0 && len(attackers) > 1 {
				dmg = dmg * flak.CompensationShipScale / (flak.CompensationShipScale + len(attackers) - 1)
			}
			applyDamage(attacker, target, dmg, stats)
		}
		if combatOver(setup) {
			break
		}
	}
}

// flakDamage computes one attacker's FLAK-scaled volley: beam and torpedo
// contributions are each scaled by their FlakConfig rating (defaulting to
// an even 1x when unset). Torpedo hits still draw down ammo and credit
// TorpedoHitsDealt like every other mode.
func flakDamage(attacker *Ship, flak FlakConfig, rng *rand.Rand, stats map[int]*Statistic) int {
	dmg := 0
	if attacker.NumBeams > 0 {
		scale := flak.RatingBeamScale
		if scale == 0 {
			scale = 10
		}
		dmg += attacker.NumBeams * attacker.BeamType * scale / 10
	}
	if attacker.NumLaunchers > 0 && attacker.Ammo > 0 {
		scale := flak.RatingTorpScale
		if scale == 0 {
			scale = 10
		}
		hits := attacker.NumLaunchers
		if hits > attacker.Ammo {
			hits = attacker.Ammo
		}
		attacker.Ammo -= hits
		dmg += hits * attacker.LauncherType * scale / 10
		if st := stats[attacker.Id]; st != nil {
			st.TorpedoHitsDealt += hits
		}
	}
	return dmg + rng.Intn(5)
}
