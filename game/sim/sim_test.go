package sim

import (
	"context"
	"math/rand"
	"testing"

	"github.com/playbymail/vgacore/game/fcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phostConfig() Configuration {
	return Configuration{Mode: VcrPHost4, Host: fcode.NewHost(fcode.PHost, 4, 1, 0), Seed: 42}
}

func hostConfig() Configuration {
	return Configuration{Mode: VcrHost, Host: fcode.NewHost(fcode.THost, 3, 22, 26), Seed: 42}
}

func TestShipBattleOrder_PHostKillCapitalFreighter(t *testing.T) {
	cfg := phostConfig()
	kill := &Ship{FriendlyCode: "abc", NumBeams: 1, Aggressiveness: AggressiveKill}
	capital := &Ship{FriendlyCode: "abc", NumBeams: 1, Aggressiveness: 3}
	freighter := &Ship{FriendlyCode: "abc", Aggressiveness: 3}

	assert.Equal(t, 1000, ShipBattleOrder(cfg, kill))
	assert.Equal(t, 1002, ShipBattleOrder(cfg, capital))
	assert.Equal(t, 1004, ShipBattleOrder(cfg, freighter))
}

func TestShipBattleOrder_THostAdjustment(t *testing.T) {
	cfg := hostConfig()
	noKillNoEnemy := &Ship{FriendlyCode: "abc", Aggressiveness: AggressivePassive}
	assert.Equal(t, 1015, ShipBattleOrder(cfg, noKillNoEnemy))

	kill := &Ship{FriendlyCode: "abc", Aggressiveness: AggressiveKill}
	assert.Equal(t, 1000, ShipBattleOrder(cfg, kill))
}

func TestShipBattleOrder_NumericCodePassesThrough(t *testing.T) {
	cfg := hostConfig()
	sh := &Ship{FriendlyCode: "123", Aggressiveness: AggressivePassive}
	assert.Equal(t, 123, ShipBattleOrder(cfg, sh))
}

func TestPlanetBattleOrder_ATTandNUK(t *testing.T) {
	cfg := phostConfig()
	assert.Equal(t, 0, PlanetBattleOrder(cfg, &Planet{FriendlyCode: "ATT"}))
	assert.Equal(t, 0, PlanetBattleOrder(cfg, &Planet{FriendlyCode: "NUK"}))
}

func TestPlanetBattleOrder_DefenseGate(t *testing.T) {
	cfg := phostConfig()
	assert.Equal(t, 1001, PlanetBattleOrder(cfg, &Planet{FriendlyCode: "xyz", Defense: 10}))
	assert.Equal(t, 1003, PlanetBattleOrder(cfg, &Planet{FriendlyCode: "xyz", Defense: 0}))
}

func TestPlanetBattleOrder_UnknownOutsidePHost(t *testing.T) {
	cfg := hostConfig()
	assert.Equal(t, UnknownBattleOrder, PlanetBattleOrder(cfg, &Planet{FriendlyCode: "xyz"}))
}

func sampleSetup() *Setup {
	return &Setup{
		Ships: []*Ship{
			{Id: 1, Owner: 8, NumBeams: 4, NumLaunchers: 2, Ammo: 10, Shield: 100, FriendlyCode: "???", Aggressiveness: AggressiveKill},
			{Id: 2, Owner: 1, NumBeams: 2, Shield: 20, FriendlyCode: "???", Aggressiveness: AggressiveKill},
			{Id: 3, Owner: 1, NumBeams: 2, Shield: 20, FriendlyCode: "???", Aggressiveness: AggressiveKill},
			{Id: 4, Owner: 1, NumBeams: 2, Shield: 20, FriendlyCode: "???", Aggressiveness: AggressiveKill},
		},
	}
}

func TestRunner_DeterministicAcrossRuns(t *testing.T) {
	cfg := hostConfig()
	opts := RunOptions{}

	r1 := NewRunner(sampleSetup(), cfg, FlakConfig{}, opts)
	require.NoError(t, r1.Init())
	r1.Run(MakeFiniteLimit(20), nil)

	r2 := NewRunner(sampleSetup(), cfg, FlakConfig{}, opts)
	require.NoError(t, r2.Init())
	r2.Run(MakeFiniteLimit(20), nil)

	assert.Equal(t, r1.ResultList().GetCumulativeWeight(), r2.ResultList().GetCumulativeWeight())
	assert.Equal(t, r1.ResultList().GetNumBattles(), r2.ResultList().GetNumBattles())
}

func TestResultList_CumulativeWeightMatchesSum(t *testing.T) {
	cfg := hostConfig()
	r := NewRunner(sampleSetup(), cfg, FlakConfig{}, RunOptions{})
	require.NoError(t, r.Init())
	r.Run(MakeFiniteLimit(50), nil)

	assert.Equal(t, r.ResultList().GetNumBattles()*1000, r.ResultList().GetCumulativeWeight())
}

func TestJobSeedFormula_IsXorOfParentAndSerial(t *testing.T) {
	j1 := newJob(sampleSetup(), 42, 5)
	j2 := newJob(sampleSetup(), 42, 5)
	// Same parent seed + serial must reproduce the identical RNG stream.
	assert.Equal(t, j1.rng.Int63(), j2.rng.Int63())

	// The stream is that of a source seeded with 42 XOR 5, advanced once.
	ref := rand.New(rand.NewSource(int64(uint64(42) ^ uint64(5))))
	ref.Int63()
	assert.Equal(t, ref.Int63(), newJob(sampleSetup(), 42, 5).rng.Int63())
}

func TestParallelRunner_MatchesSerialAggregate(t *testing.T) {
	cfg := hostConfig()
	opts := RunOptions{}

	serial := NewRunner(sampleSetup(), cfg, FlakConfig{}, opts)
	require.NoError(t, serial.Init())
	serial.Run(MakeFiniteLimit(99), nil)

	parallel := NewParallelRunner(sampleSetup(), cfg, FlakConfig{}, opts, 5)
	require.NoError(t, parallel.Init())
	parallel.Run(context.Background(), MakeFiniteLimit(99), nil)
	parallel.Stop()

	assert.Equal(t, serial.ResultList().GetNumBattles(), parallel.ResultList().GetNumBattles())
	assert.Equal(t, serial.ResultList().GetCumulativeWeight(), parallel.ResultList().GetCumulativeWeight())
}

func TestMakeSeriesLimit(t *testing.T) {
	l := MakeSeriesLimit(10)
	assert.True(t, l.Continue(9))
	assert.False(t, l.Continue(10))
}

func TestStopSignal_FreshPerRun(t *testing.T) {
	s1 := NewStopSignal()
	s1.Set()
	s2 := NewStopSignal()
	assert.True(t, s1.ShouldStop())
	assert.False(t, s2.ShouldStop())
}

func TestCombat_PassiveShipNeverInitiates(t *testing.T) {
	cfg := hostConfig()
	setup := &Setup{
		Ships: []*Ship{
			{Id: 1, Owner: 8, NumBeams: 4, BeamType: 6, Shield: 100, FriendlyCode: "abc", Aggressiveness: AggressivePassive},
			{Id: 2, Owner: 1, NumBeams: 4, BeamType: 6, Shield: 100, FriendlyCode: "abc", Aggressiveness: AggressivePassive},
		},
	}
	rng := rand.New(rand.NewSource(1))
	_, _ = RunSimulation(setup, cfg, FlakConfig{}, RunOptions{}, rng)

	for _, sh := range setup.Ships {
		assert.Equal(t, 0, sh.Damage, "passive ships never attack, so neither should take damage")
	}
}

func TestCombat_NoFuelShipNeverInitiates(t *testing.T) {
	cfg := hostConfig()
	setup := &Setup{
		Ships: []*Ship{
			{Id: 1, Owner: 8, NumBeams: 4, BeamType: 6, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressiveNoFuel},
			{Id: 2, Owner: 1, NumBeams: 4, BeamType: 6, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressiveKill},
		},
	}
	rng := rand.New(rand.NewSource(1))
	_, _ = RunSimulation(setup, cfg, FlakConfig{}, RunOptions{}, rng)

	assert.Equal(t, 0, setup.Ships[1].Damage, "a NoFuel ship must never initiate, so the aggressor takes no damage back")
	assert.Greater(t, setup.Ships[0].Damage, 0, "the Kill-aggressiveness ship should still land hits on the NoFuel one")
}

func TestCombat_PrimaryEnemyTargetingPrefersNamedOwner(t *testing.T) {
	cfg := hostConfig()
	setup := &Setup{
		Ships: []*Ship{
			{Id: 1, Owner: 8, NumBeams: 4, BeamType: 6, FriendlyCode: "abc", Aggressiveness: 3},
			{Id: 2, Owner: 2, NumBeams: 0, Shield: 50, FriendlyCode: "abc", Aggressiveness: AggressivePassive},
			{Id: 3, Owner: 3, NumBeams: 0, Shield: 50, FriendlyCode: "abc", Aggressiveness: AggressivePassive},
		},
	}
	target := selectTarget(setup, setup.Ships[0], cfg)
	if assert.NotNil(t, target) {
		assert.Equal(t, 3, target.Owner, "aggressiveness 3 names owner 3 as primary enemy")
	}
}

func TestCombat_WeaponTypeDistinguishesOutcome(t *testing.T) {
	cfg := hostConfig()

	torpSetup := &Setup{
		Ships: []*Ship{
			{Id: 1, Owner: 8, NumLaunchers: 3, LauncherType: 4, Ammo: 20, FriendlyCode: "abc", Aggressiveness: AggressiveKill},
			{Id: 2, Owner: 1, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressivePassive},
		},
	}
	rng := rand.New(rand.NewSource(7))
	torpStats, _ := RunSimulation(torpSetup, cfg, FlakConfig{}, RunOptions{}, rng)
	assert.Greater(t, torpStats[1].TorpedoHitsDealt, 0, "a torpedo attacker must credit actual torpedo hits")

	bayStats := map[int]*Statistic{
		1: {MinFightersAboard: 6},
		2: {MinFightersAboard: 0},
	}
	carrier := &Ship{Id: 1, Owner: 8, NumBays: 6, FriendlyCode: "abc", Aggressiveness: AggressiveKill}
	target := &Ship{Id: 2, Owner: 1, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressivePassive}
	rng2 := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		resolveAttack(carrier, target, cfg, rng2, bayStats)
	}
	assert.LessOrEqual(t, bayStats[1].MinFightersAboard, 6)
	assert.LessOrEqual(t, carrier.NumBays, 6, "fighters actually expended should draw NumBays down from its starting count")
	assert.Equal(t, 0, bayStats[1].TorpedoHitsDealt, "a bay-only attacker must never credit torpedo hits")
}

func TestCombat_PHostModeFightsOnePairAtATime(t *testing.T) {
	cfg := phostConfig()
	setup := &Setup{
		Ships: []*Ship{
			{Id: 1, Owner: 8, NumBeams: 4, BeamType: 6, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressiveKill},
			{Id: 2, Owner: 1, NumBeams: 4, BeamType: 6, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressiveKill},
			{Id: 3, Owner: 2, NumBeams: 0, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressivePassive},
			{Id: 4, Owner: 3, NumBeams: 0, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressivePassive},
		},
	}
	rng := rand.New(rand.NewSource(3))
	_, result := RunSimulation(setup, cfg, FlakConfig{}, RunOptions{}, rng)
	assert.Equal(t, 1000, result.ThisBattleWeight)

	engagedDamage := setup.Ships[0].Damage > 0 || setup.Ships[1].Damage > 0
	assert.True(t, engagedDamage, "the two weaponed ships must have paired off and fought")
	assert.Equal(t, 0, setup.Ships[2].Damage, "passive unweaponed ships outside any pair take no damage")
	assert.Equal(t, 0, setup.Ships[3].Damage, "passive unweaponed ships outside any pair take no damage")
}

func TestCombat_FlakModeUsesRatingScale(t *testing.T) {
	cfg := Configuration{Mode: VcrFLAK, Seed: 42}
	setup := &Setup{
		Ships: []*Ship{
			{Id: 1, Owner: 8, NumBeams: 4, BeamType: 6, FriendlyCode: "abc", Aggressiveness: AggressiveKill},
			{Id: 2, Owner: 1, Shield: 0, FriendlyCode: "abc", Aggressiveness: AggressivePassive},
		},
	}
	flak := FlakConfig{RatingBeamScale: 20, CompensationShipScale: 5}
	rng := rand.New(rand.NewSource(9))
	_, result := RunSimulation(setup, cfg, flak, RunOptions{}, rng)
	assert.Equal(t, 1000, result.ThisBattleWeight)
	assert.Greater(t, setup.Ships[1].Damage, 0, "the FLAK-mode attacker should still land damage scaled by its rating")
}
