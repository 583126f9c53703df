package proxy

import "github.com/playbymail/vgacore/game/sim"

// SimulationAdaptor is the game-thread object a SimulationProxy calls
// through. It wraps one registered battle simulation run and the fresh
// StopSignal that run's current Run call owns (§4.4 Cancellation: each
// run gets its own signal, so a stale stop from a finished run can never
// leak into a new one started afterward).
type SimulationAdaptor struct {
	runner *sim.Runner
	stop   *sim.StopSignal
}

func (*SimulationAdaptor) adaptor() {}

// NewSimulationAdaptor wraps runner with a fresh stop signal.
func NewSimulationAdaptor(runner *sim.Runner) *SimulationAdaptor {
	return &SimulationAdaptor{runner: runner, stop: sim.NewStopSignal()}
}

// RunFinite runs up to count more battles, honoring the adaptor's own
// stop signal.
func (a *SimulationAdaptor) RunFinite(count int) {
	a.runner.Run(sim.MakeFiniteLimit(count), a.stop)
}

// RunToSeriesEnd runs to the end of the current series.
func (a *SimulationAdaptor) RunToSeriesEnd() {
	a.runner.Run(sim.MakeSeriesLimit(0), a.stop)
}

// Stop signals the adaptor's current run to halt at its next opportunity.
// A subsequent Run call replaces the adaptor's signal first (see
// SimulationProxy.RunFinite), so Stop can never affect a run that hasn't
// started yet.
func (a *SimulationAdaptor) Stop() {
	a.stop.Set()
}

// freshenStop replaces the adaptor's stop signal, called at the start of
// each new Run call from the proxy so "stop" from a finished run never
// cancels the next one.
func (a *SimulationAdaptor) freshenStop() {
	a.stop = sim.NewStopSignal()
}

// NumBattles returns the number of battles completed so far.
func (a *SimulationAdaptor) NumBattles() int {
	return a.runner.ResultList().GetNumBattles()
}
