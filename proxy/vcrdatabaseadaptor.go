package proxy

import "github.com/playbymail/vgacore/game/sim"

// VcrDatabaseAdaptor exposes one battle set (a ResultList accumulated by
// a Runner) plus its environment (Configuration), for a UI that browses
// recorded fights and their aggregated class/unit results rather than
// driving the run itself — that half belongs to SimulationAdaptor.
type VcrDatabaseAdaptor struct {
	results *sim.ResultList
	config  sim.Configuration
	current int
}

func (*VcrDatabaseAdaptor) adaptor() {}

// NewVcrDatabaseAdaptor wraps results and config, positioned before the
// first battle.
func NewVcrDatabaseAdaptor(results *sim.ResultList, config sim.Configuration) *VcrDatabaseAdaptor {
	return &VcrDatabaseAdaptor{results: results, config: config, current: -1}
}

// NumClassResults returns how many distinct class results the battle set
// aggregated so far.
func (a *VcrDatabaseAdaptor) NumClassResults() int { return len(a.results.ClassResults()) }

// SortedClasses returns the class results ordered by weight, heaviest
// first.
func (a *VcrDatabaseAdaptor) SortedClasses() []*sim.ClassResult { return a.results.SortedClasses() }

// UnitResult returns the aggregated per-unit statistics for unit id.
func (a *VcrDatabaseAdaptor) UnitResult(id int) *sim.UnitResult { return a.results.UnitResult(id) }

// Configuration returns the battle set's environment.
func (a *VcrDatabaseAdaptor) Configuration() sim.Configuration { return a.config }

// CurrentClassResult returns the adaptor's current browse position.
func (a *VcrDatabaseAdaptor) CurrentClassResult() int { return a.current }

// SetCurrentClassResult sets the adaptor's current browse position.
func (a *VcrDatabaseAdaptor) SetCurrentClassResult(i int) { a.current = i }
