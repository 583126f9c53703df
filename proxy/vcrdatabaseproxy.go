package proxy

import "github.com/playbymail/vgacore/game/sim"

// VcrDatabaseProxy is the UI-thread handle onto a VcrDatabaseAdaptor.
// Browsing a recorded battle set is read-mostly, so every method here is
// synchronous; there is no long-running work to keep off the UI thread.
type VcrDatabaseProxy struct {
	adaptor *Sender[*VcrDatabaseAdaptor]
}

// NewVcrDatabaseProxy builds a proxy whose adaptor is created lazily on
// the game thread against the live Session, the first time it is needed.
func NewVcrDatabaseProxy(session *Sender[*Session], build func(*Session) *VcrDatabaseAdaptor) *VcrDatabaseProxy {
	return &VcrDatabaseProxy{adaptor: MakeTemporary(session, build)}
}

// NumClassResults synchronously returns the battle set's class count.
func (p *VcrDatabaseProxy) NumClassResults(wi *WaitIndicator) int {
	var n int
	Call(wi, p.adaptor, func(a *VcrDatabaseAdaptor) { n = a.NumClassResults() })
	return n
}

// SortedClasses synchronously returns the battle set's class results,
// heaviest weight first.
func (p *VcrDatabaseProxy) SortedClasses(wi *WaitIndicator) []*sim.ClassResult {
	var cr []*sim.ClassResult
	Call(wi, p.adaptor, func(a *VcrDatabaseAdaptor) { cr = a.SortedClasses() })
	return cr
}

// UnitResult synchronously returns the aggregated statistics for unit id.
func (p *VcrDatabaseProxy) UnitResult(wi *WaitIndicator, id int) *sim.UnitResult {
	var ur *sim.UnitResult
	Call(wi, p.adaptor, func(a *VcrDatabaseAdaptor) { ur = a.UnitResult(id) })
	return ur
}

// SetCurrentClassResult synchronously sets the browse position.
func (p *VcrDatabaseProxy) SetCurrentClassResult(wi *WaitIndicator, i int) {
	Call(wi, p.adaptor, func(a *VcrDatabaseAdaptor) { a.SetCurrentClassResult(i) })
}
