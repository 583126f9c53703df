package proxy

// SimulationProxy is the UI-thread handle onto a SimulationAdaptor. Run
// methods are asynchronous and fire-and-forget (a long battle batch must
// not block the UI thread); Stop is asynchronous as well, and NumBattles
// is synchronous.
type SimulationProxy struct {
	adaptor  *Sender[*SimulationAdaptor]
	receiver *Receiver[*SimulationProxy]
	OnUpdate Signal
}

// NewSimulationProxy builds a proxy whose adaptor is created lazily on
// the game thread against the live Session, the first time it is needed.
func NewSimulationProxy(session *Sender[*Session], ui *Dispatcher, build func(*Session) *SimulationAdaptor) *SimulationProxy {
	p := &SimulationProxy{adaptor: MakeTemporary(session, build)}
	p.receiver = NewReceiver(ui, p)
	return p
}

// RunFinite asynchronously runs up to count more battles, refreshing the
// adaptor's stop signal first so a stop from any previous call cannot
// affect this run (§4.4's runFinite/stop/runFinite race).
func (p *SimulationProxy) RunFinite(count int) {
	p.adaptor.PostNewRequest(func(a *SimulationAdaptor) {
		a.freshenStop()
		a.RunFinite(count)
		p.receiver.PostReply(func(self *SimulationProxy) { self.OnUpdate.Emit() })
	})
}

// RunToSeriesEnd asynchronously runs to the end of the current series.
func (p *SimulationProxy) RunToSeriesEnd() {
	p.adaptor.PostNewRequest(func(a *SimulationAdaptor) {
		a.freshenStop()
		a.RunToSeriesEnd()
		p.receiver.PostReply(func(self *SimulationProxy) { self.OnUpdate.Emit() })
	})
}

// Stop asynchronously requests the current run halt at its next
// opportunity.
func (p *SimulationProxy) Stop() {
	p.adaptor.PostNewRequest(func(a *SimulationAdaptor) { a.Stop() })
}

// NumBattles synchronously returns battles completed so far.
func (p *SimulationProxy) NumBattles(wi *WaitIndicator) int {
	var n int
	Call(wi, p.adaptor, func(a *SimulationAdaptor) { n = a.NumBattles() })
	return n
}
