package proxy

import (
	"github.com/google/uuid"

	"github.com/playbymail/vgacore/log"
)

// WaitIndicator performs a synchronous rendezvous with another
// dispatcher's value: it posts a request, then pumps its own dispatcher
// (so the caller's own thread stays responsive, e.g. repainting a modal
// "please wait" dialog) until the reply closure runs.
type WaitIndicator struct {
	self *Dispatcher
}

// NewWaitIndicator returns a wait indicator that pumps self while
// blocking on a Call.
func NewWaitIndicator(self *Dispatcher) *WaitIndicator {
	return &WaitIndicator{self: self}
}

// Call posts fn to sender's target thread and blocks until it has run,
// pumping the caller's own dispatcher in the meantime. Each call is
// tagged with a fresh request id purely for tracing; callers never see
// or need it.
func Call[T any](wi *WaitIndicator, sender *Sender[T], fn func(T)) {
	id := uuid.New()
	done := make(chan struct{})
	sender.PostNewRequest(func(v T) {
		fn(v)
		close(done)
	})
	log.Debug("proxy: synchronous call", log.F("request_id", id.String()))
	wi.self.WaitOrPump(done)
}
