package proxy

import (
	"github.com/playbymail/vgacore/game/msg"
	"github.com/playbymail/vgacore/game/sim"
)

// Adaptor is built once per Proxy, lazily, against the live Session by a
// Sender[*Session].MakeTemporary closure — the trampoline the source
// describes. It is never touched from the UI thread directly; only
// through the Sender a Proxy holds.
type Adaptor interface {
	adaptor()
}

// Session is the complete set of game-thread-resident state a running
// game exposes to adaptors: the message subsystem, registered battle
// simulation runs, and whatever else a future adaptor needs. It is built
// and owned on the game dispatcher's goroutine.
type Session struct {
	Inbox         *msg.Inbox
	Outbox        *msg.Outbox
	MailboxConfig *msg.Configuration

	runs map[string]*sim.Runner
}

// NewSession returns an empty session ready to be populated by whatever
// loads a turn.
func NewSession() *Session {
	return &Session{
		Inbox:         msg.NewInbox(),
		Outbox:        msg.NewOutbox(),
		MailboxConfig: msg.NewConfiguration(),
		runs:          make(map[string]*sim.Runner),
	}
}

// RegisterRun stores a runner under id so a SimulationAdaptor can later
// look it up by id (the id a SimulationProxy was constructed with).
func (s *Session) RegisterRun(id string, r *sim.Runner) {
	s.runs[id] = r
}

// Run looks up a previously registered runner.
func (s *Session) Run(id string) (*sim.Runner, bool) {
	r, ok := s.runs[id]
	return r, ok
}

// NewSessionSender returns the root Sender every adaptor Sender is
// derived from via MakeTemporary: a handle onto session, owned by
// gameThread. Nothing else may read or write session directly.
func NewSessionSender(gameThread *Dispatcher, session *Session) *Sender[*Session] {
	return NewSender(gameThread, func() *Session { return session })
}
