package proxy

import "github.com/playbymail/vgacore/game/msg"

// MailboxProxy is the UI-thread handle onto a MailboxAdaptor. Synchronous
// accessors (NumMessages, DisplayText) use a WaitIndicator; mutators
// (Browse, PerformAction) post asynchronously and notify OnUpdate once
// applied, so a UI list view can simply redraw on that signal rather than
// polling.
type MailboxProxy struct {
	adaptor  *Sender[*MailboxAdaptor]
	receiver *Receiver[*MailboxProxy]
	OnUpdate Signal
}

// NewMailboxProxy builds a proxy whose adaptor is created lazily on the
// game thread by calling build against the live Session, the first time
// it is actually needed.
func NewMailboxProxy(session *Sender[*Session], ui *Dispatcher, build func(*Session) *MailboxAdaptor) *MailboxProxy {
	p := &MailboxProxy{adaptor: MakeTemporary(session, build)}
	p.receiver = NewReceiver(ui, p)
	return p
}

// NumMessages synchronously returns the mailbox's message count.
func (p *MailboxProxy) NumMessages(wi *WaitIndicator) int {
	var n int
	Call(wi, p.adaptor, func(a *MailboxAdaptor) { n = a.NumMessages() })
	return n
}

// CurrentMessage synchronously returns the shared current-message index.
func (p *MailboxProxy) CurrentMessage(wi *WaitIndicator) int {
	var i int
	Call(wi, p.adaptor, func(a *MailboxAdaptor) { i = a.CurrentMessage() })
	return i
}

// DisplayText synchronously returns the current message's display text.
func (p *MailboxProxy) DisplayText(wi *WaitIndicator) string {
	var s string
	Call(wi, p.adaptor, func(a *MailboxAdaptor) { s = a.DisplayText() })
	return s
}

// Browse asynchronously moves the current message and emits OnUpdate.
func (p *MailboxProxy) Browse(mode msg.BrowseMode, amount int, acceptFiltered bool) {
	p.adaptor.PostNewRequest(func(a *MailboxAdaptor) {
		a.Browse(mode, amount, acceptFiltered)
		p.receiver.PostReply(func(self *MailboxProxy) { self.OnUpdate.Emit() })
	})
}

// PerformAction asynchronously applies action to the current message and
// emits OnUpdate.
func (p *MailboxProxy) PerformAction(action msg.Action) {
	p.adaptor.PostNewRequest(func(a *MailboxAdaptor) {
		a.PerformAction(action)
		p.receiver.PostReply(func(self *MailboxProxy) { self.OnUpdate.Emit() })
	})
}
