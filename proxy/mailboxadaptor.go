package proxy

import "github.com/playbymail/vgacore/game/msg"

// MailboxAdaptor is the game-thread object a MailboxProxy's Sender calls
// through. It wraps whichever Mailbox the proxy was built for (an Inbox,
// an Outbox, or a SubsetMailbox) and, for views over a subset, the shared
// position cell scenario S5 calls a "session-global variable": setting
// the current message through a planet- or ship-filtered view still
// updates the one global cursor the full inbox view also reads.
type MailboxAdaptor struct {
	mailbox msg.Mailbox
	current *int
	browser *msg.Browser
}

func (*MailboxAdaptor) adaptor() {}

// NewMailboxAdaptor builds an adaptor over mailbox, sharing current as
// its position cell and browser for navigation (browser may be nil if
// this mailbox is never browsed, e.g. a raw subset used only for counts).
func NewMailboxAdaptor(mailbox msg.Mailbox, current *int, browser *msg.Browser) *MailboxAdaptor {
	return &MailboxAdaptor{mailbox: mailbox, current: current, browser: browser}
}

// NumMessages returns how many messages the wrapped mailbox holds.
func (a *MailboxAdaptor) NumMessages() int { return a.mailbox.NumMessages() }

// CurrentMessage returns the shared current-message index.
func (a *MailboxAdaptor) CurrentMessage() int {
	if a.current == nil {
		return -1
	}
	return *a.current
}

// SetCurrentMessage writes the shared current-message index.
func (a *MailboxAdaptor) SetCurrentMessage(i int) {
	if a.current != nil {
		*a.current = i
	}
}

// DisplayText returns the current message's rendered text, or "" if there
// is none.
func (a *MailboxAdaptor) DisplayText() string {
	i := a.CurrentMessage()
	if i < 0 || i >= a.mailbox.NumMessages() {
		return ""
	}
	return a.mailbox.DisplayText(i)
}

// Browse delegates to the bound Browser, if any, syncing the shared
// position cell to the browser's resulting current index.
func (a *MailboxAdaptor) Browse(mode msg.BrowseMode, amount int, acceptFiltered bool) int {
	if a.browser == nil {
		return -1
	}
	i := a.browser.Browse(mode, amount, acceptFiltered)
	a.SetCurrentMessage(i)
	return i
}

// PerformAction runs action against the current message.
func (a *MailboxAdaptor) PerformAction(action msg.Action) error {
	i := a.CurrentMessage()
	if i < 0 {
		return nil
	}
	return a.mailbox.PerformAction(i, action)
}
