// Package msg implements the message subsystem: mailboxes, the player's
// inbox and outbox, subset views tied to a ship or planet, and filtered
// browsing/search over any of them.
package msg

import "fmt"

// Flags records per-message state a Mailbox tracks across turns.
type Flags uint8

const (
	FlagConfirmed Flags = 1 << iota
	FlagReplied
	FlagForwarded
	FlagFiltered
	FlagUnread
)

// Action is a verb a mailbox may offer for a given message (reply,
// confirm, delete...).
type Action int

const (
	ActionConfirm Action = iota
	ActionReply
	ActionForward
	ActionDelete
	ActionGoto
)

// Metadata is the per-message bookkeeping a Mailbox exposes without
// decoding the message body: turn number, flags, and the heading used for
// filter matching.
type Metadata struct {
	Turn    int
	Flags   Flags
	Heading string
}

// Heading returns the first line of a message, used by Browser/Configuration
// for per-heading filtering (e.g. "(-h000)Host Message").
func Heading(body string) string {
	for i, r := range body {
		if r == '\n' {
			return body[:i]
		}
	}
	return body
}

// Mailbox is the abstract read interface every concrete message source
// implements: Inbox, Outbox, and SubsetMailbox all satisfy it.
type Mailbox interface {
	NumMessages() int
	BodyText(i int) string
	HeaderText(i int) string
	DisplayText(i int) string
	Metadata(i int) Metadata
	Actions(i int) []Action
	PerformAction(i int, action Action) error
}

// ErrIndexOutOfRange is returned by any Mailbox accessor given an index
// outside [0, NumMessages()).
type ErrIndexOutOfRange struct {
	Index, Count int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("message index %d out of range (have %d messages)", e.Index, e.Count)
}
