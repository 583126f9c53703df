package msg

import "sort"

// outboxMessage is a pending, player-authored message.
type outboxMessage struct {
	id         int
	body       string
	receivers  map[int]bool // player id -> included
	universal  bool         // sent to all players
	flags      Flags
}

// Outbox holds the player's pending-to-send messages. Unlike Inbox,
// messages are addressed by a stable id assigned at creation time, not by
// their position in the display order — so a background edit (deleting
// message 2) never silently renumbers message 5 out from under a proxy
// that's mid-edit on it.
type Outbox struct {
	byID   map[int]*outboxMessage
	order  []int // ids, in display order
	nextID int
}

// NewOutbox returns an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{byID: make(map[int]*outboxMessage)}
}

// Add creates a new pending message addressed to receivers (player ids;
// an empty set with universal=true means "everyone") and returns its
// stable id.
func (ob *Outbox) Add(body string, receivers []int, universal bool) int {
	ob.nextID++
	id := ob.nextID
	set := make(map[int]bool, len(receivers))
	for _, r := range receivers {
		set[r] = true
	}
	ob.byID[id] = &outboxMessage{id: id, body: body, receivers: set, universal: universal}
	ob.order = append(ob.order, id)
	return id
}

// Delete removes the message with the given stable id, if present.
func (ob *Outbox) Delete(id int) {
	if _, ok := ob.byID[id]; !ok {
		return
	}
	delete(ob.byID, id)
	for i, oid := range ob.order {
		if oid == id {
			ob.order = append(ob.order[:i], ob.order[i+1:]...)
			break
		}
	}
}

// SetBody replaces the body text of an existing pending message.
func (ob *Outbox) SetBody(id int, body string) {
	if m, ok := ob.byID[id]; ok {
		m.body = body
	}
}

// IDs returns every pending message's stable id, in display order.
func (ob *Outbox) IDs() []int {
	out := make([]int, len(ob.order))
	copy(out, ob.order)
	return out
}

// indexOf maps a stable id to its position in display order, or -1.
func (ob *Outbox) indexOf(id int) int {
	for i, oid := range ob.order {
		if oid == id {
			return i
		}
	}
	return -1
}

func (ob *Outbox) NumMessages() int { return len(ob.order) }

func (ob *Outbox) atIndex(i int) *outboxMessage {
	if i < 0 || i >= len(ob.order) {
		return nil
	}
	return ob.byID[ob.order[i]]
}

func (ob *Outbox) BodyText(i int) string {
	if m := ob.atIndex(i); m != nil {
		return m.body
	}
	return ""
}

func (ob *Outbox) HeaderText(i int) string {
	if m := ob.atIndex(i); m != nil {
		return Heading(m.body)
	}
	return ""
}

func (ob *Outbox) DisplayText(i int) string {
	m := ob.atIndex(i)
	if m == nil {
		return ""
	}
	if m.universal {
		return "(to ALL) " + m.body
	}
	recv := make([]int, 0, len(m.receivers))
	for r := range m.receivers {
		recv = append(recv, r)
	}
	sort.Ints(recv)
	return m.body
}

func (ob *Outbox) Metadata(i int) Metadata {
	m := ob.atIndex(i)
	if m == nil {
		return Metadata{}
	}
	return Metadata{Flags: m.flags, Heading: Heading(m.body)}
}

func (ob *Outbox) Actions(i int) []Action {
	if ob.atIndex(i) == nil {
		return nil
	}
	return []Action{ActionDelete}
}

func (ob *Outbox) PerformAction(i int, action Action) error {
	m := ob.atIndex(i)
	if m == nil {
		return &ErrIndexOutOfRange{Index: i, Count: len(ob.order)}
	}
	if action == ActionDelete {
		ob.Delete(m.id)
	}
	return nil
}
