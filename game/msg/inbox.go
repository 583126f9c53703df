package msg

// message is a single received message, addressed by Inbox via its slice
// index (stable within a turn; Inbox is rebuilt, not mutated, across turns).
type message struct {
	turn  int
	flags Flags
	body  string

	// planetID/shipID associate this message with a map object, when the
	// game's parser could extract one from the body (e.g. a planet
	// production report); 0 means "no association".
	planetID int
	shipID   int
}

// Inbox is the concrete, game-populated Mailbox: every message the host
// delivered this turn, in host order.
type Inbox struct {
	messages []*message
}

// NewInbox returns an empty inbox.
func NewInbox() *Inbox { return &Inbox{} }

// Add appends a received message and returns its index.
func (in *Inbox) Add(turn int, body string) int {
	in.messages = append(in.messages, &message{turn: turn, body: body, flags: FlagUnread})
	return len(in.messages) - 1
}

// AssociatePlanet tags message i as concerning planet id, for
// SubsetMailbox views.
func (in *Inbox) AssociatePlanet(i, planetID int) { in.messages[i].planetID = planetID }

// AssociateShip tags message i as concerning ship id, for SubsetMailbox
// views.
func (in *Inbox) AssociateShip(i, shipID int) { in.messages[i].shipID = shipID }

// IndicesForPlanet returns, in order, the indices of every message
// associated with planetID.
func (in *Inbox) IndicesForPlanet(planetID int) []int {
	var out []int
	for i, m := range in.messages {
		if m.planetID == planetID {
			out = append(out, i)
		}
	}
	return out
}

// IndicesForShip returns, in order, the indices of every message
// associated with shipID.
func (in *Inbox) IndicesForShip(shipID int) []int {
	var out []int
	for i, m := range in.messages {
		if m.shipID == shipID {
			out = append(out, i)
		}
	}
	return out
}

func (in *Inbox) NumMessages() int { return len(in.messages) }

func (in *Inbox) at(i int) *message {
	if i < 0 || i >= len(in.messages) {
		return nil
	}
	return in.messages[i]
}

func (in *Inbox) BodyText(i int) string {
	if m := in.at(i); m != nil {
		return m.body
	}
	return ""
}

func (in *Inbox) HeaderText(i int) string {
	if m := in.at(i); m != nil {
		return Heading(m.body)
	}
	return ""
}

func (in *Inbox) DisplayText(i int) string {
	if m := in.at(i); m != nil {
		return m.body
	}
	return ""
}

func (in *Inbox) Metadata(i int) Metadata {
	m := in.at(i)
	if m == nil {
		return Metadata{}
	}
	return Metadata{Turn: m.turn, Flags: m.flags, Heading: Heading(m.body)}
}

func (in *Inbox) Actions(i int) []Action {
	if in.at(i) == nil {
		return nil
	}
	return []Action{ActionConfirm, ActionReply, ActionForward, ActionDelete, ActionGoto}
}

func (in *Inbox) PerformAction(i int, action Action) error {
	m := in.at(i)
	if m == nil {
		return &ErrIndexOutOfRange{Index: i, Count: len(in.messages)}
	}
	switch action {
	case ActionConfirm:
		m.flags |= FlagConfirmed
	case ActionReply:
		m.flags |= FlagReplied
	case ActionForward:
		m.flags |= FlagForwarded
	case ActionDelete:
		in.messages = append(in.messages[:i], in.messages[i+1:]...)
	}
	m.flags &^= FlagUnread
	return nil
}
