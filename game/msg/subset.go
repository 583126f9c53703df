package msg

// SubsetMailbox wraps a parent Mailbox and a fixed list of the parent's
// indices (in outer-index order), used for "messages about planet P"
// and similar filtered views. Index i in the subset addresses parent
// index Indices[i].
type SubsetMailbox struct {
	Parent  Mailbox
	Indices []int
}

// NewSubsetMailbox builds a subset view over the given outer indices.
func NewSubsetMailbox(parent Mailbox, indices []int) *SubsetMailbox {
	cp := make([]int, len(indices))
	copy(cp, indices)
	return &SubsetMailbox{Parent: parent, Indices: cp}
}

// OuterIndex translates a subset-local index to the parent's index, or -1
// if i is out of range.
func (s *SubsetMailbox) OuterIndex(i int) int {
	if i < 0 || i >= len(s.Indices) {
		return -1
	}
	return s.Indices[i]
}

func (s *SubsetMailbox) NumMessages() int { return len(s.Indices) }

func (s *SubsetMailbox) BodyText(i int) string {
	if o := s.OuterIndex(i); o >= 0 {
		return s.Parent.BodyText(o)
	}
	return ""
}

func (s *SubsetMailbox) HeaderText(i int) string {
	if o := s.OuterIndex(i); o >= 0 {
		return s.Parent.HeaderText(o)
	}
	return ""
}

func (s *SubsetMailbox) DisplayText(i int) string {
	if o := s.OuterIndex(i); o >= 0 {
		return s.Parent.DisplayText(o)
	}
	return ""
}

func (s *SubsetMailbox) Metadata(i int) Metadata {
	if o := s.OuterIndex(i); o >= 0 {
		return s.Parent.Metadata(o)
	}
	return Metadata{}
}

func (s *SubsetMailbox) Actions(i int) []Action {
	if o := s.OuterIndex(i); o >= 0 {
		return s.Parent.Actions(o)
	}
	return nil
}

func (s *SubsetMailbox) PerformAction(i int, action Action) error {
	o := s.OuterIndex(i)
	if o < 0 {
		return &ErrIndexOutOfRange{Index: i, Count: len(s.Indices)}
	}
	return s.Parent.PerformAction(o, action)
}
