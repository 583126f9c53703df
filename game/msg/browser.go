package msg

import "strings"

// BrowseMode is a semantic navigation direction Browser.Browse honors.
type BrowseMode int

const (
	First BrowseMode = iota
	Last
	Next
	Previous
	NextUnread
	PreviousUnread
)

// SearchMode scopes Browser.Search's starting point and direction.
type SearchMode int

const (
	SearchForward SearchMode = iota
	SearchBackward
)

// Configuration stores per-game filter state: a set of headings flagged
// as filtered (hidden by browse unless acceptFiltered overrides it).
type Configuration struct {
	filteredHeadings map[string]bool
}

// NewConfiguration returns a configuration with nothing filtered.
func NewConfiguration() *Configuration {
	return &Configuration{filteredHeadings: make(map[string]bool)}
}

// SetFiltered marks heading as filtered (true) or visible (false).
func (c *Configuration) SetFiltered(heading string, filtered bool) {
	if filtered {
		c.filteredHeadings[heading] = true
	} else {
		delete(c.filteredHeadings, heading)
	}
}

// IsFiltered reports whether heading is currently filtered.
func (c *Configuration) IsFiltered(heading string) bool {
	return c.filteredHeadings[heading]
}

// Browser wraps a Mailbox and a Configuration, providing semantic
// navigation and search that honors the filter unless overridden.
type Browser struct {
	mailbox Mailbox
	config  *Configuration
	current int
}

// NewBrowser returns a browser positioned before the first message.
func NewBrowser(mailbox Mailbox, config *Configuration) *Browser {
	if config == nil {
		config = NewConfiguration()
	}
	return &Browser{mailbox: mailbox, config: config, current: -1}
}

// Current returns the browser's current index, or -1 if none.
func (b *Browser) Current() int { return b.current }

func (b *Browser) acceptable(i int, acceptFiltered bool) bool {
	if i < 0 || i >= b.mailbox.NumMessages() {
		return false
	}
	if acceptFiltered {
		return true
	}
	return !b.config.IsFiltered(b.mailbox.Metadata(i).Heading)
}

// FindFirstMessage positions the browser at the first non-filtered
// message and returns its index, or -1 if there is none.
func (b *Browser) FindFirstMessage() int {
	for i := 0; i < b.mailbox.NumMessages(); i++ {
		if b.acceptable(i, false) {
			b.current = i
			return i
		}
	}
	b.current = -1
	return -1
}

// Browse moves the browser according to mode, repeating amount times, and
// returns the resulting index (-1 if navigation ran off either end).
func (b *Browser) Browse(mode BrowseMode, amount int, acceptFiltered bool) int {
	if amount < 1 {
		amount = 1
	}
	for n := 0; n < amount; n++ {
		if !b.browseOnce(mode, acceptFiltered) {
			return -1
		}
	}
	return b.current
}

func (b *Browser) browseOnce(mode BrowseMode, acceptFiltered bool) bool {
	n := b.mailbox.NumMessages()
	switch mode {
	case First:
		for i := 0; i < n; i++ {
			if b.acceptable(i, acceptFiltered) {
				b.current = i
				return true
			}
		}
	case Last:
		for i := n - 1; i >= 0; i-- {
			if b.acceptable(i, acceptFiltered) {
				b.current = i
				return true
			}
		}
	case Next:
		for i := b.current + 1; i < n; i++ {
			if b.acceptable(i, acceptFiltered) {
				b.current = i
				return true
			}
		}
	case Previous:
		for i := b.current - 1; i >= 0; i-- {
			if b.acceptable(i, acceptFiltered) {
				b.current = i
				return true
			}
		}
	case NextUnread:
		for i := b.current + 1; i < n; i++ {
			if b.acceptable(i, acceptFiltered) && b.mailbox.Metadata(i).Flags&FlagUnread != 0 {
				b.current = i
				return true
			}
		}
	case PreviousUnread:
		for i := b.current - 1; i >= 0; i-- {
			if b.acceptable(i, acceptFiltered) && b.mailbox.Metadata(i).Flags&FlagUnread != 0 {
				b.current = i
				return true
			}
		}
	}
	return false
}

// Search moves the browser to the next (or previous, for SearchBackward)
// message whose body contains needle (case-insensitive), honoring the
// filter unless acceptFiltered. Returns the resulting index, or -1 if
// nothing matched.
func (b *Browser) Search(mode SearchMode, amount int, acceptFiltered bool, needle string) int {
	if amount < 1 {
		amount = 1
	}
	needle = strings.ToLower(needle)
	n := b.mailbox.NumMessages()
	found := 0
	step := 1
	start := b.current + 1
	if mode == SearchBackward {
		step = -1
		start = b.current - 1
	}
	for i := start; i >= 0 && i < n; i += step {
		if !b.acceptable(i, acceptFiltered) {
			continue
		}
		if strings.Contains(strings.ToLower(b.mailbox.BodyText(i)), needle) {
			found++
			if found == amount {
				b.current = i
				return i
			}
		}
	}
	return -1
}
