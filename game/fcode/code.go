package fcode

import "strings"

// FriendlyCode is a single master-list entry: a code string, its declared
// flags, an optional race restriction, and a description template.
type FriendlyCode struct {
	Code                string
	Flags               Flags
	Mask                RaceMask
	DescriptionTemplate string
}

// Description resolves "%N" placeholders in the description template
// against a table of player short names. A placeholder with no matching
// player falls back to the bare digit.
func (f *FriendlyCode) Description(players map[int]string) string {
	tmpl := f.DescriptionTemplate
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '%' && i+1 < len(tmpl) && tmpl[i+1] >= '0' && tmpl[i+1] <= '9' {
			id := int(tmpl[i+1] - '0')
			if name, ok := players[id]; ok {
				b.WriteString(name)
			} else {
				b.WriteByte(tmpl[i+1])
			}
			i++
		} else {
			b.WriteByte(tmpl[i])
		}
	}
	return b.String()
}

// Info is a flattened, display-ready view of a FriendlyCode, as produced by
// List.Pack.
type Info struct {
	Code        string
	Flags       string
	RaceMask    RaceMask
	Description string
}

func charClass(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return 0
	case b >= 'A' && b <= 'Z':
		return 1
	case b >= 'a' && b <= 'z':
		return 2
	default:
		return 3
	}
}

// compareCode implements the master list's sort order: digits < uppercase <
// lowercase < other ASCII, compared position by position.
func compareCode(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := charClass(a[i]), charClass(b[i])
		if ca != cb {
			return ca - cb
		}
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}
