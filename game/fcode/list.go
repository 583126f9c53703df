package fcode

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/playbymail/vgacore/log"
)

// List is the master friendly-code list plus its extra-codes blocklist.
// A zero-value List is ready to use.
type List struct {
	codes  []*FriendlyCode
	extras []string
}

// NewList returns an empty, ready-to-use List.
func NewList() *List {
	return &List{}
}

// Size returns the number of entries in the list (including loaded extras).
func (l *List) Size() int { return len(l.codes) }

// At returns the entry at index i, or nil if i is out of range.
func (l *List) At(i int) *FriendlyCode {
	if i < 0 || i >= len(l.codes) {
		return nil
	}
	return l.codes[i]
}

// All returns every entry in the list, in its current order.
func (l *List) All() []*FriendlyCode {
	return l.codes
}

// Clear empties the list and its extras.
func (l *List) Clear() {
	l.codes = nil
	l.extras = nil
}

// Add appends an entry to the list without sorting.
func (l *List) Add(code *FriendlyCode) {
	l.codes = append(l.codes, code)
}

// FindIndexByName returns the index of the first entry whose code exactly
// matches (case-sensitive).
func (l *List) FindIndexByName(code string) (int, bool) {
	for i, c := range l.codes {
		if c.Code == code {
			return i, true
		}
	}
	return 0, false
}

// FindCodeByName returns the first entry whose code exactly matches, or nil.
func (l *List) FindCodeByName(code string) *FriendlyCode {
	if i, ok := l.FindIndexByName(code); ok {
		return l.codes[i]
	}
	return nil
}

// Sort orders the list by the master-list order: digits, then uppercase,
// then lowercase, then other ASCII, compared position by position.
func (l *List) Sort() {
	sort.SliceStable(l.codes, func(i, j int) bool {
		return compareCode(l.codes[i].Code, l.codes[j].Code) < 0
	})
}

// Load parses the master friendly-code list. Each line is
// "code,flags,description"; blank lines and ";"-prefixed comments are
// ignored. Malformed lines and truncated codes are logged and otherwise
// skipped or tolerated — loading never fails outright (§4.1 "Failure
// semantics").
func (l *List) Load(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		parts := strings.SplitN(line, ",", 3)
		if len(parts) < 3 {
			log.Warn("malformed friendly code line, skipped", log.F("line", line))
			continue
		}

		codeStr := strings.TrimSpace(parts[0])
		if codeStr == "" {
			log.Warn("malformed friendly code line, skipped", log.F("line", line))
			continue
		}
		if len(codeStr) > 3 {
			log.Warn("friendly code truncated to 3 characters", log.F("code", codeStr))
			codeStr = codeStr[:3]
		}

		flags, mask := parseFlags(parts[1])
		l.Add(&FriendlyCode{Code: codeStr, Flags: flags, Mask: mask, DescriptionTemplate: parts[2]})
	}
	l.Sort()
}

// LoadExtraCodes reads a whitespace-delimited list of prefix-blocklist
// entries. Each token is recorded for prefix matching (isSpecial/isExtra)
// and, unless a code with the exact same spelling already exists, appended
// to the list as a system-generated PrefixCode entry.
func (l *List) LoadExtraCodes(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		log.Warn("failed to read extra friendly codes", log.F("error", err))
		return
	}
	for _, tok := range strings.Fields(string(data)) {
		l.extras = append(l.extras, tok)
		if _, exists := l.FindIndexByName(tok); !exists {
			l.Add(&FriendlyCode{Code: tok, Flags: PrefixCode})
		}
	}
}

// IsExtra reports whether code is prefix-matched (case-sensitive) by an
// entry loaded via LoadExtraCodes.
func (l *List) IsExtra(code string) bool {
	return l.matchesExtraPrefix(code, false)
}

func (l *List) matchesExtraPrefix(code string, caseBlind bool) bool {
	for _, ex := range l.extras {
		if len(ex) > len(code) {
			continue
		}
		prefix := code[:len(ex)]
		if caseBlind {
			if strings.EqualFold(prefix, ex) {
				return true
			}
		} else if prefix == ex {
			return true
		}
	}
	return false
}

// IsSpecial reports whether code matches a master-list entry exactly, or is
// prefixed by an extra-codes entry. caseBlind controls both comparisons.
func (l *List) IsSpecial(code string, caseBlind bool) bool {
	for _, c := range l.codes {
		if c.Flags&PrefixCode != 0 {
			continue
		}
		if caseBlind {
			if strings.EqualFold(c.Code, code) {
				return true
			}
		} else if c.Code == code {
			return true
		}
	}
	return l.matchesExtraPrefix(code, caseBlind)
}

// IsUniversalMinefieldFCode detects the "mfX" family. PHost matches
// case-sensitively ("mf?"); Host/NuHost match case-blind. tolerant forces
// case-blind matching regardless of host.
func (l *List) IsUniversalMinefieldFCode(code string, tolerant bool, host Host) bool {
	if len(code) != 3 {
		return false
	}
	prefix := code[:2]
	if tolerant || host.isCaseBlindMinefieldHost() {
		return strings.EqualFold(prefix, "mf")
	}
	return prefix == "mf"
}

// IsAllowedRandomCode reports whether code may be used as a randomly
// generated friendly code under host.
func (l *List) IsAllowedRandomCode(code string, host Host) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if code[i] < 0x20 || code[i] > 0x7e || code[i] == '?' || code[i] == '#' {
			return false
		}
	}
	if code[0] == code[1] || code[0] == code[2] || code[1] == code[2] {
		return false
	}
	if IsNumeric(code, host) {
		return false
	}
	if code[0] == 'x' || code[0] == 'X' {
		return false
	}
	if l.IsSpecial(code, true) {
		return false
	}
	if l.IsUniversalMinefieldFCode(code, false, host) {
		return false
	}
	return true
}
