// Package editor implements a multi-line text editor over an array of
// lines, each with an optional non-editable prefix and a word-wrap
// continuation marker, driven entirely by semantic commands rather than
// raw keystrokes — the commands a message-composition UI would bind to
// its own key table.
package editor

import "unicode"

// Flags carries per-call editor behavior toggles; combine with |.
type Flags uint8

const (
	// AllowCursorAfterEnd lets the cursor sit past the last character of
	// a line instead of being clamped to it.
	AllowCursorAfterEnd Flags = 1 << iota
	// Overwrite replaces characters under the cursor instead of
	// inserting before them.
	Overwrite
	// WordWrap reflows a line that grows past the length limit instead
	// of simply refusing further input.
	WordWrap
)

// Has reports whether f includes flag.
func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// Command is a semantic editing operation HandleCommand dispatches.
type Command int

const (
	MoveLineUp Command = iota
	MoveLineDown
	MoveCharacterLeft
	MoveCharacterRight
	MoveWordLeft
	MoveWordRight
	MoveBeginningOfLine
	MoveEndOfLine
	MoveBeginningOfDocument
	MoveEndOfDocument
	DeleteCharacter
	DeleteCharacterBackward
	DeleteLine
	DeleteEndOfLine
	DeleteWordBackward
	DeleteWordForward
	TransposeCharacters
	ToggleInsert
	ToggleWrap
	InsertTab
	InsertNewline
	InsertNewlineAbove
	Null
)

// Unlimited is the "no limit configured" sentinel for length/line limits,
// matching the original's use of size_t(-1): a value no real line count
// or column will ever reach.
const Unlimited = int(^uint(0) >> 1)

const tabSize = 8

func isSpace(ch rune) bool { return ch == ' ' }

func isSeparator(ch rune) bool { return ch == '-' || ch == '/' }

// isWordCharacter reports whether ch belongs to a word for word motion:
// letters and digits; spaces, separators and punctuation do not.
func isWordCharacter(ch rune) bool { return unicode.IsLetter(ch) || unicode.IsDigit(ch) }

// moveWordLeft returns the column one word-left of column within text:
// skip back over non-word characters, then back over the word run.
func moveWordLeft(text []rune, column int) int {
	for column > 0 && !isWordCharacter(text[column-1]) {
		column--
	}
	for column > 0 && isWordCharacter(text[column-1]) {
		column--
	}
	return column
}

// moveWordRight is moveWordLeft's mirror: skip non-word characters, then
// skip the word run.
func moveWordRight(text []rune, column int) int {
	n := len(text)
	for column < n && !isWordCharacter(text[column]) {
		column++
	}
	for column < n && isWordCharacter(text[column]) {
		column++
	}
	return column
}

func deleteCharacterForward(text []rune, column, protectUntil int) []rune {
	if column < protectUntil || column >= len(text) {
		return text
	}
	return append(text[:column:column], text[column+1:]...)
}

// deleteCharacterBackward deletes the character before column, unless
// that position is inside the protected prefix — in which case the
// cursor merely steps left without touching the text.
func deleteCharacterBackward(text []rune, column, protectUntil int) ([]rune, int) {
	if column <= protectUntil {
		if column > 0 {
			column--
		}
		return text, column
	}
	text = append(text[:column-1:column-1], text[column:]...)
	return text, column - 1
}

func deleteEndOfLine(text []rune, column, protectUntil int) ([]rune, int) {
	cut := column
	if cut < protectUntil {
		cut = protectUntil
	}
	if cut < len(text) {
		text = text[:cut]
	}
	return text, cut
}

func transposeCharacters(text []rune, column int) ([]rune, int) {
	if column > 0 && column < len(text) {
		text[column-1], text[column] = text[column], text[column-1]
		column++
	}
	return text, column
}
