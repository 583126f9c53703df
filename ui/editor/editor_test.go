package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditor_DefaultLimitsAreEffectivelyUnlimited(t *testing.T) {
	e := NewEditor()
	assert.Greater(t, e.GetLengthLimit(), 1000)
	assert.Greater(t, e.GetLineLimit(), 1000)
}

func TestEditor_SetLineGrowsDocumentWithEmptyLines(t *testing.T) {
	e := NewEditor()
	e.SetLine(2, "hello")
	e.SetLine(3, "world")

	assert.Equal(t, 4, e.GetNumLines())
	assert.Equal(t, "", e.GetLineText(0))
	assert.Equal(t, "", e.GetLineText(1))
	assert.Equal(t, "hello", e.GetLineText(2))
	assert.Equal(t, "world", e.GetLineText(3))
	assert.Equal(t, "", e.GetLineText(4))
}

func TestEditor_GetRange(t *testing.T) {
	e := NewEditor()
	e.SetLine(2, "hello")
	e.SetLine(3, "world")

	assert.Equal(t, "", e.GetRange(2, 3, 2, 1))
	assert.Equal(t, "", e.GetRange(2, 3, 1, 0))
	assert.Equal(t, "el", e.GetRange(2, 1, 2, 3))
	assert.Equal(t, "ello\n", e.GetRange(2, 1, 3, 0))
	assert.Equal(t, "ello\nwo", e.GetRange(2, 1, 3, 2))
	assert.Equal(t, "\n", e.GetRange(2, 10, 3, 0))
}

func TestEditor_MoveCharacterLeftRight(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "123456789")
	e.SetCursor(0, 3)
	e.HandleCommand(0, MoveCharacterLeft)
	assert.Equal(t, 2, e.GetCurrentColumn())

	e.SetCursor(0, 0)
	e.HandleCommand(0, MoveCharacterLeft)
	assert.Equal(t, 0, e.GetCurrentColumn())

	e.SetLengthLimit(5)
	e.SetLine(0, "12345")
	e.SetCursor(0, 5)
	e.HandleCommand(0, MoveCharacterRight)
	assert.Equal(t, 5, e.GetCurrentColumn())
}

func TestEditor_MoveBeginningEndOfLine(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(0, "hi: there", 4, false)
	e.SetCursor(0, 7)

	e.HandleCommand(0, MoveBeginningOfLine)
	assert.Equal(t, 4, e.GetCurrentColumn())
	e.HandleCommand(0, MoveBeginningOfLine)
	assert.Equal(t, 0, e.GetCurrentColumn())

	e.HandleCommand(0, MoveEndOfLine)
	assert.Equal(t, 9, e.GetCurrentColumn())
}

func TestEditor_MoveWordRightAcrossLines(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "Lorem ipsum dolor.")
	e.SetLine(1, "  sit amet.")
	e.SetCursor(0, 7)

	e.HandleCommand(0, MoveWordRight)
	assert.Equal(t, 11, e.GetCurrentColumn())
	e.HandleCommand(0, MoveWordRight)
	assert.Equal(t, 17, e.GetCurrentColumn())
	e.HandleCommand(0, MoveWordRight)
	assert.Equal(t, 18, e.GetCurrentColumn())

	e.HandleCommand(0, MoveWordRight)
	assert.Equal(t, 1, e.GetCurrentLine())
	assert.Equal(t, 5, e.GetCurrentColumn())
}

func TestEditor_MoveWordLeftAcrossLines(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "Lorem ipsum dolor.")
	e.SetLine(1, "  sit amet.")
	e.SetCursor(1, 7)

	e.HandleCommand(0, MoveWordLeft)
	assert.Equal(t, 6, e.GetCurrentColumn())
	e.HandleCommand(0, MoveWordLeft)
	assert.Equal(t, 2, e.GetCurrentColumn())
	e.HandleCommand(0, MoveWordLeft)
	assert.Equal(t, 0, e.GetCurrentColumn())

	e.HandleCommand(0, MoveWordLeft)
	assert.Equal(t, 0, e.GetCurrentLine())
	assert.Equal(t, 12, e.GetCurrentColumn())
}

func TestEditor_MoveBeginningOfDocumentSkipsProtectedLines(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(0, "FROM: me", 1000, false)
	e.SetLineFull(1, "TO: them", 1000, false)
	e.SetLineFull(2, "Subject: hi.", 9, false)
	e.SetLine(3, "")
	e.SetLine(4, "body")
	e.SetCursor(4, 2)

	e.HandleCommand(0, MoveBeginningOfDocument)
	assert.Equal(t, 2, e.GetCurrentLine())
	assert.Equal(t, 9, e.GetCurrentColumn())
}

func TestEditor_MoveBeginningOfDocumentRuneAware(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(0, "¡¢£", 4, false)
	e.SetLine(1, "hi")
	e.SetCursor(1, 1)

	e.HandleCommand(0, MoveBeginningOfDocument)
	assert.Equal(t, 1, e.GetCurrentLine())
	assert.Equal(t, 0, e.GetCurrentColumn())
}

func TestEditor_DeleteCharacterProtected(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(0, "hi: there", 4, false)
	e.SetCursor(0, 2)

	e.HandleCommand(0, DeleteCharacter)
	assert.Equal(t, "hi: there", e.GetLineText(0))
}

func TestEditor_DeleteCharacterBackwardProtectedMovesOnly(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(0, "hi: there", 4, false)
	e.SetCursor(0, 2)

	e.HandleCommand(0, DeleteCharacterBackward)
	assert.Equal(t, "hi: there", e.GetLineText(0))
	assert.Equal(t, 1, e.GetCurrentColumn())
}

func TestEditor_DeleteEndOfLineProtected(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(0, "hi: there", 4, false)
	e.SetCursor(0, 2)

	e.HandleCommand(0, DeleteEndOfLine)
	assert.Equal(t, "hi: ", e.GetLineText(0))
	assert.Equal(t, 4, e.GetCurrentColumn())
}

func TestEditor_DeleteEndOfLineNormal(t *testing.T) {
	e := NewEditor()
	e.SetLine(1, "there")
	e.SetCursor(1, 4)

	e.HandleCommand(0, DeleteEndOfLine)
	assert.Equal(t, "ther", e.GetLineText(1))
}

func TestEditor_DeleteLineNormalMovesToNextLineStart(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "one")
	e.SetLine(1, "two")
	e.SetLine(2, "three")
	e.SetCursor(1, 2)

	e.HandleCommand(0, DeleteLine)
	assert.Equal(t, 2, e.GetNumLines())
	assert.Equal(t, "three", e.GetLineText(1))
	assert.Equal(t, 1, e.GetCurrentLine())
	assert.Equal(t, 0, e.GetCurrentColumn())
}

func TestEditor_DeleteLineProtectedTruncatesInstead(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(1, "two: half", 4, false)
	e.SetCursor(1, 2)

	e.HandleCommand(0, DeleteLine)
	assert.Equal(t, "two:", e.GetLineText(1))
	assert.Equal(t, 4, e.GetCurrentColumn())
}

func TestEditor_DeleteWordBackwardForward(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "  sit amet.")
	e.SetCursor(0, 2)
	e.HandleCommand(0, DeleteWordBackward)
	assert.Equal(t, "sit amet.", e.GetLineText(0))
	assert.Equal(t, 0, e.GetCurrentColumn())

	e.SetLine(0, "  sit amet.")
	e.SetCursor(0, 4)
	e.HandleCommand(0, DeleteWordBackward)
	assert.Equal(t, "  t amet.", e.GetLineText(0))
	assert.Equal(t, 2, e.GetCurrentColumn())

	e.SetLine(0, "  sit amet.")
	e.SetCursor(0, 4)
	e.HandleCommand(0, DeleteWordForward)
	assert.Equal(t, "  si amet.", e.GetLineText(0))
	assert.Equal(t, 4, e.GetCurrentColumn())
}

func TestEditor_TransposeCharacters(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "transpose")
	e.SetCursor(0, 5)

	e.HandleCommand(0, TransposeCharacters)
	assert.Equal(t, "tranpsose", e.GetLineText(0))
	assert.Equal(t, 6, e.GetCurrentColumn())
}

func TestEditor_ToggleCommandsAreUnhandled(t *testing.T) {
	e := NewEditor()
	assert.False(t, e.HandleCommand(0, ToggleInsert))
	assert.False(t, e.HandleCommand(0, ToggleWrap))
	assert.True(t, e.HandleCommand(0, Null))
}

func TestEditor_InsertTabAlignsUnderPreviousWord(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "id#   name")
	e.SetLine(1, "35x")
	e.SetCursor(1, 2)

	e.HandleCommand(0, InsertTab)
	assert.Equal(t, "35    x", e.GetLineText(1))
	assert.Equal(t, 6, e.GetCurrentColumn())
}

func TestEditor_InsertTabFallsBackToTabStop(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "id#")
	e.SetLine(1, "35")
	e.SetCursor(1, 2)

	e.HandleCommand(0, InsertTab)
	assert.Equal(t, 8, e.GetCurrentColumn())
}

func TestEditor_InsertTabNoPreviousLine(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "35")
	e.SetCursor(0, 2)

	e.HandleCommand(0, InsertTab)
	assert.Equal(t, 8, e.GetCurrentColumn())
}

func TestEditor_InsertTabProtectedClampsToProtectUntil(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(0, "field: value", 6, false)
	e.SetCursor(0, 3)

	e.HandleCommand(0, InsertTab)
	assert.Equal(t, 6, e.GetCurrentColumn())
}

func TestEditor_InsertNewlineSplitsLine(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "one")
	e.SetLine(1, "two")
	e.SetCursor(0, 7)

	e.HandleCommand(AllowCursorAfterEnd, InsertNewline)
	assert.Equal(t, 3, e.GetNumLines())
	assert.Equal(t, "one", e.GetLineText(0))
	assert.Equal(t, "", e.GetLineText(1))
	assert.Equal(t, "two", e.GetLineText(2))
	assert.Equal(t, 1, e.GetCurrentLine())
	assert.Equal(t, 0, e.GetCurrentColumn())
}

func TestEditor_HandleInsertNewlineFallsBackToSpaceWhenBothSidesProtected(t *testing.T) {
	e := NewEditor()
	e.SetLineFull(0, "From: ", 6, false)
	e.SetLineFull(1, "To: ", 4, false)
	e.SetCursor(0, 6)

	e.HandleInsert(0, "one\ntwo")
	assert.Equal(t, "From: one two", e.GetLineText(0))
	assert.Equal(t, 13, e.GetCurrentColumn())
}

func TestEditor_HandleInsertOverwrite(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "some text")
	e.SetCursor(0, 5)

	e.HandleInsert(Overwrite, "n")
	assert.Equal(t, "some next", e.GetLineText(0))
	assert.Equal(t, 6, e.GetCurrentColumn())
}

func TestEditor_HandleInsertRespectsLengthLimit(t *testing.T) {
	e := NewEditor()
	e.SetLengthLimit(12)
	e.SetLine(0, "some text")
	e.SetCursor(0, 5)

	e.HandleInsert(0, "more ")
	assert.Equal(t, "some mortext", e.GetLineText(0))
	assert.Equal(t, 8, e.GetCurrentColumn())
}

func TestEditor_HandleInsertWordWraps(t *testing.T) {
	e := NewEditor()
	e.SetLengthLimit(10)
	e.SetLine(0, "")
	e.SetCursor(0, 0)

	e.HandleInsert(WordWrap, "hello there world")
	assert.LessOrEqual(t, len([]rune(e.GetLineText(0))), 10)
	assert.Greater(t, e.GetNumLines(), 1)
}

func TestEditor_InsertDeleteLineAPI(t *testing.T) {
	e := NewEditor()
	e.SetLine(0, "a")
	e.SetLine(1, "b")
	e.SetLine(2, "c")

	e.InsertLine(1, 2)
	assert.Equal(t, 5, e.GetNumLines())
	assert.Equal(t, "a", e.GetLineText(0))
	assert.Equal(t, "", e.GetLineText(1))
	assert.Equal(t, "", e.GetLineText(2))
	assert.Equal(t, "b", e.GetLineText(3))

	e.DeleteLine(1, 2)
	assert.Equal(t, 3, e.GetNumLines())
	assert.Equal(t, "b", e.GetLineText(1))
}

func TestEditor_OnChangeFiresForSetLine(t *testing.T) {
	e := NewEditor()
	var gotFirst, gotLast int
	calls := 0
	e.OnChange(func(first, last int) {
		calls++
		gotFirst, gotLast = first, last
	})

	e.SetLine(0, "hi")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, gotFirst)
	assert.Equal(t, 0, gotLast)
}
