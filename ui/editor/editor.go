package editor

// line is one row of text: its editable content, the column count of a
// non-editable prefix (0 if none), and whether it was produced by
// word-wrapping the row above it.
type line struct {
	text            []rune
	protectUntil    int
	hasContinuation bool
}

// notifier tracks the minimum/maximum line touched by a single operation
// so Editor can raise one coalesced change notification instead of one
// per mutation. last == Unlimited means "through the end of the document"
// (an insertion or deletion shifted everything after first).
type notifier struct {
	first, last int
}

func (n *notifier) modifyLine(line int) {
	if line < n.first {
		n.first = line
	}
	if line > n.last {
		n.last = line
	}
}

func (n *notifier) modifyEnd(line int) {
	if line < n.first {
		n.first = line
	}
	n.last = Unlimited
}

// Editor is a multi-line text buffer edited through Command values and
// inserted text, with per-line protected prefixes and optional
// word-wrap — the model behind a message composer or command-line field.
type Editor struct {
	lines []*line

	currentLine   int
	currentColumn int

	lengthLimit int
	lineLimit   int
	minLine     int
	maxLine     int

	listeners []func(first, last int)
}

// NewEditor returns an empty editor with no length or line limits.
func NewEditor() *Editor {
	return &Editor{
		lengthLimit: Unlimited,
		lineLimit:   Unlimited,
		minLine:     0,
		maxLine:     Unlimited,
	}
}

// OnChange registers fn to be called after every mutation with the
// inclusive range of lines touched; last may be Unlimited.
func (e *Editor) OnChange(fn func(first, last int)) {
	e.listeners = append(e.listeners, fn)
}

func (e *Editor) emitChange(first, last int) {
	for _, fn := range e.listeners {
		fn(first, last)
	}
}

func (e *Editor) start() notifier { return notifier{e.currentLine, e.currentLine} }

func (e *Editor) finish(n notifier) bool {
	n.modifyLine(e.currentLine)
	e.emitChange(n.first, n.last)
	return true
}

// SetLengthLimit caps the column count any line's editable text may reach.
func (e *Editor) SetLengthLimit(limit int) { e.lengthLimit = limit }

// SetLineLimit caps the number of lines the document may hold.
func (e *Editor) SetLineLimit(limit int) {
	e.lineLimit = limit
	e.trimLines()
}

// SetUserLineLimit caps which lines MoveLineDown/MoveEndOfDocument may
// reach, independent of the hard LineLimit.
func (e *Editor) SetUserLineLimit(limit int) { e.maxLine = limit }

func (e *Editor) GetLengthLimit() int { return e.lengthLimit }
func (e *Editor) GetLineLimit() int   { return e.lineLimit }

// GetNumLines returns the number of lines currently allocated.
func (e *Editor) GetNumLines() int { return len(e.lines) }

func (e *Editor) GetCurrentLine() int   { return e.currentLine }
func (e *Editor) GetCurrentColumn() int { return e.currentColumn }

// SetCursor moves the cursor, raising one change notification if it
// actually moved.
func (e *Editor) SetCursor(lineIdx, column int) {
	if lineIdx == e.currentLine && column == e.currentColumn {
		return
	}
	n := e.start()
	e.currentLine = lineIdx
	e.currentColumn = column
	e.finish(n)
}

// SetLine replaces a line's editable text with no protected prefix.
func (e *Editor) SetLine(lineIdx int, text string) {
	e.SetLineFull(lineIdx, text, 0, false)
}

// SetLineFull replaces a line's text, protected-prefix length, and
// continuation flag, growing the document with empty lines if needed.
func (e *Editor) SetLineFull(lineIdx int, text string, protectUntil int, hasContinuation bool) {
	first := len(e.lines)
	ln := e.getLine(lineIdx)
	ln.text = []rune(text)
	ln.protectUntil = protectUntil
	ln.hasContinuation = hasContinuation
	if first <= lineIdx {
		e.emitChange(first, lineIdx)
	} else {
		e.emitChange(lineIdx, lineIdx)
	}
}

// GetLineText returns a line's editable text, or "" if the line does not
// exist. It never grows the document.
func (e *Editor) GetLineText(lineIdx int) string {
	if lineIdx < 0 || lineIdx >= len(e.lines) {
		return ""
	}
	return string(e.lines[lineIdx].text)
}

// GetRange returns the text spanning [firstLine:firstColumn,
// lastLine:lastColumn), lines joined by '\n'. Returns "" if firstLine is
// after lastLine.
func (e *Editor) GetRange(firstLine, firstColumn, lastLine, lastColumn int) string {
	if firstLine > lastLine {
		return ""
	}
	result := []rune(e.GetLineText(firstLine))
	if firstLine == lastLine {
		if lastColumn > len(result) {
			lastColumn = len(result)
		}
		result = result[:lastColumn]
		if firstColumn > len(result) {
			firstColumn = len(result)
		}
		return string(result[firstColumn:])
	}

	if firstColumn > len(result) {
		firstColumn = len(result)
	}
	result = result[firstColumn:]

	out := append([]rune{}, result...)
	for i := firstLine + 1; i < lastLine; i++ {
		out = append(out, '\n')
		out = append(out, []rune(e.GetLineText(i))...)
	}
	out = append(out, '\n')
	if lastColumn != 0 {
		last := []rune(e.GetLineText(lastLine))
		if lastColumn > len(last) {
			lastColumn = len(last)
		}
		out = append(out, last[:lastColumn]...)
	}
	return string(out)
}

// InsertLine inserts numLines empty lines before beforeLine.
func (e *Editor) InsertLine(beforeLine, numLines int) {
	if numLines <= 0 {
		return
	}
	n := e.start()
	for len(e.lines) < beforeLine {
		e.insertLineAt(&n, len(e.lines), nil, false)
	}
	for i := 0; i < numLines; i++ {
		e.insertLineAt(&n, beforeLine, nil, false)
	}
	if e.currentLine >= beforeLine {
		e.currentLine += numLines
	}
	e.finish(n)
}

// DeleteLine removes up to numLines lines starting at line.
func (e *Editor) DeleteLine(lineIdx, numLines int) {
	if numLines <= 0 {
		return
	}
	n := e.start()
	for len(e.lines) > lineIdx && numLines > 0 {
		e.deleteLineAt(&n, lineIdx)
		if e.currentLine > lineIdx {
			e.currentLine--
		}
		numLines--
	}
	e.finish(n)
}

// HandleCommand applies a semantic editing command and reports whether it
// was handled. ToggleInsert and ToggleWrap are left for the caller to
// interpret (they flip external UI state, not the buffer) and return
// false here.
func (e *Editor) HandleCommand(flags Flags, c Command) bool {
	switch c {
	case MoveLineUp:
		if e.currentLine > e.minLine {
			e.currentLine--
			e.limitColumn(flags)
			e.emitChange(e.currentLine, e.currentLine+1)
		}
		return true

	case MoveLineDown:
		if e.currentLine < e.lineLimit && e.currentLine < e.maxLine {
			e.currentLine++
			e.getLine(e.currentLine)
			e.limitColumn(flags)
			e.emitChange(e.currentLine-1, e.currentLine)
		}
		return true

	case MoveWordLeft:
		n := e.start()
		if e.currentColumn == 0 && e.currentLine > e.minLine {
			e.currentLine--
			e.currentColumn = e.getLineLength(e.currentLine)
		}
		e.handleSingleLineCommand(flags, c)
		return e.finish(n)

	case MoveWordRight:
		n := e.start()
		if e.currentLine < e.lineLimit && e.currentLine < e.maxLine &&
			e.currentColumn >= e.getLineLength(e.currentLine) {
			e.currentLine++
			e.currentColumn = 0
		}
		e.handleSingleLineCommand(flags, c)
		return e.finish(n)

	case MoveBeginningOfDocument:
		n := e.start()
		e.currentLine = e.skipProtectedLines(e.minLine)
		if e.currentLine < len(e.lines) {
			e.currentColumn = e.lines[e.currentLine].protectUntil
		} else {
			e.currentColumn = 0
		}
		return e.finish(n)

	case MoveEndOfDocument:
		n := e.start()
		if len(e.lines) == 0 {
			e.currentLine = 0
			e.currentColumn = 0
		} else {
			e.currentLine = minInt(e.maxLine, len(e.lines)-1)
			e.currentColumn = e.getLineLength(e.currentLine)
		}
		return e.finish(n)

	case DeleteCharacter, DeleteEndOfLine:
		n := e.start()
		if e.checkDeleteForward(&n) {
			e.wrapLine(&n, e.currentLine)
		} else {
			e.handleSingleLineCommand(flags, c)
		}
		return e.finish(n)

	case DeleteCharacterBackward:
		n := e.start()
		if e.checkDeleteBackward(&n) {
			e.wrapLine(&n, e.currentLine)
		} else {
			e.handleSingleLineCommand(flags, c)
		}
		return e.finish(n)

	case DeleteLine:
		n := e.start()
		if e.currentLine < len(e.lines) && !e.hasProtectedPrefix(e.currentLine) {
			e.deleteLineAt(&n, e.currentLine)
			e.handleSingleLineCommand(flags, MoveBeginningOfLine)
		} else {
			e.handleSingleLineCommand(flags, c)
		}
		return e.finish(n)

	case DeleteWordBackward:
		n := e.start()
		e.checkDeleteBackward(&n)
		e.handleSingleLineCommand(flags, c)
		e.wrapLine(&n, e.currentLine)
		return e.finish(n)

	case DeleteWordForward:
		n := e.start()
		e.checkDeleteForward(&n)
		e.handleSingleLineCommand(flags, c)
		e.wrapLine(&n, e.currentLine)
		return e.finish(n)

	case InsertTab:
		n := e.start()
		if !e.isProtectedLine(e.currentLine) {
			e.handleInsertTab(&n, flags)
		}
		return e.finish(n)

	case InsertNewline:
		n := e.start()
		e.insertNewlineInternal(&n)
		return e.finish(n)

	case InsertNewlineAbove:
		n := e.start()
		if !e.hasProtectedPrefix(e.currentLine) || (e.currentLine > e.minLine && !e.hasProtectedPrefix(e.currentLine-1)) {
			e.insertLineAt(&n, e.currentLine, nil, false)
			e.trimLines()
		}
		return e.finish(n)
	}

	ok := e.handleSingleLineCommand(flags, c)
	if ok {
		e.emitChange(e.currentLine, e.currentLine)
	}
	return ok
}

// handleSingleLineCommand applies the commands that only ever touch the
// current line. It is the counterpart of the original's free-standing
// single-line command handler, folded into Editor since nothing else in
// this package needs it split out.
func (e *Editor) handleSingleLineCommand(flags Flags, c Command) bool {
	ln := e.getLine(e.currentLine)
	switch c {
	case MoveCharacterLeft:
		if e.currentColumn > ln.protectUntil {
			e.currentColumn--
		}
	case MoveCharacterRight:
		limit := e.lengthLimit
		if !flags.Has(AllowCursorAfterEnd) && len(ln.text) < limit {
			limit = len(ln.text)
		}
		if e.currentColumn < limit {
			e.currentColumn++
		}
	case MoveWordLeft:
		target := moveWordLeft(ln.text, e.currentColumn)
		if target < ln.protectUntil {
			target = ln.protectUntil
		}
		e.currentColumn = target
	case MoveWordRight:
		e.currentColumn = moveWordRight(ln.text, e.currentColumn)
	case MoveBeginningOfLine:
		if e.currentColumn != ln.protectUntil && ln.protectUntil > 0 {
			e.currentColumn = ln.protectUntil
		} else {
			e.currentColumn = 0
		}
	case MoveEndOfLine:
		e.currentColumn = len(ln.text)
	case DeleteCharacter:
		ln.text = deleteCharacterForward(ln.text, e.currentColumn, ln.protectUntil)
	case DeleteCharacterBackward:
		ln.text, e.currentColumn = deleteCharacterBackward(ln.text, e.currentColumn, ln.protectUntil)
	case DeleteLine:
		if ln.protectUntil < len(ln.text) {
			ln.text = ln.text[:ln.protectUntil]
		}
		e.currentColumn = ln.protectUntil
	case DeleteEndOfLine:
		ln.text, e.currentColumn = deleteEndOfLine(ln.text, e.currentColumn, ln.protectUntil)
	case DeleteWordBackward:
		target := moveWordLeft(ln.text, e.currentColumn)
		if target < ln.protectUntil {
			target = ln.protectUntil
		}
		if target < e.currentColumn {
			ln.text = append(ln.text[:target:target], ln.text[e.currentColumn:]...)
		}
		e.currentColumn = target
	case DeleteWordForward:
		target := moveWordRight(ln.text, e.currentColumn)
		if e.currentColumn < target {
			ln.text = append(ln.text[:e.currentColumn:e.currentColumn], ln.text[target:]...)
		}
	case TransposeCharacters:
		ln.text, e.currentColumn = transposeCharacters(ln.text, e.currentColumn)
	case Null:
		// deliberate no-op, still handled
	default:
		return false
	}
	if len(ln.text) == 0 {
		ln.hasContinuation = false
	}
	return true
}

// HandleInsert types text into the buffer at the cursor, honoring Overwrite
// and WordWrap. Embedded newlines split into separate lines unless the
// split point is protected on both sides, in which case a literal space
// is substituted instead.
func (e *Editor) HandleInsert(flags Flags, text string) {
	n := e.start()
	runes := []rune(text)
	pos := 0
	for {
		idx := -1
		for i := pos; i < len(runes); i++ {
			if runes[i] == '\n' {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		e.insertText(flags, &n, string(runes[pos:idx]))
		if !e.insertNewlineInternal(&n) {
			e.insertText(flags, &n, " ")
		}
		pos = idx + 1
	}
	e.insertText(flags, &n, string(runes[pos:]))
	e.trimLines()
	e.finish(n)
}

func (e *Editor) insertText(flags Flags, n *notifier, text string) {
	if text == "" {
		return
	}
	ln := e.getLine(e.currentLine)
	n.modifyLine(e.currentLine)
	if flags.Has(WordWrap) {
		ln.text, e.currentColumn = insertTextInto(ln.text, e.currentColumn, ln.protectUntil, flags, []rune(text), Unlimited)
		e.wrapLine(n, e.currentLine)
	} else {
		ln.text, e.currentColumn = insertTextInto(ln.text, e.currentColumn, ln.protectUntil, flags, []rune(text), e.lengthLimit)
	}
}

// insertTextInto is the pure single-line insert/overwrite primitive:
// clamp to the protected prefix, then either overwrite characters in
// place or splice insert in, both bounded by limit.
func insertTextInto(text []rune, column, protectUntil int, flags Flags, insert []rune, limit int) ([]rune, int) {
	if column < protectUntil {
		column = protectUntil
	}
	if flags.Has(Overwrite) {
		for _, ch := range insert {
			if column >= limit {
				break
			}
			if column < len(text) {
				text[column] = ch
			} else {
				text = append(text, ch)
			}
			column++
		}
		return text, column
	}

	room := limit - len(text)
	if room < 0 {
		room = 0
	}
	if len(insert) > room {
		insert = insert[:room]
	}
	if len(insert) == 0 {
		return text, column
	}
	out := make([]rune, 0, len(text)+len(insert))
	out = append(out, text[:column]...)
	out = append(out, insert...)
	out = append(out, text[column:]...)
	return out, column + len(insert)
}

// handleInsertTab aligns the cursor under the next word on the line
// above, or to the next tab stop if there is no such word or previous
// line.
func (e *Editor) handleInsertTab(n *notifier, flags Flags) {
	ln := e.getLine(e.currentLine)
	if e.currentColumn < ln.protectUntil {
		e.currentColumn = ln.protectUntil
		return
	}

	targetPos := 0
	if e.currentLine > 0 {
		prev := e.getLine(e.currentLine - 1)
		pos := e.currentColumn + 1
		limit := len(prev.text)
		for pos < limit && !isSpace(prev.text[pos]) {
			pos++
		}
		for pos < limit {
			if !isSpace(prev.text[pos]) {
				targetPos = pos
				break
			}
			pos++
		}
	}
	if targetPos == 0 {
		targetPos = (e.currentColumn + (tabSize - 1)) / tabSize * tabSize
	}
	if targetPos > e.lengthLimit {
		targetPos = e.lengthLimit
	}
	if targetPos > e.currentColumn {
		pad := make([]rune, targetPos-e.currentColumn)
		for i := range pad {
			pad[i] = ' '
		}
		e.insertText(flags, n, string(pad))
	}
}

// breakCurrentLine splits the current line at the cursor into two lines.
func (e *Editor) breakCurrentLine(n *notifier) {
	ln := e.getLine(e.currentLine)
	cut := e.currentColumn
	if cut > len(ln.text) {
		cut = len(ln.text)
	}
	carried := append([]rune{}, ln.text[cut:]...)
	e.insertLineAt(n, e.currentLine+1, carried, ln.hasContinuation)
	ln.text = ln.text[:cut]
	ln.hasContinuation = false
	if e.currentLine < e.maxLine {
		e.currentLine++
		e.currentColumn = 0
	}
}

// insertNewlineInternal splits the line at the cursor unless both the
// current and following line have a protected prefix, in which case the
// split is refused.
func (e *Editor) insertNewlineInternal(n *notifier) bool {
	if !e.hasProtectedPrefix(e.currentLine) || !e.hasProtectedPrefix(e.currentLine+1) {
		e.breakCurrentLine(n)
		e.trimLines()
		return true
	}
	return false
}

// checkDeleteForward joins the current line with the next one if the
// cursor sits at or past the end of the current line and neither line's
// join point is protected. Returns whether a join happened.
func (e *Editor) checkDeleteForward(n *notifier) bool {
	cur := e.currentLine
	if cur >= len(e.lines) || e.isProtectedLine(cur) {
		return false
	}
	if e.currentColumn < e.getLineLength(cur) {
		return false
	}
	if cur+1 >= len(e.lines) || e.hasProtectedPrefix(cur+1) {
		return false
	}
	curLine := e.lines[cur]
	nextLine := e.lines[cur+1]
	if spacesNeeded := e.currentColumn - len(curLine.text); spacesNeeded > 0 {
		pad := make([]rune, spacesNeeded)
		for i := range pad {
			pad[i] = ' '
		}
		curLine.text = append(curLine.text, pad...)
	}
	curLine.text = append(curLine.text, nextLine.text...)
	curLine.hasContinuation = nextLine.hasContinuation
	e.deleteLineAt(n, cur+1)
	return true
}

// checkDeleteBackward joins the current line into the previous one if
// the cursor is at column 0 and neither join point is protected. Returns
// whether a join happened.
func (e *Editor) checkDeleteBackward(n *notifier) bool {
	cur := e.currentLine
	if e.currentColumn != 0 || cur >= len(e.lines) || cur <= e.minLine {
		return false
	}
	if e.hasProtectedPrefix(cur) || e.isProtectedLine(cur-1) {
		return false
	}
	curLine := e.lines[cur]
	prevLine := e.lines[cur-1]
	prevLen := len(prevLine.text)
	prevLine.text = append(prevLine.text, curLine.text...)
	e.currentLine = cur - 1
	e.currentColumn = prevLen
	e.deleteLineAt(n, cur)
	return true
}

// wrapLine reflows line and, as a chain reaction, every line after it
// that is now too long, carrying overflow text down to continuation
// lines (creating new ones where the next line isn't already a
// continuation of this one).
func (e *Editor) wrapLine(n *notifier, lineIdx int) {
	for lineIdx < len(e.lines) {
		me := e.lines[lineIdx]
		if len(me.text) <= e.lengthLimit {
			return
		}

		numToKeep := e.lengthLimit
		firstToCarry := e.lengthLimit
		found := false
		for numToKeep > 0 {
			ch := me.text[numToKeep]
			if isSpace(ch) {
				firstToCarry = numToKeep + 1
				found = true
				break
			}
			if numToKeep < e.lengthLimit && isSeparator(ch) {
				numToKeep++
				firstToCarry = numToKeep
				found = true
				break
			}
			numToKeep--
		}
		if !found {
			numToKeep = e.lengthLimit
			firstToCarry = e.lengthLimit
		}

		textToCarry := append([]rune{}, me.text[firstToCarry:]...)
		if me.hasContinuation && !e.hasProtectedPrefix(lineIdx+1) {
			next := e.getLine(lineIdx + 1)
			if len(textToCarry) > 0 {
				last := textToCarry[len(textToCarry)-1]
				if !isSpace(last) && !isSeparator(last) {
					textToCarry = append(textToCarry, ' ')
				}
			}
			next.text = append(append([]rune{}, textToCarry...), next.text...)
			n.modifyLine(lineIdx + 1)
		} else {
			e.insertLineAt(n, lineIdx+1, textToCarry, false)
		}

		me.text = me.text[:numToKeep]
		me.hasContinuation = true
		n.modifyLine(lineIdx)

		if e.currentLine == lineIdx && e.currentColumn >= firstToCarry {
			if e.currentLine < e.maxLine {
				e.currentLine++
				e.currentColumn -= firstToCarry
			} else {
				e.currentColumn = numToKeep
			}
		}
		lineIdx++
	}
}

func (e *Editor) hasProtectedPrefix(lineIdx int) bool {
	return lineIdx < len(e.lines) && e.lines[lineIdx].protectUntil > 0
}

// isProtectedLine reports whether a line is entirely protected: its
// protected-prefix length exceeds its actual text length.
func (e *Editor) isProtectedLine(lineIdx int) bool {
	if lineIdx >= len(e.lines) {
		return false
	}
	ln := e.lines[lineIdx]
	return ln.protectUntil > 0 && ln.protectUntil > len(ln.text)
}

func (e *Editor) skipProtectedLines(startAt int) int {
	for e.isProtectedLine(startAt) {
		startAt++
	}
	return startAt
}

func (e *Editor) trimLines() {
	for len(e.lines) > e.lineLimit {
		e.lines = e.lines[:len(e.lines)-1]
	}
}

func (e *Editor) limitColumn(flags Flags) {
	if !flags.Has(AllowCursorAfterEnd) {
		if ll := e.getLineLength(e.currentLine); e.currentColumn > ll {
			e.currentColumn = ll
		}
	}
}

// getLine returns the line at lineIdx, growing the document with empty
// lines as needed.
func (e *Editor) getLine(lineIdx int) *line {
	for len(e.lines) <= lineIdx {
		e.lines = append(e.lines, &line{})
	}
	return e.lines[lineIdx]
}

func (e *Editor) getLineLength(lineIdx int) int {
	if lineIdx >= 0 && lineIdx < len(e.lines) {
		return len(e.lines[lineIdx].text)
	}
	return 0
}

func (e *Editor) insertLineAt(n *notifier, beforeLine int, text []rune, hasContinuation bool) *line {
	for len(e.lines) < beforeLine {
		e.lines = append(e.lines, &line{})
	}
	newLine := &line{text: text, hasContinuation: hasContinuation}
	e.lines = append(e.lines, nil)
	copy(e.lines[beforeLine+1:], e.lines[beforeLine:])
	e.lines[beforeLine] = newLine
	n.modifyEnd(beforeLine)
	return newLine
}

func (e *Editor) deleteLineAt(n *notifier, lineIdx int) {
	e.lines = append(e.lines[:lineIdx], e.lines[lineIdx+1:]...)
	n.modifyEnd(lineIdx)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
