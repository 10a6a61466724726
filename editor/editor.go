//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"sted/types"
)

// The Editor is the session shared by every key handler: the buffer
// being edited plus cursor, scroll offset, filename, dirty flag, and
// the transient status message. All mutation of the buffer goes
// through its methods, which keep the cursor and offset valid and the
// dirty flag current.
type Editor struct {
	Cursor types.Point // cursor position in the buffer
	Offset types.Size  // scroll offset (first visible row and column)
	Buffer *Buffer     // buffer being edited
	size   types.Size  // size of the text viewport
	name   string      // file name, empty for an unsaved new file
	dirty  bool        // unsaved changes exist
	status string      // transient status message
}

func NewEditor() *Editor {
	return &Editor{
		Buffer: NewBuffer(),
		status: "sted | Ctrl+Q: Quit",
	}
}

// session accessors

func (e *Editor) GetCursor() types.Point {
	return e.Cursor
}

// SetCursor clamps the given position into the buffer before applying it.
func (e *Editor) SetCursor(cursor types.Point) {
	cursor.Row = clipToRange(cursor.Row, 0, e.Buffer.RowCount()-1)
	cursor.Col = clipToRange(cursor.Col, 0, e.Buffer.RowLength(cursor.Row))
	e.Cursor = cursor
}

func (e *Editor) SetSize(s types.Size) {
	e.size = s
}

func (e *Editor) Size() types.Size {
	return e.size
}

func (e *Editor) GetFileName() string {
	return e.name
}

func (e *Editor) SetFileName(name string) {
	e.name = name
}

func (e *Editor) IsDirty() bool {
	return e.dirty
}

func (e *Editor) MarkDirty() {
	e.dirty = true
}

func (e *Editor) MarkClean() {
	e.dirty = false
}

func (e *Editor) GetStatus() string {
	return e.status
}

func (e *Editor) SetStatus(message string) {
	e.status = message
}

// Lines returns a snapshot of the buffer contents.
func (e *Editor) Lines() []string {
	return e.Buffer.Lines()
}

// SetLines replaces the buffer wholesale, as the load/save extensions
// do. The cursor is clamped into the new contents.
func (e *Editor) SetLines(lines []string) {
	e.Buffer.SetLines(lines)
	e.SetCursor(e.Cursor)
	e.dirty = true
}

// editing primitives
//
// Each primitive clamps the cursor first, so the buffer mutations
// below cannot fail on any reachable cursor position.

// InsertChar inserts a printable character at the cursor and advances
// it. A newline is treated as InsertNewline.
func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertNewline()
		return
	}
	e.SetCursor(e.Cursor)
	e.Buffer.InsertChar(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
	e.dirty = true
}

// InsertNewline splits the current row at the cursor and moves the
// cursor to the start of the new row.
func (e *Editor) InsertNewline() {
	e.SetCursor(e.Cursor)
	e.Buffer.SplitRow(e.Cursor.Row, e.Cursor.Col)
	e.Cursor.Row++
	e.Cursor.Col = 0
	e.dirty = true
}

// DeleteBackward deletes the character before the cursor, joining the
// current row onto the previous one when the cursor is at column zero.
// At the start of the document it does nothing.
func (e *Editor) DeleteBackward() {
	e.SetCursor(e.Cursor)
	if e.Cursor.Col > 0 {
		e.Buffer.DeleteChar(e.Cursor.Row, e.Cursor.Col-1)
		e.Cursor.Col--
		e.dirty = true
	} else if e.Cursor.Row > 0 {
		joinCol := e.Buffer.RowLength(e.Cursor.Row - 1)
		e.Buffer.JoinRow(e.Cursor.Row - 1)
		e.Cursor.Row--
		e.Cursor.Col = joinCol
		e.dirty = true
	}
}

// DeleteForward deletes the character under the cursor, joining the
// next row onto the current one when the cursor is at end of line. At
// the end of the document it does nothing. The cursor does not move.
func (e *Editor) DeleteForward() {
	e.SetCursor(e.Cursor)
	if e.Cursor.Col < e.Buffer.RowLength(e.Cursor.Row) {
		e.Buffer.DeleteChar(e.Cursor.Row, e.Cursor.Col)
		e.dirty = true
	} else if e.Cursor.Row < e.Buffer.RowCount()-1 {
		e.Buffer.JoinRow(e.Cursor.Row)
		e.dirty = true
	}
}

// cursor movement

// MoveCursor moves one step in the given direction. Left at column
// zero wraps to the end of the previous line and right at end of line
// wraps to the start of the next; neither crosses the document
// boundary. Vertical moves re-clamp the column to the target line.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case types.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.clampColToRow()
		}
	case types.MoveDown:
		if e.Cursor.Row < e.Buffer.RowCount()-1 {
			e.Cursor.Row++
			e.clampColToRow()
		}
	case types.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row)
		}
	case types.MoveRight:
		if e.Cursor.Col < e.Buffer.RowLength(e.Cursor.Row) {
			e.Cursor.Col++
		} else if e.Cursor.Row < e.Buffer.RowCount()-1 {
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	}
}

func (e *Editor) clampColToRow() {
	rowLength := e.Buffer.RowLength(e.Cursor.Row)
	if e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
}

func (e *Editor) MoveToStartOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row)
}

// PageUp moves the cursor and the viewport up by one screen of rows.
func (e *Editor) PageUp() {
	if e.size.Rows <= 0 {
		return
	}
	e.Cursor.Row = clipToRange(e.Cursor.Row-e.size.Rows, 0, e.Buffer.RowCount()-1)
	e.Offset.Rows = clipToRange(e.Offset.Rows-e.size.Rows, 0, e.Offset.Rows)
	e.clampColToRow()
}

// PageDown moves the cursor and the viewport down by one screen of rows.
func (e *Editor) PageDown() {
	if e.size.Rows <= 0 {
		return
	}
	e.Cursor.Row = clipToRange(e.Cursor.Row+e.size.Rows, 0, e.Buffer.RowCount()-1)
	maxOffset := e.Buffer.RowCount() - e.size.Rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	e.Offset.Rows = clipToRange(e.Offset.Rows+e.size.Rows, 0, maxOffset)
	e.clampColToRow()
}

// VisibleLines returns the rows inside the viewport, in order,
// clipped to the buffer length.
func (e *Editor) VisibleLines() []string {
	lines := make([]string, 0, e.size.Rows)
	for i := 0; i < e.size.Rows; i++ {
		row := e.Offset.Rows + i
		if row >= e.Buffer.RowCount() {
			break
		}
		lines = append(lines, e.Buffer.RowText(row))
	}
	return lines
}

// Scroll adjusts the offset by the minimal amount that keeps the
// cursor inside the viewport, on both axes.
func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.size.Rows > 0 && e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if e.Cursor.Col < e.Offset.Cols {
		e.Offset.Cols = e.Cursor.Col
	}
	if e.size.Cols > 0 && e.Cursor.Col-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = e.Cursor.Col - e.size.Cols + 1
	}
}

func clipToRange(i, min, max int) int {
	if max < min {
		max = min
	}
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}
