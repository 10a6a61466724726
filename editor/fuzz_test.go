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
	"testing"

	"sted/types"
)

// FuzzEditSequence drives the editor with arbitrary sequences of edits
// and moves and checks the session invariants after every step: the
// buffer is never empty, the cursor stays inside it, and after Scroll
// the cursor row stays inside the viewport.
func FuzzEditSequence(f *testing.F) {
	f.Add([]byte("ananas"))
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	f.Add([]byte{1, 1, 1, 2, 2, 2, 3, 3, 3})
	f.Fuzz(func(t *testing.T, script []byte) {
		e := NewEditor()
		e.SetSize(types.Size{Rows: 8, Cols: 16})
		for _, op := range script {
			switch op % 10 {
			case 0:
				e.InsertChar(rune('a' + op%26))
			case 1:
				e.InsertNewline()
			case 2:
				e.DeleteBackward()
			case 3:
				e.DeleteForward()
			case 4:
				e.MoveCursor(types.MoveUp)
			case 5:
				e.MoveCursor(types.MoveDown)
			case 6:
				e.MoveCursor(types.MoveLeft)
			case 7:
				e.MoveCursor(types.MoveRight)
			case 8:
				e.MoveToEndOfLine()
			case 9:
				if op%2 == 0 {
					e.PageDown()
				} else {
					e.PageUp()
				}
			}
			e.Scroll()

			if e.Buffer.RowCount() < 1 {
				t.Fatalf("Buffer became empty after op %d", op)
			}
			if e.Cursor.Row < 0 || e.Cursor.Row >= e.Buffer.RowCount() {
				t.Fatalf("Cursor row %d outside buffer of %d rows", e.Cursor.Row, e.Buffer.RowCount())
			}
			if e.Cursor.Col < 0 || e.Cursor.Col > e.Buffer.RowLength(e.Cursor.Row) {
				t.Fatalf("Cursor col %d outside row of length %d", e.Cursor.Col, e.Buffer.RowLength(e.Cursor.Row))
			}
			if e.Offset.Rows < 0 || e.Cursor.Row < e.Offset.Rows || e.Cursor.Row >= e.Offset.Rows+8 {
				t.Fatalf("Cursor row %d outside viewport at offset %d", e.Cursor.Row, e.Offset.Rows)
			}
			if e.Offset.Cols < 0 || e.Cursor.Col < e.Offset.Cols || e.Cursor.Col >= e.Offset.Cols+16 {
				t.Fatalf("Cursor col %d outside viewport at offset %d", e.Cursor.Col, e.Offset.Cols)
			}
		}
	})
}
