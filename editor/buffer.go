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
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds reports a buffer mutation at an invalid position.
// Correctly driven callers clamp before mutating, so it marks a
// programming error rather than a user-visible condition.
var ErrOutOfBounds = errors.New("position out of bounds")

// A Buffer holds the text being edited as an ordered sequence of rows.
// It always contains at least one row; an empty document is a single
// empty row.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

func (b *Buffer) RowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

func (b *Buffer) RowText(i int) string {
	if i < 0 || i >= len(b.rows) {
		return ""
	}
	return b.rows[i].String()
}

// returns the text of row after a specified column
func (b *Buffer) TextAfter(row, col int) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	return b.rows[row].TextAfter(col)
}

// Lines returns a copy of the buffer contents, one string per row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

// SetLines replaces the buffer contents wholesale. An empty slice
// leaves the buffer with a single empty row.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		b.rows = []*Row{NewRow("")}
		return
	}
	b.rows = make([]*Row, len(lines))
	for i, line := range lines {
		b.rows[i] = NewRow(line)
	}
}

func (b *Buffer) validate(row, col int) error {
	if row < 0 || row >= len(b.rows) {
		return fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, row, len(b.rows))
	}
	if col < 0 || col > b.rows[row].Length() {
		return fmt.Errorf("%w: col %d of %d", ErrOutOfBounds, col, b.rows[row].Length())
	}
	return nil
}

func (b *Buffer) InsertChar(row, col int, c rune) error {
	if err := b.validate(row, col); err != nil {
		return err
	}
	b.rows[row].InsertChar(col, c)
	return nil
}

// SplitRow splits the row at col into two rows; the text at and after
// col becomes row+1.
func (b *Buffer) SplitRow(row, col int) error {
	if err := b.validate(row, col); err != nil {
		return err
	}
	after := b.rows[row].Split(col)
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = after
	return nil
}

// JoinRow appends row+1 to the end of row, removing the line break
// between them.
func (b *Buffer) JoinRow(row int) error {
	if row < 0 || row+1 >= len(b.rows) {
		return fmt.Errorf("%w: join at row %d of %d", ErrOutOfBounds, row, len(b.rows))
	}
	b.rows[row].Join(b.rows[row+1])
	b.rows = append(b.rows[0:row+1], b.rows[row+2:]...)
	return nil
}

// DeleteChar removes the character at (row, col).
func (b *Buffer) DeleteChar(row, col int) error {
	if row < 0 || row >= len(b.rows) || col < 0 || col >= b.rows[row].Length() {
		return fmt.Errorf("%w: delete at %d,%d", ErrOutOfBounds, row, col)
	}
	b.rows[row].DeleteChar(col)
	return nil
}

func (b *Buffer) String() string {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(row.String())
	}
	return s.String()
}
