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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"sted/commander"
	"sted/editor"
	"sted/types"
)

// The Screen draws the state of an Editor on the terminal and turns
// termbox events into editor events. The bottom two rows are reserved:
// an inverted info bar and a message bar that doubles as the prompt
// line.
type Screen struct {
	size types.Size
}

func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e *editor.Editor, c *commander.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()

	editSize := s.size
	editSize.Rows -= 2
	e.SetSize(editSize)
	e.Scroll()

	offset := e.Offset
	for i, line := range e.VisibleLines() {
		s.renderRow(line, i, offset.Cols, editSize.Cols)
	}
	s.renderInfoBar(e)
	s.renderMessageBar(e)

	cursorX := displayWidth(e.Buffer.RowText(e.Cursor.Row), offset.Cols, e.Cursor.Col)
	termbox.SetCursor(cursorX, e.Cursor.Row-offset.Rows)
	termbox.Flush()
}

// renderRow draws one buffer row, skipping the horizontally scrolled
// prefix and clipping to the screen width. Wide runes advance by their
// display width.
func (s *Screen) renderRow(text string, screenRow, skip, width int) {
	x := 0
	for i, ch := range []rune(text) {
		if i < skip {
			continue
		}
		if x >= width {
			break
		}
		termbox.SetCell(x, screenRow, ch, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
}

// displayWidth returns the screen column of the cursor: the width of
// the visible part of the row before col.
func displayWidth(text string, skip, col int) int {
	x := 0
	for i, ch := range []rune(text) {
		if i >= col {
			break
		}
		if i < skip {
			continue
		}
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (s *Screen) renderInfoBar(e *editor.Editor) {
	name := e.GetFileName()
	if name == "" {
		name = "[no name]"
	}
	text := " sted - " + name
	if e.IsDirty() {
		text += " *"
	}
	finalText := fmt.Sprintf(" %d/%d ", e.Cursor.Row+1, e.Buffer.RowCount())
	for len(text) < s.size.Cols-len(finalText) {
		text += " "
	}
	text += finalText
	writeLine(text, s.size.Rows-2, s.size.Cols, true)
}

func (s *Screen) renderMessageBar(e *editor.Editor) {
	writeLine(e.GetStatus(), s.size.Rows-1, s.size.Cols, false)
}

func writeLine(text string, row, width int, inverted bool) {
	fg, bg := termbox.ColorDefault, termbox.ColorDefault
	if inverted {
		fg, bg = termbox.ColorBlack, termbox.ColorWhite
	}
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		termbox.SetCell(x, row, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
	if inverted {
		for ; x < width; x++ {
			termbox.SetCell(x, row, ' ', fg, bg)
		}
	}
}

// Prompt draws message on the message bar and collects a line of input
// in place, blocking the event loop until Enter or a cancel key. It
// satisfies types.Prompter.
func (s *Screen) Prompt(message string) (string, bool) {
	input := []rune{}
	for {
		s.size.Cols, s.size.Rows = termbox.Size()
		row := s.size.Rows - 1
		line := message + string(input)
		writeLine(line, row, s.size.Cols, true)
		termbox.SetCursor(displayWidth(line, 0, len([]rune(line))), row)
		termbox.Flush()

		event := termbox.PollEvent()
		if event.Type != termbox.EventKey {
			continue
		}
		switch event.Key {
		case termbox.KeyEnter:
			return string(input), true
		case termbox.KeyEsc, termbox.KeyCtrlC:
			return "", false
		case termbox.KeyBackspace, termbox.KeyBackspace2:
			if len(input) > 0 {
				input = input[0 : len(input)-1]
			}
		case termbox.KeySpace:
			input = append(input, ' ')
		default:
			if event.Ch != 0 {
				input = append(input, event.Ch)
			}
		}
	}
}

// GetNextEvent blocks for the next terminal event.
func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		return &types.Event{Type: types.EventResize}
	case termbox.EventKey:
		if event.Ch != 0 {
			return &types.Event{Type: types.EventKey, Ch: event.Ch}
		}
		if event.Key == termbox.KeySpace {
			return &types.Event{Type: types.EventKey, Ch: ' '}
		}
		return &types.Event{Type: types.EventKey, Key: key(event.Key)}
	default:
		return &types.Event{Type: types.EventKey, Key: types.KeyUnsupported}
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyTab:
		return types.KeyTab
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return types.KeyBackspace
	case termbox.KeyCtrlC:
		return types.KeyCtrlC
	case termbox.KeyCtrlE:
		return types.KeyCtrlE
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	default:
		// other control keys share their ASCII codes with types.Key
		if k > 0 && k < 0x20 {
			return types.Key(k)
		}
		return types.KeyUnsupported
	}
}
