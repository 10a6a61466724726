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
package commander

import (
	"strings"

	"sted/editor"
	"sted/types"
)

// A Handler reacts to one keystroke. Handlers run to completion before
// the next event is read; the editor passed in is the only shared state.
type Handler func(e *editor.Editor) error

// The Commander converts key events into editor operations. Each event
// is a single dispatch: bindings registered by extensions are consulted
// before the built-in table, unknown keys are ignored, and printable
// runes always insert and cannot be rebound.
type Commander struct {
	editor    *editor.Editor
	prompter  types.Prompter
	mode      int
	tabWidth  int
	builtins  map[types.Key]Handler
	overrides map[types.Key]Handler
}

func NewCommander(e *editor.Editor, p types.Prompter, tabWidth int) *Commander {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	c := &Commander{
		editor:    e,
		prompter:  p,
		mode:      types.ModeEditing,
		tabWidth:  tabWidth,
		overrides: make(map[types.Key]Handler),
	}
	c.builtins = map[types.Key]Handler{
		types.KeyArrowUp:    move(types.MoveUp),
		types.KeyArrowDown:  move(types.MoveDown),
		types.KeyArrowLeft:  move(types.MoveLeft),
		types.KeyArrowRight: move(types.MoveRight),
		types.KeyHome: func(e *editor.Editor) error {
			e.MoveToStartOfLine()
			return nil
		},
		types.KeyEnd: func(e *editor.Editor) error {
			e.MoveToEndOfLine()
			return nil
		},
		types.KeyPgup: func(e *editor.Editor) error {
			e.PageUp()
			return nil
		},
		types.KeyPgdn: func(e *editor.Editor) error {
			e.PageDown()
			return nil
		},
		types.KeyEnter: func(e *editor.Editor) error {
			e.InsertNewline()
			return nil
		},
		types.KeyBackspace: func(e *editor.Editor) error {
			e.DeleteBackward()
			return nil
		},
		types.KeyDelete: func(e *editor.Editor) error {
			e.DeleteForward()
			return nil
		},
		types.KeyTab:   c.insertTab,
		types.KeyCtrlQ: c.quit,
		types.KeyCtrlC: c.quit,
	}
	return c
}

func move(direction int) Handler {
	return func(e *editor.Editor) error {
		e.MoveCursor(direction)
		return nil
	}
}

// IsRunning reports whether the event loop should keep going.
func (c *Commander) IsRunning() bool {
	return c.mode != types.ModeQuitting
}

// Bind registers a handler for a key code, replacing any existing
// binding for that code. Bindings registered here shadow the built-in
// table.
func (c *Commander) Bind(code types.Key, handler Handler) {
	if handler == nil {
		return
	}
	c.overrides[code] = handler
}

// Prompt suspends dispatch and collects a line of input on the message
// bar. It returns ok=false when the user cancels or no prompter is
// attached.
func (c *Commander) Prompt(message string) (string, bool) {
	if c.prompter == nil {
		return "", false
	}
	return c.prompter.Prompt(message)
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		return c.ProcessKey(event)
	case types.EventResize:
		// the screen re-reads its size on every render
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *types.Event) error {
	if event.Ch != 0 {
		c.editor.InsertChar(event.Ch)
		return nil
	}
	if handler, ok := c.overrides[event.Key]; ok {
		return handler(c.editor)
	}
	if handler, ok := c.builtins[event.Key]; ok {
		return handler(c.editor)
	}
	return nil
}

func (c *Commander) insertTab(e *editor.Editor) error {
	e.InsertChar(' ')
	for e.GetCursor().Col%c.tabWidth != 0 {
		e.InsertChar(' ')
	}
	return nil
}

func (c *Commander) quit(e *editor.Editor) error {
	if !e.IsDirty() {
		c.mode = types.ModeQuitting
		return nil
	}
	answer, ok := c.Prompt("Unsaved changes! Quit anyway? (y/N): ")
	if ok && affirmative(answer) {
		c.mode = types.ModeQuitting
	} else {
		e.SetStatus("Quit cancelled.")
	}
	return nil
}

func affirmative(answer string) bool {
	answer = strings.TrimSpace(strings.ToLower(answer))
	return strings.HasPrefix(answer, "y")
}
