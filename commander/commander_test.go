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
	"testing"

	"sted/editor"
	"sted/types"
)

// scriptedPrompter answers every prompt the same way and records the
// messages it was asked.
type scriptedPrompter struct {
	answer string
	ok     bool
	asked  []string
}

func (p *scriptedPrompter) Prompt(message string) (string, bool) {
	p.asked = append(p.asked, message)
	return p.answer, p.ok
}

func keyEvent(k types.Key) *types.Event {
	return &types.Event{Type: types.EventKey, Key: k}
}

func charEvent(ch rune) *types.Event {
	return &types.Event{Type: types.EventKey, Ch: ch}
}

func typeString(c *Commander, s string) {
	for _, ch := range s {
		c.ProcessEvent(charEvent(ch))
	}
}

func TestPrintableCharactersInsert(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, nil, 8)
	typeString(c, "hi there")
	if text := e.Buffer.RowText(0); text != "hi there" {
		t.Errorf("Unexpected buffer text: '%s'", text)
	}
	if !e.IsDirty() {
		t.Errorf("Typing should mark the session dirty")
	}
}

func TestPrintableInsertionIsNotRebindable(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, nil, 8)
	called := false
	c.Bind(types.Key('a'), func(*editor.Editor) error {
		called = true
		return nil
	})
	c.ProcessEvent(charEvent('a'))
	if called {
		t.Errorf("A binding must not intercept printable input")
	}
	if text := e.Buffer.RowText(0); text != "a" {
		t.Errorf("Printable input should insert, got '%s'", text)
	}
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, nil, 8)
	if err := c.ProcessEvent(keyEvent(types.KeyUnsupported)); err != nil {
		t.Errorf("Unknown key should be a no-op, got %+v", err)
	}
	if e.IsDirty() {
		t.Errorf("Unknown key should not change the session")
	}
}

func TestBuiltinNavigation(t *testing.T) {
	e := editor.NewEditor()
	e.Buffer.SetLines([]string{"abc", "de"})
	c := NewCommander(e, nil, 8)
	c.ProcessEvent(keyEvent(types.KeyArrowDown))
	c.ProcessEvent(keyEvent(types.KeyEnd))
	if cursor := e.GetCursor(); cursor.Row != 1 || cursor.Col != 2 {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
	c.ProcessEvent(keyEvent(types.KeyHome))
	c.ProcessEvent(keyEvent(types.KeyArrowUp))
	if cursor := e.GetCursor(); cursor.Row != 0 || cursor.Col != 0 {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
}

func TestEnterBackspaceDelete(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, nil, 8)
	typeString(c, "ab")
	c.ProcessEvent(keyEvent(types.KeyEnter))
	typeString(c, "cd")
	if text := e.Buffer.Lines(); len(text) != 2 || text[0] != "ab" || text[1] != "cd" {
		t.Errorf("Unexpected lines: %v", text)
	}
	c.ProcessEvent(keyEvent(types.KeyHome))
	c.ProcessEvent(keyEvent(types.KeyBackspace))
	if text := e.Buffer.RowText(0); text != "abcd" {
		t.Errorf("Unexpected line after join: '%s'", text)
	}
	c.ProcessEvent(keyEvent(types.KeyDelete))
	if text := e.Buffer.RowText(0); text != "abd" {
		t.Errorf("Unexpected line after delete: '%s'", text)
	}
}

func TestOverrideShadowsBuiltin(t *testing.T) {
	e := editor.NewEditor()
	e.Buffer.SetLines([]string{"ab"})
	c := NewCommander(e, nil, 8)
	c.Bind(types.KeyDelete, func(e *editor.Editor) error {
		e.SetStatus("intercepted")
		return nil
	})
	c.ProcessEvent(keyEvent(types.KeyDelete))
	if text := e.Buffer.RowText(0); text != "ab" {
		t.Errorf("Built-in delete ran despite the override: '%s'", text)
	}
	if e.GetStatus() != "intercepted" {
		t.Errorf("Override handler did not run, status '%s'", e.GetStatus())
	}
}

func TestLastRegistrationWins(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, nil, 8)
	c.Bind(types.KeyCtrlS, func(e *editor.Editor) error {
		e.SetStatus("first")
		return nil
	})
	c.Bind(types.KeyCtrlS, func(e *editor.Editor) error {
		e.SetStatus("second")
		return nil
	})
	c.ProcessEvent(keyEvent(types.KeyCtrlS))
	if e.GetStatus() != "second" {
		t.Errorf("Expected the second registration to win, status '%s'", e.GetStatus())
	}
}

func TestTabInsertsToTabStop(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, nil, 4)
	typeString(c, "ab")
	c.ProcessEvent(keyEvent(types.KeyTab))
	if text := e.Buffer.RowText(0); text != "ab  " {
		t.Errorf("Unexpected line after tab: %q", text)
	}
	if cursor := e.GetCursor(); cursor.Col != 4 {
		t.Errorf("Unexpected cursor col after tab: %d", cursor.Col)
	}
}

func TestQuitWhenClean(t *testing.T) {
	e := editor.NewEditor()
	p := &scriptedPrompter{}
	c := NewCommander(e, p, 8)
	c.ProcessEvent(keyEvent(types.KeyCtrlQ))
	if c.IsRunning() {
		t.Errorf("Clean session should quit immediately")
	}
	if len(p.asked) != 0 {
		t.Errorf("Clean quit should not prompt, asked %v", p.asked)
	}
}

func TestQuitWhenDirtyAsksConfirmation(t *testing.T) {
	e := editor.NewEditor()
	p := &scriptedPrompter{answer: "y", ok: true}
	c := NewCommander(e, p, 8)
	typeString(c, "x")
	c.ProcessEvent(keyEvent(types.KeyCtrlQ))
	if len(p.asked) != 1 {
		t.Fatalf("Dirty quit should prompt once, asked %v", p.asked)
	}
	if c.IsRunning() {
		t.Errorf("Affirmative answer should quit")
	}
}

func TestQuitCancelled(t *testing.T) {
	e := editor.NewEditor()
	p := &scriptedPrompter{answer: "n", ok: true}
	c := NewCommander(e, p, 8)
	typeString(c, "x")
	c.ProcessEvent(keyEvent(types.KeyCtrlQ))
	if !c.IsRunning() {
		t.Errorf("Negative answer should cancel the quit")
	}
	if e.GetStatus() != "Quit cancelled." {
		t.Errorf("Unexpected status: '%s'", e.GetStatus())
	}

	// an aborted prompt cancels too
	p.answer, p.ok = "", false
	c.ProcessEvent(keyEvent(types.KeyCtrlQ))
	if !c.IsRunning() {
		t.Errorf("Cancelled prompt should cancel the quit")
	}
}

func TestCtrlCQuitsLikeCtrlQ(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, nil, 8)
	c.ProcessEvent(keyEvent(types.KeyCtrlC))
	if c.IsRunning() {
		t.Errorf("Ctrl+C on a clean session should quit")
	}
}

func TestResizeEventIsHarmless(t *testing.T) {
	e := editor.NewEditor()
	c := NewCommander(e, nil, 8)
	if err := c.ProcessEvent(&types.Event{Type: types.EventResize}); err != nil {
		t.Errorf("Resize should be a no-op, got %+v", err)
	}
}
