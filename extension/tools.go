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
package extension

import (
	"sted/commander"
	"sted/editor"
	"sted/types"
)

// Tools is the fixed table of operations the core exposes to
// extensions. Extensions mutate the session only through it; buffer
// content in particular moves wholesale via SetLines rather than by
// reaching into the editor.
type Tools struct {
	editor    *editor.Editor
	commander *commander.Commander
}

func NewTools(e *editor.Editor, c *commander.Commander) *Tools {
	return &Tools{editor: e, commander: c}
}

// BindKey registers a handler for a key code. The last registration
// for a given code wins.
func (t *Tools) BindKey(code types.Key, handler commander.Handler) {
	t.commander.Bind(code, handler)
}

// Prompt collects a line of input; the empty string with ok=false
// means the user cancelled.
func (t *Tools) Prompt(message string) (string, bool) {
	return t.commander.Prompt(message)
}

func (t *Tools) SetStatus(message string) {
	t.editor.SetStatus(message)
}

func (t *Tools) Lines() []string {
	return t.editor.Lines()
}

func (t *Tools) SetLines(lines []string) {
	t.editor.SetLines(lines)
}

func (t *Tools) FileName() string {
	return t.editor.GetFileName()
}

func (t *Tools) SetFileName(name string) {
	t.editor.SetFileName(name)
}

func (t *Tools) MarkDirty() {
	t.editor.MarkDirty()
}

func (t *Tools) MarkClean() {
	t.editor.MarkClean()
}

func (t *Tools) Cursor() types.Point {
	return t.editor.GetCursor()
}

// WriteFile writes the buffer contents to path.
func (t *Tools) WriteFile(path string) error {
	return t.editor.WriteFile(path)
}
