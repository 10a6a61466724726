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
	"bufio"
	"fmt"
	"os"
	"strings"

	"sted/types"
)

// Load reads path into the buffer. A missing file becomes a new empty
// file with the name set; a directory or an unreadable file leaves an
// unnamed empty buffer behind. Every outcome is reported through the
// status message and none of them is fatal, so the session always
// starts editable.
func (e *Editor) Load(path string) {
	e.reset()
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		e.SetStatus(fmt.Sprintf("Error: '%s' is a folder.", path))
	case err == nil:
		data, err := os.ReadFile(path)
		if err != nil {
			e.SetStatus(fmt.Sprintf("Error loading %s: %v", path, err))
			return
		}
		e.Buffer.SetLines(splitLines(string(data)))
		e.name = path
		e.SetStatus(fmt.Sprintf("Opened: %s", path))
	case os.IsNotExist(err):
		e.name = path
		e.SetStatus(fmt.Sprintf("New File: %s | Ctrl+Q: Quit", path))
	default:
		e.SetStatus(fmt.Sprintf("Error loading %s: %v", path, err))
	}
}

func (e *Editor) reset() {
	e.Buffer.SetLines(nil)
	e.name = ""
	e.dirty = false
	e.Cursor = types.Point{}
	e.Offset = types.Size{}
}

// WriteFile writes the buffer to path, one line per row with a
// trailing newline on each.
func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, line := range e.Buffer.Lines() {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// splitLines breaks file content into rows, dropping the terminator of
// a final newline so "a\n" loads as one row, not two.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
