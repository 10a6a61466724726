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
	"fmt"
	"os"
	"strings"

	"sted/editor"
	"sted/types"
)

// SaveExtension binds Ctrl+S to save the buffer, prompting for a file
// name when the session has none.
type SaveExtension struct{}

func NewSaveExtension() *SaveExtension {
	return &SaveExtension{}
}

func (x *SaveExtension) Name() string {
	return "save"
}

func (x *SaveExtension) Register(tools *Tools) error {
	tools.BindKey(types.KeyCtrlS, func(*editor.Editor) error {
		save(tools)
		return nil
	})
	return nil
}

// save reports every outcome through the status message; an I/O
// failure never unwinds into the event loop.
func save(tools *Tools) {
	name := tools.FileName()
	if name == "" {
		answer, ok := tools.Prompt("Save As: ")
		answer = strings.TrimSpace(answer)
		if !ok || answer == "" {
			tools.SetStatus("Save cancelled.")
			return
		}
		if info, err := os.Stat(answer); err == nil && info.IsDir() {
			tools.SetStatus(fmt.Sprintf("Error: '%s' is a folder.", answer))
			return
		}
		name = answer
		tools.SetFileName(name)
	}
	lines := tools.Lines()
	if err := tools.WriteFile(name); err != nil {
		tools.SetStatus(fmt.Sprintf("Error saving! %v", err))
		return
	}
	tools.SetStatus(fmt.Sprintf("Saved %d lines to %s", len(lines), name))
	tools.MarkClean()
}
