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
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"sted/commander"
	"sted/config"
	"sted/editor"
	"sted/extension"
	"sted/screen"
)

func main() {
	var filename string
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	cfg := config.Load(config.DefaultPath())

	// The editor manages the buffer, cursor, and viewport.
	e := editor.NewEditor()
	if filename != "" {
		// Load problems are reported on the status bar; the session
		// always starts editable.
		e.Load(filename)
	}

	// The screen owns the terminal for the rest of the run.
	s, err := screen.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sted: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	// Log to a file; the terminal belongs to the screen now.
	if f, err := os.OpenFile(logPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666); err == nil {
		log.SetOutput(f)
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// The commander converts key events into editor operations.
	c := commander.NewCommander(e, s, cfg.TabWidth)

	// Register extensions: the built-ins, then any script plugins
	// found in the configured directories. A failing extension is
	// skipped, never fatal.
	tools := extension.NewTools(e, c)
	registry := extension.NewRegistry()
	registry.Add(extension.NewSaveExtension(), extension.NewEvalExtension())
	registry.Add(extension.DiscoverScripts(cfg.PluginDirs)...)
	if failures := registry.LoadAll(tools); len(failures) > 0 {
		e.SetStatus(fmt.Sprintf("%d extension(s) failed to load, see log", len(failures)))
	}

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
}

func logPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".stedlog")
	}
	return ".stedlog"
}
