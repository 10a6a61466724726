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
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/steelseries/golisp"

	"sted/editor"
	"sted/types"
)

// Script plugins are lisp files evaluated once at startup. The tool
// table is exposed to them as primitives; a typical plugin is a few
// bind-key forms whose lambdas run later, on their keystrokes.
//
// golisp keeps one global environment, so the primitives reach the
// tool table through activeTools. The editor is single-threaded and
// handlers run to completion, so there is never more than one lisp
// evaluation in flight.
var activeTools *Tools

func init() {
	golisp.MakePrimitiveFunction("bind-key", "2", bindKeyImpl)
	golisp.MakePrimitiveFunction("prompt", "1", promptImpl)
	golisp.MakePrimitiveFunction("set-status", "1", setStatusImpl)
	golisp.MakePrimitiveFunction("get-lines", "0", getLinesImpl)
	golisp.MakePrimitiveFunction("set-lines", "1", setLinesImpl)
	golisp.MakePrimitiveFunction("get-filename", "0", getFileNameImpl)
	golisp.MakePrimitiveFunction("set-filename", "1", setFileNameImpl)
	golisp.MakePrimitiveFunction("mark-dirty", "0", markDirtyImpl)
	golisp.MakePrimitiveFunction("mark-clean", "0", markCleanImpl)
	golisp.MakePrimitiveFunction("get-cursor", "0", getCursorImpl)
}

func currentTools() (*Tools, error) {
	if activeTools == nil {
		return nil, errors.New("no editor session is active")
	}
	return activeTools, nil
}

func evalWithTools(tools *Tools, src string) (*golisp.Data, error) {
	activeTools = tools
	return golisp.ParseAndEval(src)
}

func bindKeyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	code := golisp.Car(args)
	fn := golisp.Cadr(args)
	if !golisp.IntegerP(code) {
		return nil, errors.New("bind-key requires an integer key code")
	}
	if !golisp.FunctionP(fn) {
		return nil, errors.New("bind-key requires a function")
	}
	tools.BindKey(types.Key(golisp.IntegerValue(code)), func(*editor.Editor) error {
		activeTools = tools
		if _, err := golisp.ApplyWithoutEval(fn, nil, golisp.Global); err != nil {
			return fmt.Errorf("script handler: %w", err)
		}
		return nil
	})
	return nil, nil
}

func promptImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	message := golisp.Car(args)
	if !golisp.StringP(message) {
		return nil, errors.New("prompt requires a string message")
	}
	// a cancelled prompt yields the empty string
	answer, _ := tools.Prompt(golisp.StringValue(message))
	return golisp.StringWithValue(answer), nil
}

func setStatusImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	message := golisp.Car(args)
	if !golisp.StringP(message) {
		return nil, errors.New("set-status requires a string message")
	}
	tools.SetStatus(golisp.StringValue(message))
	return nil, nil
}

func getLinesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	var result *golisp.Data
	lines := tools.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		result = golisp.Cons(golisp.StringWithValue(lines[i]), result)
	}
	return result, nil
}

func setLinesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0)
	for d := golisp.Car(args); golisp.NotNilP(d); d = golisp.Cdr(d) {
		line := golisp.Car(d)
		if !golisp.StringP(line) {
			return nil, errors.New("set-lines requires a list of strings")
		}
		lines = append(lines, golisp.StringValue(line))
	}
	tools.SetLines(lines)
	return nil, nil
}

func getFileNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(tools.FileName()), nil
}

func setFileNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	name := golisp.Car(args)
	if !golisp.StringP(name) {
		return nil, errors.New("set-filename requires a string")
	}
	tools.SetFileName(golisp.StringValue(name))
	return nil, nil
}

func markDirtyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	tools.MarkDirty()
	return nil, nil
}

func markCleanImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	tools.MarkClean()
	return nil, nil
}

func getCursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	tools, err := currentTools()
	if err != nil {
		return nil, err
	}
	cursor := tools.Cursor()
	return golisp.InternalMakeList(
		golisp.IntegerWithValue(int64(cursor.Row)),
		golisp.IntegerWithValue(int64(cursor.Col))), nil
}

// A ScriptExtension is one plugin file. Registration evaluates the
// file's top-level forms with the tool primitives bound.
type ScriptExtension struct {
	path string
}

func NewScriptExtension(path string) *ScriptExtension {
	return &ScriptExtension{path: path}
}

func (x *ScriptExtension) Name() string {
	return filepath.Base(x.path)
}

func (x *ScriptExtension) Register(tools *Tools) error {
	activeTools = tools
	if _, err := golisp.ProcessFile(x.path); err != nil {
		return fmt.Errorf("eval %s: %w", x.path, err)
	}
	return nil
}

// DiscoverScripts finds plugin_*.lsp files in the given directories.
// Missing directories are skipped; results are ordered by name within
// each directory.
func DiscoverScripts(dirs []string) []Extension {
	var found []Extension
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "plugin_*.lsp"))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, path := range matches {
			found = append(found, NewScriptExtension(path))
		}
	}
	return found
}
