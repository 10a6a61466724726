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

	"github.com/steelseries/golisp"

	"sted/editor"
	"sted/types"
)

// EvalExtension binds Ctrl+E to a one-line lisp evaluator: it prompts
// for an expression and shows the result on the message bar. The
// expression runs in the same environment as the script plugins, so
// the tool primitives are available interactively.
type EvalExtension struct{}

func NewEvalExtension() *EvalExtension {
	return &EvalExtension{}
}

func (x *EvalExtension) Name() string {
	return "eval"
}

func (x *EvalExtension) Register(tools *Tools) error {
	tools.BindKey(types.KeyCtrlE, func(*editor.Editor) error {
		expression, ok := tools.Prompt("Eval: ")
		if !ok || expression == "" {
			return nil
		}
		value, err := evalWithTools(tools, expression)
		if err != nil {
			tools.SetStatus(fmt.Sprintf("Eval error: %v", err))
			return nil
		}
		tools.SetStatus(golisp.String(value))
		return nil
	})
	return nil
}
