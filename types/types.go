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
package types

// Editor modes
const (
	ModeEditing  = 0
	ModeQuitting = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A Key identifies a non-printable keystroke. Control keys use their
// ASCII codes; the remaining special keys are numbered above the
// printable range.
type Key int

const (
	KeyCtrlC     Key = 3
	KeyCtrlE     Key = 5
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyCtrlQ     Key = 17
	KeyCtrlS     Key = 19
	KeyEsc       Key = 27
	KeyBackspace Key = 127

	KeyArrowUp    Key = 257
	KeyArrowDown  Key = 258
	KeyArrowLeft  Key = 259
	KeyArrowRight Key = 260
	KeyHome       Key = 261
	KeyEnd        Key = 262
	KeyPgup       Key = 263
	KeyPgdn       Key = 264
	KeyDelete     Key = 265

	KeyUnsupported Key = -1
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

// An Event is one unit of user input. Printable keystrokes arrive in Ch
// with Key zero; special keys arrive in Key with Ch zero.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Prompter collects one line of input from the user.
// ok is false when the user cancels.
type Prompter interface {
	Prompt(message string) (input string, ok bool)
}
