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
	"log"
)

// An Extension adds behavior to the editor. Register is called exactly
// once at startup with the tool table; the usual move is to bind keys
// whose handlers close over the tools.
type Extension interface {
	Name() string
	Register(tools *Tools) error
}

// A Registry loads extensions at startup. A failing registration is
// isolated to its own unit: the failure is logged and returned, and
// the remaining extensions still load.
type Registry struct {
	extensions []Extension
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Add(extensions ...Extension) {
	r.extensions = append(r.extensions, extensions...)
}

// LoadAll registers every extension and returns the per-unit failures.
func (r *Registry) LoadAll(tools *Tools) []error {
	var failures []error
	for _, x := range r.extensions {
		if err := r.register(x, tools); err != nil {
			log.Printf("extension %s: %v", x.Name(), err)
			failures = append(failures, fmt.Errorf("extension %s: %w", x.Name(), err))
		}
	}
	return failures
}

func (r *Registry) register(x Extension, tools *Tools) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("registration panic: %v", p)
		}
	}()
	return x.Register(tools)
}
