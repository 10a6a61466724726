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
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

const defaultTabWidth = 8

// Config is the user configuration read from ~/.stedrc. A missing or
// malformed file yields the defaults; the editor never refuses to
// start over configuration.
type Config struct {
	TabWidth   int
	PluginDirs []string
}

func Default() Config {
	dirs := []string{"plugins"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append([]string{filepath.Join(home, ".sted", "plugins")}, dirs...)
	}
	return Config{
		TabWidth:   defaultTabWidth,
		PluginDirs: dirs,
	}
}

// DefaultPath is ~/.stedrc, or .stedrc in the working directory when
// the home directory is unknown.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".stedrc")
	}
	return ".stedrc"
}

// Load reads the config file at path, falling back to defaults for
// anything missing.
func Load(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil || !gjson.ValidBytes(data) {
		return cfg
	}
	if v := gjson.GetBytes(data, "tabWidth"); v.Exists() && v.Int() > 0 {
		cfg.TabWidth = int(v.Int())
	}
	if v := gjson.GetBytes(data, "pluginDirs"); v.IsArray() {
		cfg.PluginDirs = nil
		for _, entry := range v.Array() {
			cfg.PluginDirs = append(cfg.PluginDirs, expandHome(entry.String()))
		}
	}
	return cfg
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
