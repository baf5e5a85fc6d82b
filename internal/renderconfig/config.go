// Package renderconfig loads the optional YAML settings file consulted by
// mesh-to-png when a render mode is omitted from the command line.
package renderconfig

import (
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// FileName is the config file mesh-to-png looks for in the working
// directory.
const FileName = "lilacmesh.yml"

// Config is the render configuration's shape. DefaultMode, if set, fills in
// an omitted <mode> argument; it never overrides one given explicitly.
type Config struct {
	DefaultMode string `yaml:"defaultMode"`
	JSONIndent  bool   `yaml:"jsonIndent"`
}

// Load reads and parses path. It is not an error for path to not exist:
// Load returns a zero Config and no error in that case, since the config
// file is wholly optional.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := unmarshalYAMLFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}
