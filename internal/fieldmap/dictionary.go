// Package fieldmap resolves the eight raw scores out of arbitrary
// key/value records using pluggable field-name dictionaries.
package fieldmap

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Keys maps each canonical role to the concrete key to look up in a
// record. All eight keys are required.
type Keys struct {
	Visual       string `yaml:"visual"`
	Brainstem    string `yaml:"brainstem"`
	Pyramidal    string `yaml:"pyramidal"`
	Cerebellar   string `yaml:"cerebellar"`
	Sensory      string `yaml:"sensory"`
	BowelBladder string `yaml:"bowel_bladder"`
	Cerebral     string `yaml:"cerebral"`
	Ambulation   string `yaml:"ambulation"`
}

// Dictionary names the field keys used by one data source, locale, or
// study schema.
type Dictionary struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Keys        Keys   `yaml:"keys"`
}

func (d *Dictionary) validate() error {
	roles := []struct {
		role string
		key  string
	}{
		{"visual", d.Keys.Visual},
		{"brainstem", d.Keys.Brainstem},
		{"pyramidal", d.Keys.Pyramidal},
		{"cerebellar", d.Keys.Cerebellar},
		{"sensory", d.Keys.Sensory},
		{"bowel_bladder", d.Keys.BowelBladder},
		{"cerebral", d.Keys.Cerebral},
		{"ambulation", d.Keys.Ambulation},
	}
	var missing []string
	for _, r := range roles {
		if r.key == "" {
			missing = append(missing, r.role)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("dictionary %q: missing keys for roles: %s", d.Name, strings.Join(missing, ", "))
	}
	return nil
}

// LoadBuiltin loads an embedded dictionary by name.
func LoadBuiltin(name string) (*Dictionary, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("fieldmap.LoadBuiltin: unknown dictionary %q: %w", name, err)
	}
	return parse(data, name)
}

// Load reads a user-supplied dictionary from a YAML file.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fieldmap.Load: %w", err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (*Dictionary, error) {
	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("fieldmap: parse %q: %w", source, err)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("fieldmap: %w", err)
	}
	return &d, nil
}

// List returns the names of all built-in dictionaries.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
