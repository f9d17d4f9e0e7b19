package libpolicy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds the raw library policy settings as the host configuration
// supplies them.
type Options struct {
	PolicyName string   `yaml:"policy_name"`
	Args       []string `yaml:"args,omitempty"`
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{PolicyName: NameUseAll}
}

// ParseOptions decodes YAML settings over the defaults. Unknown keys and
// extra documents are rejected. An empty document yields the defaults.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil
		}
		return Options{}, fmt.Errorf("parsing options: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("more than one document")
		}
		return Options{}, fmt.Errorf("parsing options: %w", err)
	}
	return opts, nil
}

// LoadOptions reads and parses a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options: %w", err)
	}
	return ParseOptions(data)
}
