// Package bench times glob engines against a table of cases and reports the
// results in the comma-separated benchmark line format.
package bench

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Case is one benchmark case: a named pattern, relative to the search path.
type Case struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// Options are the glob policies applied to every case.
type Options struct {
	Sort           bool `yaml:"sort"`
	MatchHidden    bool `yaml:"match_hidden"`
	FollowSymlinks bool `yaml:"follow_symlinks"`
}

// Config is the benchmark case table.
type Config struct {
	Cases   []Case  `yaml:"cases"`
	Options Options `yaml:"options"`
}

// DefaultCases returns the built-in case table.
func DefaultCases() []Case {
	return []Case{
		{Name: "basic", Pattern: "stdlib/public/*/*.swift"},
		{Name: "intermediate", Pattern: "lib/SILOptimizer/*/*.cpp"},
		{Name: "advanced", Pattern: "lib/*/[A-Z]*.cpp"},
	}
}

// DefaultConfig returns the built-in cases with conventional shell policies:
// hidden files excluded, symlinks followed, discovery order.
func DefaultConfig() *Config {
	return &Config{
		Cases: DefaultCases(),
		Options: Options{
			FollowSymlinks: true,
		},
	}
}

// LoadConfig loads a case table from a YAML file, merging it over the
// defaults. An empty path returns the defaults. If the file lists any
// cases, they replace the built-in ones.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read case table")
	}
	if err := cfg.merge(data); err != nil {
		return nil, errors.Wrapf(err, "parse case table %s", path)
	}
	return cfg, nil
}

func (cfg *Config) merge(data []byte) error {
	// Pointers distinguish "false" from "not set".
	type yamlOptions struct {
		Sort           *bool `yaml:"sort"`
		MatchHidden    *bool `yaml:"match_hidden"`
		FollowSymlinks *bool `yaml:"follow_symlinks"`
	}
	type yamlConfig struct {
		Cases   []Case      `yaml:"cases"`
		Options yamlOptions `yaml:"options"`
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return err
	}

	if len(yc.Cases) > 0 {
		cfg.Cases = yc.Cases
	}
	if yc.Options.Sort != nil {
		cfg.Options.Sort = *yc.Options.Sort
	}
	if yc.Options.MatchHidden != nil {
		cfg.Options.MatchHidden = *yc.Options.MatchHidden
	}
	if yc.Options.FollowSymlinks != nil {
		cfg.Options.FollowSymlinks = *yc.Options.FollowSymlinks
	}
	return cfg.Validate()
}

// Validate checks that every case has a unique name and a pattern.
func (cfg *Config) Validate() error {
	seen := make(map[string]bool, len(cfg.Cases))
	for i, c := range cfg.Cases {
		switch {
		case c.Name == "":
			return errors.Errorf("case %d has no name", i)
		case c.Pattern == "":
			return errors.Errorf("case %q has no pattern", c.Name)
		case seen[c.Name]:
			return errors.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}
