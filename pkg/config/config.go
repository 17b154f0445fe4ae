// Package config defines the skiller configuration schema and loads it
// from viper. The configuration is validated and defaulted once at load
// time and treated as read-only afterwards.
package config

import (
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/skillerhq/skiller/pkg/pathutil"
)

// Path kinds an agent can declare install roots under.
const (
	KindUser    = "user"
	KindProject = "project"
)

// Kinds returns the path kinds in their canonical order.
func Kinds() []string {
	return []string{KindUser, KindProject}
}

// PathSet holds the ordered install roots for one agent, split by kind.
type PathSet struct {
	User    []string `mapstructure:"user" yaml:"user"`
	Project []string `mapstructure:"project" yaml:"project"`
}

// ByKind returns the paths for the given kind, nil for unknown kinds.
func (ps PathSet) ByKind(kind string) []string {
	switch kind {
	case KindUser:
		return ps.User
	case KindProject:
		return ps.Project
	default:
		return nil
	}
}

// Display holds presentation tunables. Description truncation lengths are
// configuration values rather than hard-coded constants.
type Display struct {
	DiscoveryDescriptionLength int `mapstructure:"discovery_description_length" yaml:"discovery_description_length"`
	CatalogDescriptionLength   int `mapstructure:"catalog_description_length" yaml:"catalog_description_length"`
}

// Config is the process-wide skiller configuration, read-only after load.
type Config struct {
	AgentDirs     map[string]PathSet `mapstructure:"agent_dirs" yaml:"agent_dirs"`
	CustomSubdirs []string           `mapstructure:"custom_subdirs" yaml:"custom_subdirs"`
	Display       Display            `mapstructure:"display" yaml:"display"`
}

// Default returns the built-in configuration written by `skiller init`;
// loaded config files fall back to its values field by field.
func Default() *Config {
	return &Config{
		AgentDirs: map[string]PathSet{
			"claude": {
				User:    []string{"~/.claude/skills"},
				Project: []string{"./.claude/skills"},
			},
			"opencode": {
				User:    []string{"~/.config/opencode/skills"},
				Project: []string{"./.opencode/skills"},
			},
		},
		CustomSubdirs: []string{".opencode/skills", ".claude/skills"},
		Display: Display{
			DiscoveryDescriptionLength: 120,
			CatalogDescriptionLength:   80,
		},
	}
}

// Load reads the configuration from viper. Fields the file leaves unset
// fall back to the built-in defaults field by field; a file that sets
// agent_dirs replaces the default agents rather than merging with them.
// A missing or malformed configuration file is a fatal condition for every
// command except `skiller init`; callers exit with code 1 on error.
func Load() (*Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed to read configuration")
	}

	cfg := &Config{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create config decoder")
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if len(c.CustomSubdirs) == 0 {
		c.CustomSubdirs = defaults.CustomSubdirs
	}
	if c.Display.DiscoveryDescriptionLength <= 0 {
		c.Display.DiscoveryDescriptionLength = defaults.Display.DiscoveryDescriptionLength
	}
	if c.Display.CatalogDescriptionLength <= 0 {
		c.Display.CatalogDescriptionLength = defaults.Display.CatalogDescriptionLength
	}
}

// AgentNames returns the configured agent names in sorted order.
func (c *Config) AgentNames() []string {
	names := make([]string, 0, len(c.AgentDirs))
	for name := range c.AgentDirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllPaths returns every configured install root, user paths before project
// paths per agent, agents in sorted order, duplicates removed while
// preserving first occurrence.
func (c *Config) AllPaths() []string {
	var paths []string
	seen := make(map[string]struct{})
	for _, name := range c.AgentNames() {
		ps := c.AgentDirs[name]
		for _, p := range append(append([]string{}, ps.User...), ps.Project...) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}

// PathLabels maps each expanded install root to a human-readable
// "agent[kind]" label for reporting.
func (c *Config) PathLabels() map[string]string {
	labels := make(map[string]string)
	for _, name := range c.AgentNames() {
		ps := c.AgentDirs[name]
		for _, kind := range Kinds() {
			for _, p := range ps.ByKind(kind) {
				labels[pathutil.Expand(p)] = name + "[" + kind + "]"
			}
		}
	}
	return labels
}
