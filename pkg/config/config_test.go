package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillerhq/skiller/pkg/pathutil"
)

func loadFromFile(t *testing.T, content string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	viper.SetConfigFile(path)
	return Load()
}

func TestLoad(t *testing.T) {
	cfg, err := loadFromFile(t, `
agent_dirs:
  claude:
    user:
      - ~/.claude/skills
    project:
      - ./.claude/skills
  goose:
    user:
      - ~/.config/goose/skills
custom_subdirs:
  - .claude/skills
display:
  discovery_description_length: 100
`)
	require.NoError(t, err)

	assert.Equal(t, []string{"claude", "goose"}, cfg.AgentNames())
	assert.Equal(t, []string{"~/.config/goose/skills"}, cfg.AgentDirs["goose"].User)
	assert.Empty(t, cfg.AgentDirs["goose"].Project)
	assert.Equal(t, []string{".claude/skills"}, cfg.CustomSubdirs)
	assert.Equal(t, 100, cfg.Display.DiscoveryDescriptionLength)
	// Unset display value falls back to the default
	assert.Equal(t, 80, cfg.Display.CatalogDescriptionLength)
}

func TestLoadDefaultsWhenFieldsAbsent(t *testing.T) {
	cfg, err := loadFromFile(t, `
agent_dirs:
  claude:
    user:
      - ~/.claude/skills
`)
	require.NoError(t, err)

	assert.Equal(t, []string{".opencode/skills", ".claude/skills"}, cfg.CustomSubdirs)
	assert.Equal(t, 120, cfg.Display.DiscoveryDescriptionLength)
	assert.Equal(t, 80, cfg.Display.CatalogDescriptionLength)
}

func TestLoadMissingFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := loadFromFile(t, "agent_dirs: [not: a: mapping\n")
	assert.Error(t, err)
}

func TestAllPaths(t *testing.T) {
	cfg := &Config{
		AgentDirs: map[string]PathSet{
			"claude": {
				User:    []string{"~/.claude/skills"},
				Project: []string{"./.claude/skills"},
			},
			"opencode": {
				User:    []string{"~/.claude/skills"}, // duplicate of claude's user path
				Project: []string{"./.opencode/skills"},
			},
		},
	}

	assert.Equal(t, []string{
		"~/.claude/skills",
		"./.claude/skills",
		"./.opencode/skills",
	}, cfg.AllPaths())
}

func TestPathLabels(t *testing.T) {
	cfg := &Config{
		AgentDirs: map[string]PathSet{
			"claude": {
				User:    []string{"~/.claude/skills"},
				Project: []string{"./.claude/skills"},
			},
		},
	}

	labels := cfg.PathLabels()
	assert.Equal(t, "claude[user]", labels[pathutil.Expand("~/.claude/skills")])
	assert.Equal(t, "claude[project]", labels["./.claude/skills"])
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"user", "project"}, Kinds())

	ps := PathSet{User: []string{"a"}, Project: []string{"b"}}
	assert.Equal(t, []string{"a"}, ps.ByKind(KindUser))
	assert.Equal(t, []string{"b"}, ps.ByKind(KindProject))
	assert.Nil(t, ps.ByKind("other"))
}
