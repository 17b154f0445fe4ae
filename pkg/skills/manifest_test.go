package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultManifestName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseManifest(t *testing.T) {
	path := writeManifest(t, `---
name: test-skill
description: A test skill for unit testing
---

# Test Skill

Some instructions.
`)

	manifest, ok := ParseManifest(path)
	require.True(t, ok)

	name, hasName := manifest.Field("name")
	assert.True(t, hasName)
	assert.Equal(t, "test-skill", name)

	description, hasDescription := manifest.Field("description")
	assert.True(t, hasDescription)
	assert.Equal(t, "A test skill for unit testing", description)
}

func TestParseManifestExtraFields(t *testing.T) {
	path := writeManifest(t, `---
name: test-skill
description: desc
license: MIT
version: 2
---
body
`)

	manifest, ok := ParseManifest(path)
	require.True(t, ok)

	license, hasLicense := manifest.Field("license")
	assert.True(t, hasLicense)
	assert.Equal(t, "MIT", license)

	// Non-string values are stringified
	version, hasVersion := manifest.Field("version")
	assert.True(t, hasVersion)
	assert.Equal(t, "2", version)

	_, hasAuthor := manifest.Field("author")
	assert.False(t, hasAuthor)
}

func TestParseManifestNoManifest(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no opening delimiter", "# Just Markdown\n\nNo frontmatter here.\n"},
		{"opening delimiter not at position 0", "\n---\nname: x\n---\n"},
		{"leading spaces before delimiter", "  ---\nname: x\n---\n"},
		{"no closing delimiter", "---\nname: x\ndescription: y\n"},
		{"closing delimiter without trailing newline", "---\nname: x\n---"},
		{"empty frontmatter block", "---\n\n---\nbody\n"},
		{"back-to-back delimiters", "---\n---\nbody\n"},
		{"malformed yaml", "---\nname: [unclosed\n---\nbody\n"},
		{"non-mapping yaml", "---\n- a\n- b\n---\nbody\n"},
		{"scalar yaml", "---\njust a string\n---\nbody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			manifest, ok := ParseManifest(path)
			assert.False(t, ok)
			assert.Nil(t, manifest)
		})
	}
}

func TestParseManifestUnreadableFile(t *testing.T) {
	manifest, ok := ParseManifest(filepath.Join(t.TempDir(), "does-not-exist.md"))
	assert.False(t, ok)
	assert.Nil(t, manifest)
}

func TestParseManifestMultilineDescription(t *testing.T) {
	path := writeManifest(t, `---
name: test-skill
description: >-
  Line one
  line two
---
`)

	manifest, ok := ParseManifest(path)
	require.True(t, ok)

	description, _ := manifest.Field("description")
	assert.Equal(t, "Line one line two", description)
}
