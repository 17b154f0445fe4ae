package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoveryDirSpaceSeparated(t *testing.T) {
	// `--dd DIR` does not bind DIR to the flag: the flag takes its
	// no-value default and DIR becomes a positional argument.
	flags := rootCmd.Flags()
	require.NoError(t, flags.Parse([]string{"--dd", "/tmp/agent-dir"}))

	require.True(t, flags.Changed("dd"))
	assert.Equal(t, []string{"/tmp/agent-dir"}, flags.Args())
	assert.Equal(t, "/tmp/agent-dir", discoveryDir(rootCmd, flags.Args()))
}

func TestDiscoveryDirInlineValue(t *testing.T) {
	flags := rootCmd.Flags()
	require.NoError(t, flags.Parse([]string{"--dd=/srv/skills"}))
	assert.Equal(t, "/srv/skills", discoveryDir(rootCmd, flags.Args()))
}

func TestDiscoveryDirDefaultsToCurrentDirectory(t *testing.T) {
	flags := rootCmd.Flags()
	require.NoError(t, flags.Parse([]string{"--dd"}))
	assert.Empty(t, flags.Args())
	assert.Equal(t, ".", discoveryDir(rootCmd, flags.Args()))
}

func TestRootCommandAcceptsOnePositionalArg(t *testing.T) {
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"/tmp/agent-dir"}))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"one", "two"}))
}
