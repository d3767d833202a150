package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	Version, GitCommit = "1.2.3", "abc1234"
	t.Cleanup(func() { Version, GitCommit = "dev", "unknown" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Version:    1.2.3")
	assert.Contains(t, out.String(), "Git commit: abc1234")
}

func TestPromoteRequiresUsername(t *testing.T) {
	assert.Error(t, promoteCmd.Args(promoteCmd, nil))
	assert.NoError(t, promoteCmd.Args(promoteCmd, []string{"alice"}))
}
