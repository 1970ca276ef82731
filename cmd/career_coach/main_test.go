package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "qa", "parse-resume", "analyze", "match-jobs"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestParseResumeCommand_RequiresInput(t *testing.T) {
	flag := parseResumeCmd.Flags().Lookup("in")
	require.NotNil(t, flag)
	assert.Contains(t, flag.Annotations, cobra.BashCompOneRequiredFlag)
}

func TestMatchJobsCommand_DefaultCount(t *testing.T) {
	flag := matchJobsCmd.Flags().Lookup("count")
	require.NotNil(t, flag)
	assert.Equal(t, "5", flag.DefValue)
}

func TestPickArtifact(t *testing.T) {
	list := func() ([]string, error) {
		return []string{"qa_20250101_000000.json", "qa_20250601_123045.json"}, nil
	}

	name, err := pickArtifact("", list, "session")
	require.NoError(t, err)
	assert.Equal(t, "qa_20250601_123045.json", name)

	name, err = pickArtifact("qa_custom.json", list, "session")
	require.NoError(t, err)
	assert.Equal(t, "qa_custom.json", name)

	empty := func() ([]string, error) { return nil, nil }
	_, err = pickArtifact("", empty, "session")
	assert.ErrorContains(t, err, "no session artifacts found")
}
