// cmd/advisor/main_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersAllSubcommands(t *testing.T) {
	root := newRootCmd()

	expected := []string{
		"analyze",
		"social-post",
		"email",
		"market-analysis",
		"campaign-strategy",
		"seo",
		"history",
		"demo",
	}

	for _, name := range expected {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, "command %s", name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestAnalyzeCmd_RequiresNameAndIndustry(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"analyze"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "industry")
}
