package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, "**Day 1**: fractions", "text"))
	assert.Equal(t, "**Day 1**: fractions\n", buf.String())

	buf.Reset()
	require.NoError(t, writeResult(&buf, "**Day 1**: fractions\n\n- review", "html"))
	assert.Contains(t, buf.String(), "<strong>Day 1</strong>")
	assert.Contains(t, buf.String(), "<li>review</li>")
}

func TestAskResourcesBelowThreshold(t *testing.T) {
	t.Setenv("MATHPLANNER_LLM_PROVIDER", "mock")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"ask", "resources", "--topic", "fractions", "--count", "1", "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Keep practicing! If you struggle again, I will suggest additional resources.", strings.TrimSpace(out.String()))
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "mathplanner "), out.String())

	version = "v1.2.3"
	t.Cleanup(func() { version = "" })
	out.Reset()
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "mathplanner v1.2.3\n", out.String())
}
