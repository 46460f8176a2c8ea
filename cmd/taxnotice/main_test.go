package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MalithGihan/taxnotice-service/internal/ingest/ingesttest"
	"github.com/MalithGihan/taxnotice-service/internal/summarize"
)

func writePDF(t *testing.T, pages ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notice.pdf")
	require.NoError(t, os.WriteFile(path, ingesttest.BuildPDF(pages...), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummarizeCommandWithMockProvider(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MODEL_PROVIDER", "mock")
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "summarize", writePDF(t, "Notice CP23", "Amount due $500.73"))
	require.NoError(t, err)

	var sum map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, "CP23", sum["noticeType"])
	assert.Equal(t, "$500.73", sum["amountDue"])
}

func TestExtractCommand(t *testing.T) {
	out, err := run(t, "extract", writePDF(t, "first page", "second page"))
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "first page"), strings.Index(out, "second page"))
}

func TestPromptCommand(t *testing.T) {
	out, err := run(t, "prompt", writePDF(t, "Notice CP23"))
	require.NoError(t, err)
	text, ok := summarize.DefaultTemplate().Embedded(out)
	require.True(t, ok)
	assert.Contains(t, text, "Notice CP23")
}

func TestSummarizeCommandNeedsKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MODEL_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	_, err := run(t, "summarize", writePDF(t, "x"))
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}
