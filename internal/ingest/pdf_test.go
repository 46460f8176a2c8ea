package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MalithGihan/taxnotice-service/internal/ingest"
	"github.com/MalithGihan/taxnotice-service/internal/ingest/ingesttest"
)

func TestExtractPDFKeepsPageOrder(t *testing.T) {
	data := ingesttest.BuildPDF("Notice CP23 page one", "Amount due $500.73 page two", "Final page three")

	text, err := ingest.ExtractPDF(data)
	require.NoError(t, err)

	one := strings.Index(text, "page one")
	two := strings.Index(text, "page two")
	three := strings.Index(text, "page three")
	require.True(t, one >= 0 && two >= 0 && three >= 0, "missing page text in %q", text)
	assert.Less(t, one, two)
	assert.Less(t, two, three)
	assert.Contains(t, text, "CP23")
	assert.Contains(t, text, "$500.73")
}

func TestExtractPDFZeroPages(t *testing.T) {
	text, err := ingest.ExtractPDF(ingesttest.BuildPDF())
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestExtractPDFVersion2Header(t *testing.T) {
	data := ingesttest.BuildPDF("Notice CP23")
	require.True(t, strings.HasPrefix(string(data), "%PDF-1."))
	copy(data, "%PDF-2.0")
	orig := append([]byte(nil), data...)

	text, err := ingest.ExtractPDF(data)
	require.NoError(t, err)
	assert.Contains(t, text, "Notice CP23")
	assert.Equal(t, orig, data, "input must not be modified")
}

func TestExtractPDFRejectsGarbage(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     nil,
		"text":      []byte("this is not a pdf at all"),
		"truncated": ingesttest.BuildPDF("hello")[:40],
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ingest.ExtractPDF(data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ingest.ErrUnreadablePDF))
		})
	}
}

func TestDetectType(t *testing.T) {
	pdf := ingesttest.BuildPDF("x")
	assert.Equal(t, "pdf", ingest.DetectType("notice.bin", pdf[:8]))
	assert.Equal(t, "unknown", ingest.DetectType("notice.pdf", []byte("PK\x03\x04 zip archive")))
	assert.Equal(t, "pdf", ingest.DetectType("NOTICE.PDF", nil))
	assert.Equal(t, "unknown", ingest.DetectType("notice.txt", nil))
}
