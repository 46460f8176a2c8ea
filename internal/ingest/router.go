package ingest

import (
	"bytes"
	"path/filepath"
	"strings"
)

var pdfMagic = []byte("%PDF-")

// DetectType classifies an upload by its leading bytes, falling back to the
// file extension when the header is too short to tell.
func DetectType(name string, head []byte) string {
	if bytes.HasPrefix(head, pdfMagic) {
		return "pdf"
	}
	if len(head) >= len(pdfMagic) {
		return "unknown"
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "pdf"
	default:
		return "unknown"
	}
}
