package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrUnreadablePDF = errors.New("unreadable pdf")

// PDFExtractor pulls the text layer out of a PDF held in memory.
type PDFExtractor struct{}

func (PDFExtractor) ExtractText(data []byte) (string, error) {
	return ExtractPDF(data)
}

// ExtractPDF returns the text of every page in page order, one page per line
// group. A document without pages yields "".
func ExtractPDF(data []byte) (text string, err error) {
	// the parser panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	data = downgradeHeader(data)
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		t, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnreadablePDF, i, err)
		}
		pages = append(pages, t)
	}
	return strings.Join(pages, "\n"), nil
}

// downgradeHeader rewrites a leading %PDF-2.x header to %PDF-1.7 on a copy of
// data. The parser only accepts 1.x headers; the rewrite keeps the header
// length, so xref offsets still hold.
func downgradeHeader(data []byte) []byte {
	if len(data) < 8 || !bytes.HasPrefix(data, []byte("%PDF-2.")) {
		return data
	}
	out := bytes.Clone(data)
	copy(out, "%PDF-1.7")
	return out
}
