package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"tauthy/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// MaxDocumentSize caps uploads and files read from disk.
const MaxDocumentSize = 20 << 20

// Document is text pulled out of an uploaded or local file.
type Document struct {
	Name  string
	MIME  MIME
	Text  string
	Pages int
}

// ExtractFile reads a local file and extracts its text.
func ExtractFile(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > MaxDocumentSize {
		return Document{}, fmt.Errorf("%w: %d bytes", errors.ErrDocumentTooLarge, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	return ExtractBytes(filepath.Base(path), data)
}

// ExtractBytes sniffs the content type and extracts text. PDF and UTF-8 plain text are
// accepted; anything else is ErrUnsupportedDocument.
func ExtractBytes(name string, data []byte) (Document, error) {
	if len(data) > MaxDocumentSize {
		return Document{}, fmt.Errorf("%w: %d bytes", errors.ErrDocumentTooLarge, len(data))
	}
	detected := mimetype.Detect(data).String()

	switch {
	case Matches(detected, ApplicationPDF):
		text, pages, err := extractPDF(data)
		if err != nil {
			return Document{}, err
		}
		return Document{Name: name, MIME: ApplicationPDF, Text: text, Pages: pages}, nil
	case Matches(detected, TextPlain) && utf8.Valid(data):
		text := normalizeWhitespace(string(data))
		if text == "" {
			return Document{}, errors.ErrEmptyText
		}
		return Document{Name: name, MIME: TextPlain, Text: text, Pages: 1}, nil
	default:
		return Document{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedDocument, detected)
	}
}

// extractPDF concatenates the plain text of every readable page.
func extractPDF(data []byte) (string, int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("%w: unreadable pdf: %v", errors.ErrUnsupportedDocument, err)
	}

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	text := normalizeWhitespace(b.String())
	if text == "" {
		return "", total, fmt.Errorf("%w: no extractable text in pdf", errors.ErrEmptyText)
	}
	return text, total, nil
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
