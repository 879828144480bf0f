package ingest

import "mime"

type MIME string

const (
	Unknown        MIME = "unknown"
	TextPlain      MIME = "text/plain"
	ApplicationPDF MIME = "application/pdf"
)

// Matches compares a detected content type, parameters and all, with an expected one.
func Matches(detected string, expected MIME) bool {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return false
	}
	return mt == string(expected)
}
