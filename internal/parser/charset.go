package parser

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps a response body so that it is always read as UTF-8.
// The body is only transcoded when the Content-Type carries an explicit,
// non UTF-8 charset parameter (e.g. "application/json; charset=ISO-8859-1");
// anything else is passed through as UTF-8 without sniffing.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}
	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return body, nil
	}
	return charset.NewReaderLabel(label, body)
}
