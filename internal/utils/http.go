package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Content types written by the front controller.
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON encodes data and writes it with the given status. Encoding
// happens before any header is sent, so a failure still produces a clean 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return WriteBody(w, ContentTypeJSON, statusCode, body)
}

// WriteText writes a plaintext response. Bootstrap failures use it because
// nothing else (templates, site config) can be assumed to work at that point.
func WriteText(w http.ResponseWriter, statusCode int, text string) (int, error) {
	return WriteBody(w, ContentTypeText, statusCode, []byte(text))
}

// WriteHTML writes an already rendered page.
func WriteHTML(w http.ResponseWriter, statusCode int, page *bytes.Buffer) (int64, error) {
	setHeaders(w, ContentTypeHTML)
	w.WriteHeader(statusCode)
	return io.Copy(w, page)
}

// WriteBody writes body under contentType with the given status.
func WriteBody(w http.ResponseWriter, contentType string, statusCode int, body []byte) (int, error) {
	setHeaders(w, contentType)
	w.WriteHeader(statusCode)
	return w.Write(body)
}

func setHeaders(w http.ResponseWriter, contentType string) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	if contentType != ContentTypeHTML {
		h.Set("Cache-Control", "no-store")
	}
}
