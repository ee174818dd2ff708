package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// blobFilename is what browsers send for a Blob appended without a name.
const blobFilename = "blob"

// Form is a multipart/form-data body. It is encoded lazily, so it can be
// built up before the request is issued.
type Form struct {
	parts []formPart
}

type formPart struct {
	name        string
	filename    string
	contentType string
	data        []byte
}

// NewForm returns an empty Form.
func NewForm() *Form {
	return &Form{}
}

// AddJSON adds v as a JSON-typed part under name.
func (f *Form) AddJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal form part %q: %w", name, err)
	}
	f.parts = append(f.parts, formPart{
		name:        name,
		filename:    blobFilename,
		contentType: "application/json",
		data:        data,
	})
	return nil
}

// AddFile adds a binary part under name.
func (f *Form) AddFile(name, filename, contentType string, data []byte) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	f.parts = append(f.parts, formPart{
		name:        name,
		filename:    filename,
		contentType: contentType,
		data:        data,
	})
}

// Len reports the number of parts.
func (f *Form) Len() int { return len(f.parts) }

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range f.parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(p.name), escapeQuotes(p.filename)))
		h.Set("Content-Type", p.contentType)

		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form part %q: %w", p.name, err)
		}
		if _, err := pw.Write(p.data); err != nil {
			return nil, "", fmt.Errorf("failed to write form part %q: %w", p.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
