package output

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/livp123/wallfetch/internal/model"
	apperrors "github.com/livp123/wallfetch/pkg/errors"
)

const (
	FormatRecords = "records"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// Formats lists the supported output formats, default first.
func Formats() []string {
	return []string{FormatRecords, FormatJSON, FormatYAML}
}

// IsKnownFormat reports whether name is a supported output format.
func IsKnownFormat(name string) bool {
	for _, f := range Formats() {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// Renderer writes records to an output stream. Render is called once per
// record in order, Finish once after the last record.
// Renderer 将记录写入输出流。每条记录按顺序调用一次 Render，最后调用一次 Finish。
type Renderer interface {
	Name() string
	Render(w io.Writer, rec model.Record) error
	Finish(w io.Writer) error
}

// NewRenderer returns a fresh renderer for format. An empty format selects records.
// NewRenderer 返回指定格式的新渲染器，空格式使用 records。
func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatRecords:
		return &RecordsRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{records: []model.Record{}}, nil
	case FormatYAML:
		return &YAMLRenderer{records: []model.Record{}}, nil
	default:
		return nil, apperrors.NewFormatError(format)
	}
}

// ---------------------------------------------------------------------------
// Records Renderer (hand-editable list-of-maps literal)
// ---------------------------------------------------------------------------

// RecordsRenderer streams one brace block per URL:
//
//	  {
//	    "url": "<url>",
//	  },
//
// The URL is written as-is, without escaping.
type RecordsRenderer struct{}

func (r *RecordsRenderer) Name() string { return FormatRecords }

func (r *RecordsRenderer) Render(w io.Writer, rec model.Record) error {
	_, err := io.WriteString(w, "  {\n    \"url\": \""+rec.URL+"\",\n  },\n")
	return err
}

func (r *RecordsRenderer) Finish(io.Writer) error { return nil }

// ---------------------------------------------------------------------------
// JSON Renderer (asset store photo list)
// ---------------------------------------------------------------------------

// JSONRenderer collects records and writes them as one indented JSON array.
type JSONRenderer struct {
	records []model.Record
}

func (r *JSONRenderer) Name() string { return FormatJSON }

func (r *JSONRenderer) Render(_ io.Writer, rec model.Record) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *JSONRenderer) Finish(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r.records)
}

// ---------------------------------------------------------------------------
// YAML Renderer
// ---------------------------------------------------------------------------

// YAMLRenderer collects records and writes them as a YAML sequence.
type YAMLRenderer struct {
	records []model.Record
}

func (r *YAMLRenderer) Name() string { return FormatYAML }

func (r *YAMLRenderer) Render(_ io.Writer, rec model.Record) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *YAMLRenderer) Finish(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.records); err != nil {
		return err
	}
	return enc.Close()
}
