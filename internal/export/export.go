// Package export writes the wardrobe to files for use outside the app.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"wardrobe-planner/internal/model"
)

// Format is an output file format.
type Format string

const (
	FormatParquet Format = "parquet"
	FormatYAML    Format = "yaml"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// ParseFormat accepts a format name or a file name with a known extension.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimPrefix(ext, ".")
	}
	switch name {
	case "parquet", "pq":
		return FormatParquet, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ItemRow is the flat, file-friendly shape of a wardrobe item.
type ItemRow struct {
	ID        string   `parquet:"id" yaml:"id"`
	Name      string   `parquet:"name" yaml:"name"`
	Brand     string   `parquet:"brand" yaml:"brand"`
	Category  string   `parquet:"category" yaml:"category"`
	Size      string   `parquet:"size,optional" yaml:"size,omitempty"`
	Price     float64  `parquet:"price" yaml:"price"`
	Material  string   `parquet:"material,optional" yaml:"material,omitempty"`
	Season    string   `parquet:"season,optional" yaml:"season,omitempty"`
	Color     string   `parquet:"color,optional" yaml:"color,omitempty"`
	Tags      []string `parquet:"tags,list" yaml:"tags"`
	Favorite  bool     `parquet:"favorite" yaml:"favorite"`
	TimesWorn int64    `parquet:"times_worn" yaml:"times_worn"`
	DateAdded string   `parquet:"date_added,optional" yaml:"date_added,omitempty"`
	LastWorn  string   `parquet:"last_worn,optional" yaml:"last_worn,omitempty"`
	ImageURL  string   `parquet:"image_url,optional" yaml:"image_url,omitempty"`
}

// Rows flattens items. Timestamps become RFC 3339 strings, empty when unset.
func Rows(items []model.WardrobeItem) []ItemRow {
	rows := make([]ItemRow, len(items))
	for i, it := range items {
		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}
		rows[i] = ItemRow{
			ID:        it.ID.String(),
			Name:      it.Name,
			Brand:     it.Brand,
			Category:  it.Category,
			Size:      it.Size,
			Price:     it.Price,
			Material:  it.Material,
			Season:    it.Season,
			Color:     it.Color,
			Tags:      append([]string{}, tags...),
			Favorite:  it.Favorite,
			TimesWorn: int64(it.TimesWorn),
			DateAdded: formatTime(it.DateAdded),
			LastWorn:  formatTime(it.LastWorn),
			ImageURL:  it.ImageURL,
		}
	}
	return rows
}

func formatTime(t model.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// document is the top level of a YAML export.
type document struct {
	ExportedAt string    `yaml:"exported_at"`
	Count      int       `yaml:"count"`
	Items      []ItemRow `yaml:"items"`
}

// WriteItems writes items to w in format f.
func WriteItems(w io.Writer, f Format, items []model.WardrobeItem, now time.Time) error {
	rows := Rows(items)
	switch f {
	case FormatParquet:
		return writeParquet(w, rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		doc := document{ExportedAt: now.UTC().Format(time.RFC3339), Count: len(rows), Items: rows}
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func writeParquet(w io.Writer, rows []ItemRow) error {
	pw := parquet.NewGenericWriter[ItemRow](w)
	if _, err := pw.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// ReadParquet loads rows written by WriteItems.
func ReadParquet(r io.ReaderAt, size int64) ([]ItemRow, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[ItemRow](pf)
	defer reader.Close()

	var out []ItemRow
	batch := make([]ItemRow, 64)
	for {
		n, err := reader.Read(batch)
		out = append(out, batch[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}
	return out, nil
}
