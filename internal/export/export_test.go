package export_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"wardrobe-planner/internal/export"
	"wardrobe-planner/internal/model"
)

func sampleItems() []model.WardrobeItem {
	added := model.NewTime(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	return []model.WardrobeItem{
		{ID: "1", Name: "Blue Shirt", Brand: "Zara", Category: "Shirts", Price: 19.99, Tags: []string{"work", "cotton"}, DateAdded: added, TimesWorn: 3},
		{ID: "tmp-2", Name: "Boots", Brand: "Dr. Martens", Category: "Shoes", Favorite: true},
	}
}

func TestParseFormat(t *testing.T) {
	tcs := map[string]struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		"name":          {in: "parquet", want: export.FormatParquet},
		"upper":         {in: "YAML", want: export.FormatYAML},
		"yml extension": {in: "out/wardrobe.yml", want: export.FormatYAML},
		"pq extension":  {in: "items.pq", want: export.FormatParquet},
		"unknown":       {in: "items.csv", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := export.ParseFormat(tc.in)
			if tc.wantErr {
				if !errors.Is(err, export.ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("ParseFormat(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
			}
		})
	}
}

func TestRows(t *testing.T) {
	rows := export.Rows(sampleItems())
	if rows[0].DateAdded != "2024-03-01T09:00:00Z" || rows[0].LastWorn != "" {
		t.Errorf("unexpected timestamps: %+v", rows[0])
	}
	if rows[1].Tags == nil {
		t.Errorf("nil tags should become an empty list")
	}
}

func TestWriteParquet(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteItems(&buf, export.FormatParquet, sampleItems(), time.Now()); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := export.ReadParquet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Blue Shirt" || rows[0].Price != 19.99 || len(rows[0].Tags) != 2 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].ID != "tmp-2" || !rows[1].Favorite {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	if err := export.WriteItems(&buf, export.FormatYAML, sampleItems(), now); err != nil {
		t.Fatalf("write: %v", err)
	}
	if out := buf.String(); !strings.HasPrefix(out, "exported_at:") || !strings.Contains(out, "2024-05-06T12:00:00Z") {
		t.Errorf("unexpected header:\n%s", buf.String())
	}

	var doc struct {
		Count int              `yaml:"count"`
		Items []export.ItemRow `yaml:"items"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Count != 2 || doc.Items[1].Brand != "Dr. Martens" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteItems(&buf, export.Format("csv"), nil, time.Now()); !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
