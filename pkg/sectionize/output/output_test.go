package output

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

func TestToJSON(t *testing.T) {
	out := models.NewOutput("a&b.xlsx")
	out.Add("S_t", &models.Section{
		Sheet:        "S",
		SectionTitle: "<t>",
		Metrics:      []*models.Record{models.NewRecord().Set("metric", "x").Set("value", nil)},
	})

	data, err := ToJSON(out, false)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	want := `{"document_name":"a\u0026b.xlsx","tables":{"S_t":{"sheet":"S","section_title":"\u003ct\u003e","start_row":0,"start_col":0,"row_count":0,"column_count":0,"metrics":[{"metric":"x","value":null}]}}}`
	if string(data) != want {
		t.Errorf("ToJSON() = %s\nwant %s", data, want)
	}

	var back models.Output
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	s, ok := back.Get("S_t")
	if back.DocumentName != "a&b.xlsx" || !ok || s.SectionTitle != "<t>" {
		t.Errorf("Decoded output = %q %+v", back.DocumentName, s)
	}

	pretty, err := ToJSON(out, true)
	if err != nil {
		t.Fatalf("ToJSON(pretty) error = %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  \"tables\": {")) {
		t.Errorf("Expected indented output, got %s", pretty)
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"book.xlsx":          "structured_book.json",
		"dir/Q1 report.json": "structured_Q1 report.json",
		"noext":              "structured_noext.json",
		"":                   "structured_document.json",
	}
	for in, want := range tests {
		if got := FileName(in); got != want {
			t.Errorf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
	if got := RawFileName("book.xlsx"); got != "book.json" {
		t.Errorf("RawFileName() = %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path, err := WriteFile(dir, "x.json", map[string]int{"a": 1}, false)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("content = %s", data)
	}
}

func TestWriteBundle(t *testing.T) {
	var buf bytes.Buffer
	entries := []BundleEntry{
		{Name: "structured_a.json", Data: []byte(`{"a":1}`)},
		{Name: "structured_b.json", Data: []byte(`{"b":2}`)},
	}
	if err := WriteBundle(&buf, entries); err != nil {
		t.Fatalf("WriteBundle() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(zr.File))
	}
	for i, f := range zr.File {
		if f.Name != entries[i].Name {
			t.Errorf("file %d name = %q", i, f.Name)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		if !bytes.Equal(data, entries[i].Data) {
			t.Errorf("%s content = %s", f.Name, data)
		}
	}
}
