package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecordKeepsInsertionOrder(t *testing.T) {
	r := NewRecord().Set("metric", "Sales").Set("fy_2024_25", 2.0).Set("fy_2023_24", nil)
	r.Set("metric", "Revenue")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"metric":"Revenue","fy_2024_25":2,"fy_2023_24":null}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestCellJSON(t *testing.T) {
	var row []Cell
	if err := json.Unmarshal([]byte(`[null, 12.5, "1,200", true, " "]`), &row); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []Cell{EmptyCell(), NumberCell(12.5), TextCell("1,200"), TextCell("True"), TextCell(" ")}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("Unmarshal() = %+v, want %+v", row, want)
	}
	if !row[4].IsBlank() {
		t.Error("Expected whitespace cell to be blank")
	}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `[null,12.5,"1,200","True"," "]` {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestDocumentSheetOrder(t *testing.T) {
	input := `{"file_name": "a.xlsx", "sheets": {
		"Zeta": {"tables": [{"start_row": 2, "start_col": 3, "row_count": 1, "column_count": 1, "data": [["x"]]}]},
		"Alpha": {"table_count": 0, "tables": []}
	}}`
	var doc Document
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.DocumentName != "a.xlsx" {
		t.Errorf("DocumentName = %q", doc.DocumentName)
	}
	if len(doc.Sheets) != 2 || doc.Sheets[0].Name != "Zeta" || doc.Sheets[1].Name != "Alpha" {
		t.Fatalf("Unexpected sheets: %+v", doc.Sheets)
	}
	if doc.Sheets[0].TableCount != 1 {
		t.Errorf("TableCount = %d, want 1 from tables", doc.Sheets[0].TableCount)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var again Document
	if err := json.Unmarshal(data, &again); err != nil {
		t.Fatalf("Unmarshal(Marshal()) error = %v", err)
	}
	if again.Sheets[0].Name != "Zeta" || again.DocumentName != "a.xlsx" {
		t.Errorf("Order or name lost: %s", data)
	}
}

func TestTableBlock(t *testing.T) {
	b := Block{StartRow: 4, StartCol: 1, EndRow: 5, EndCol: 3, Data: Grid{{TextCell("a"), EmptyCell()}, {TextCell("b")}}}
	tbl := TableFromBlock(2, b)
	if tbl.StartRow != 5 || tbl.StartCol != 2 || tbl.EndRow != 6 || tbl.EndCol != 4 {
		t.Errorf("Unexpected 1-based bounds: %+v", tbl)
	}
	if tbl.RowCount != 2 || tbl.ColumnCount != 2 || tbl.TableIndex != 2 {
		t.Errorf("Unexpected counts: %+v", tbl)
	}
	if got := tbl.Block(); got.StartRow != 4 || got.EndCol != 3 {
		t.Errorf("Block() = %+v", got)
	}

	// Loader tables may omit end coordinates.
	partial := Table{StartRow: 1, StartCol: 1, Data: Grid{{TextCell("a"), TextCell("b")}}}
	if got := partial.Block(); got.EndRow != 0 || got.EndCol != 1 {
		t.Errorf("Block() without ends = %+v", got)
	}
}

func TestOutputKeys(t *testing.T) {
	o := NewOutput("d")
	o.Add("b", &Section{})
	o.Add("a", &Section{})
	o.Add("b", &Section{SectionTitle: "replaced"})
	if got := o.Keys(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Keys() = %v", got)
	}
	if s, _ := o.Get("b"); s.SectionTitle != "replaced" || o.Len() != 2 || !o.Has("a") {
		t.Errorf("Unexpected output state")
	}
}

func TestContextWithoutColumns(t *testing.T) {
	var c Context
	c.Columns.Add("ttm", 3)
	c.Title = "T"
	c.Months = []string{"Apr"}

	got := c.WithoutColumns()
	if got.HasColumns() || got.Title != "" || !reflect.DeepEqual(got.Months, []string{"Apr"}) {
		t.Errorf("WithoutColumns() = %+v", got)
	}
	if !c.HasColumns() {
		t.Error("WithoutColumns must not modify the receiver")
	}
}

func TestRecordUnmarshalKeepsNestedOrder(t *testing.T) {
	input := `{"metric":"Sales","monthly_values":{"Jan":1,"Apr":null,"Feb":"n/a"},"values":[2,{"z":1,"a":2}]}`
	var r Record
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := r.Keys(); !reflect.DeepEqual(got, []string{"metric", "monthly_values", "values"}) {
		t.Errorf("Keys() = %v", got)
	}
	monthly, _ := r.Get("monthly_values")
	nested, ok := monthly.(*Record)
	if !ok {
		t.Fatalf("monthly_values = %T, want *Record", monthly)
	}
	if got := nested.Keys(); !reflect.DeepEqual(got, []string{"Jan", "Apr", "Feb"}) {
		t.Errorf("nested Keys() = %v", got)
	}

	data, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != input {
		t.Errorf("Marshal() = %s, want %s", data, input)
	}
}

func TestOutputJSONOrder(t *testing.T) {
	o := NewOutput("book.xlsx")
	for _, key := range []string{"Z_b", "A_a", "M_c"} {
		o.Add(key, &Section{Sheet: key[:1], SectionTitle: key[2:], Metrics: []*Record{NewRecord().Set("metric", key)}})
	}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back Output
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.DocumentName != "book.xlsx" {
		t.Errorf("DocumentName = %q", back.DocumentName)
	}
	if got := back.Keys(); !reflect.DeepEqual(got, []string{"Z_b", "A_a", "M_c"}) {
		t.Errorf("Keys() = %v", got)
	}
	s, _ := back.Get("A_a")
	if len(s.Metrics) != 1 {
		t.Fatalf("Metrics = %v", s.Metrics)
	}
	if v, _ := s.Metrics[0].Get("metric"); v != "A_a" {
		t.Errorf("metric = %v, want A_a", v)
	}
}

func TestDocumentWithoutSheets(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"document_name": "x.xlsx"}`), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.DocumentName != "x.xlsx" || doc.Sheets != nil {
		t.Errorf("Unexpected document: %+v", doc)
	}
}
