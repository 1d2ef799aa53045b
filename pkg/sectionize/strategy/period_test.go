package strategy

import (
	"reflect"
	"testing"

	"github.com/VivekMane57/sectionize/pkg/sectionize/models"
)

func TestPeriodTable(t *testing.T) {
	s := NewPeriodTable(DefaultVocabulary())
	parsed, next, headerFound := s.Extract(block(
		[]any{"Revenue", "FY 2023-24", "FY 2024-25"},
		[]any{"Sales", "1,200", "1,500"},
	), models.Context{})

	if parsed == nil || !headerFound {
		t.Fatalf("Expected a parsed block with header, got %v, %v", parsed, headerFound)
	}
	if parsed.Title != "Revenue" {
		t.Errorf("Title = %q, want Revenue", parsed.Title)
	}
	want := []map[string]any{{"metric": "Sales", "fy_2023_24": 1200.0, "fy_2024_25": 1500.0}}
	if got := plainAll(parsed.Records); !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
	if !next.HasColumns() || next.Title != "Revenue" {
		t.Errorf("Expected next context to carry the header, got %+v", next)
	}
	if got := parsed.Records[0].Keys(); !reflect.DeepEqual(got, []string{"metric", "fy_2023_24", "fy_2024_25"}) {
		t.Errorf("Key order = %v", got)
	}
}

func TestPeriodTableRepeatedColumns(t *testing.T) {
	s := NewPeriodTable(DefaultVocabulary())
	parsed, _, _ := s.Extract(block(
		[]any{"Particulars", "FY 2023-24", "", "TTM"},
		[]any{"", "Amount", "%", ""},
		[]any{"Sales", "100", "12.5%", "--"},
		[]any{"PARTICULARS", "", "", ""},
		[]any{"", "1", "2", "3"},
	), models.Context{})

	if parsed == nil {
		t.Fatal("Expected parsed block")
	}
	want := []map[string]any{
		{"metric": "Sales", "fy_2023_24": []any{100.0, 12.5}, "ttm": nil},
	}
	if got := plainAll(parsed.Records); !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
}

func TestPeriodTableContinuation(t *testing.T) {
	s := NewPeriodTable(DefaultVocabulary())
	_, ctx, _ := s.Extract(block(
		[]any{"Revenue", "FY 2023-24"},
		[]any{"Sales", "10"},
	), models.Context{})

	parsed, next, headerFound := s.Extract(block(
		[]any{"Other income", "5"},
		[]any{"Interest", "N/A"},
	), ctx)
	if parsed == nil {
		t.Fatal("Expected continuation to parse")
	}
	if headerFound {
		t.Error("Continuation must not report a header")
	}
	if parsed.Title != "Revenue" {
		t.Errorf("Title = %q, want inherited Revenue", parsed.Title)
	}
	want := []map[string]any{
		{"metric": "Other income", "fy_2023_24": 5.0},
		{"metric": "Interest", "fy_2023_24": nil},
	}
	if got := plainAll(parsed.Records); !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(next, ctx) {
		t.Errorf("Continuation must pass the context through unchanged")
	}
}

func TestPeriodTableMisses(t *testing.T) {
	s := NewPeriodTable(DefaultVocabulary())
	prior := models.Context{Title: "kept"}

	parsed, next, headerFound := s.Extract(block([]any{"Notes", "free text"}), prior)
	if parsed != nil || headerFound || next.Title != "kept" {
		t.Errorf("Expected miss without prior columns, got %v %+v %v", parsed, next, headerFound)
	}

	parsed, _, headerFound = s.Extract(block([]any{"Revenue", "FY 2023-24"}), prior)
	if parsed != nil || !headerFound {
		t.Errorf("Expected header without records, got %v %v", parsed, headerFound)
	}
}

func TestRegionTable(t *testing.T) {
	s := NewRegionTable(DefaultVocabulary())
	parsed, _, _ := s.Extract(block(
		[]any{"State", "Code", "FY 2023-24"},
		[]any{"Maharashtra", 27, "1,000"},
		[]any{"Goa", "", "50"},
	), models.Context{})
	if parsed == nil {
		t.Fatal("Expected parsed block")
	}
	want := []map[string]any{
		{"metric": "Maharashtra", "state_code": "27", "fy_2023_24": 1000.0},
		{"metric": "Goa", "fy_2023_24": 50.0},
	}
	if got := plainAll(parsed.Records); !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
}

func TestCatalogTable(t *testing.T) {
	s := NewCatalogTable(DefaultVocabulary())
	parsed, _, _ := s.Extract(block(
		[]any{"Product wise sales"},
		[]any{"Product (HSN)", "Name", "FY 2024-25"},
		[]any{"PRODUCT HSN", "", ""},
		[]any{8471, "Computers", "2,50,000"},
	), models.Context{})
	if parsed == nil {
		t.Fatal("Expected parsed block")
	}
	if parsed.Title != "Product wise sales" {
		t.Errorf("Title = %q", parsed.Title)
	}
	want := []map[string]any{{"product_hsn": "8471", "hsn_name": "Computers", "fy_2024_25": 250000.0}}
	if got := plainAll(parsed.Records); !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
}

func TestPartyTable(t *testing.T) {
	s := NewPartyTable(DefaultVocabulary(), "customer")
	parsed, _, _ := s.Extract(block(
		[]any{"Top customers"},
		[]any{"Customer name", "GSTIN", "FY 2023-24"},
		[]any{"Acme Ltd", "27AAACA1234A1Z5", "900"},
	), models.Context{})
	if parsed == nil {
		t.Fatal("Expected parsed block")
	}
	want := []map[string]any{{
		"customer_name":  "Acme Ltd",
		"customer_gstin": "27AAACA1234A1Z5",
		"fy_2023_24":     900.0,
	}}
	if got := plainAll(parsed.Records); !reflect.DeepEqual(got, want) {
		t.Errorf("Records = %v, want %v", got, want)
	}
}
