package strategy

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Revenue", "revenue"},
		{"  Sales - Domestic / Export ", "sales_domestic_export"},
		{"Bifurcation of Revenue (in INR)", "bifurcation_of_revenue_in_inr"},
		{"a\\b", "a_b"},
		{"snake_case", "snakecase"},
		{"GSTR-3B", "gstr_3b"},
		{"***", "section"},
		{"", "section"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
