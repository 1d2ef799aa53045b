package strategy

import "testing"

func TestResolveTitle(t *testing.T) {
	v := DefaultVocabulary()
	tests := []struct {
		name   string
		rows   [][]any
		header int
		want   string
		wantOK bool
	}{
		{
			name:   "row above",
			rows:   [][]any{{"Revenue", "Summary"}, {"Metric", "FY 2023-24"}},
			header: 1,
			want:   "Revenue Summary",
			wantOK: true,
		},
		{
			name:   "skips structural label",
			rows:   [][]any{{"Turnover"}, {"PARTICULARS"}, {"", "FY 2023-24"}},
			header: 2,
			want:   "Turnover",
			wantOK: true,
		},
		{
			name:   "header cell fallback",
			rows:   [][]any{{"Revenue", "FY 2023-24"}},
			header: 0,
			want:   "Revenue",
			wantOK: true,
		},
		{
			name:   "degenerate",
			rows:   [][]any{{""}, {nil, ""}},
			header: 1,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.ResolveTitle(grid(tt.rows...), tt.header)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ResolveTitle() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
