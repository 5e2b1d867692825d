package paging

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"in range", 3, 25, 3, 25},
		{"zero page", 0, 25, 1, 25},
		{"negative page", -7, 25, 1, 25},
		{"zero limit", 2, 0, 2, DefaultLimit},
		{"negative limit", 2, -1, 2, DefaultLimit},
		{"limit over max", 2, 101, 2, DefaultLimit},
		{"limit at max", 2, 100, 2, 100},
		{"limit at one", 2, 1, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.page, tt.limit)
			if got.Number != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("Clamp(%d, %d) = {%d, %d}, want {%d, %d}",
					tt.page, tt.limit, got.Number, got.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page Page
		want int
	}{
		{Page{Number: 1, Limit: 10}, 0},
		{Page{Number: 2, Limit: 10}, 10},
		{Page{Number: 5, Limit: 25}, 100},
	}

	for _, tt := range tests {
		if got := tt.page.Offset(); got != tt.want {
			t.Errorf("Page{%d,%d}.Offset() = %d, want %d", tt.page.Number, tt.page.Limit, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 25, 4},
		{100, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestNewResult(t *testing.T) {
	items := []string{"a", "b", "c"}
	res := NewResult(items, 23, Page{Number: 2, Limit: 10})

	if res.Total != 23 || res.Page != 2 || res.Limit != 10 || res.TotalPages != 3 {
		t.Errorf("NewResult() bookkeeping = %+v", res)
	}
	if len(res.Items) != 3 {
		t.Errorf("NewResult() items = %d, want 3", len(res.Items))
	}
}
