package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain date",
			input: "2026-08-30",
			want:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: "2026-08-30T14:30:00Z",
			want:  time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			input: "2026-08-30T14:30:00+03:30",
			want:  time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  2026-08-30  ",
			want:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "us format", input: "08/30/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOptional(t *testing.T) {
	if got, err := ParseOptional(nil); err != nil || got != nil {
		t.Errorf("ParseOptional(nil) = %v, %v, want nil, nil", got, err)
	}

	empty := "   "
	if got, err := ParseOptional(&empty); err != nil || got != nil {
		t.Errorf("ParseOptional(blank) = %v, %v, want nil, nil", got, err)
	}

	valid := "2026-01-15"
	got, err := ParseOptional(&valid)
	if err != nil {
		t.Fatalf("ParseOptional(%q) unexpected error: %v", valid, err)
	}
	if want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ParseOptional(%q) = %v, want %v", valid, got, want)
	}

	bad := "15/01/2026"
	if _, err := ParseOptional(&bad); err == nil {
		t.Errorf("ParseOptional(%q) expected error", bad)
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("plus4", 4*3600)
	in := time.Date(2026, 8, 30, 2, 15, 0, 0, loc) // 2026-08-29 22:15 UTC
	want := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if got := Day(in); !got.Equal(want) {
		t.Errorf("Day(%v) = %v, want %v", in, got, want)
	}
}
