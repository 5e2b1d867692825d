package recordid

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

var patientIDPattern = regexp.MustCompile(`^P\d{9}$`)

func TestNewPatientID(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 22, 9, 0, time.UTC)

	id, err := NewPatientID(now)
	if err != nil {
		t.Fatalf("NewPatientID() error = %v", err)
	}

	if !patientIDPattern.MatchString(id) {
		t.Errorf("NewPatientID() = %q, want match for %s", id, patientIDPattern)
	}

	// The first six digits come from the clock, so two calls at the same
	// instant share them while the random tail differs almost always.
	want := id[:7]
	distinct := false
	for i := 0; i < 20; i++ {
		other, err := NewPatientID(now)
		if err != nil {
			t.Fatalf("NewPatientID() error = %v", err)
		}
		if other[:7] != want {
			t.Errorf("NewPatientID() clock part = %q, want %q", other[:7], want)
		}
		if other != id {
			distinct = true
		}
	}
	if !distinct {
		t.Error("NewPatientID() produced 21 identical ids, random tail looks broken")
	}
}

func TestDayPrefixes(t *testing.T) {
	day := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)

	if got := AppointmentDayPrefix(day); got != "APT20260830" {
		t.Errorf("AppointmentDayPrefix() = %q, want %q", got, "APT20260830")
	}
	if got := EncounterDayPrefix(day); got != "ENC20260830" {
		t.Errorf("EncounterDayPrefix() = %q, want %q", got, "ENC20260830")
	}
}

func TestFormatIDs(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"appointment first of day", FormatAppointmentID("APT20260830", 1), "APT20260830001"},
		{"appointment triple digits", FormatAppointmentID("APT20260830", 123), "APT20260830123"},
		{"appointment overflow keeps digits", FormatAppointmentID("APT20260830", 1000), "APT202608301000"},
		{"encounter first of day", FormatEncounterID("ENC20260830", 1), "ENC202608300001"},
		{"encounter padded", FormatEncounterID("ENC20260830", 42), "ENC202608300042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestNextSeq(t *testing.T) {
	tests := []struct {
		name    string
		lastID  string
		prefix  string
		want    int
		wantErr error
	}{
		{"no prior record", "", "APT20260830", 1, nil},
		{"first follows zero-padded one", "APT20260830001", "APT20260830", 2, nil},
		{"large sequence", "ENC202608300457", "ENC20260830", 458, nil},
		{"prefix from another day", "APT20260829009", "APT20260830", 0, ErrPrefixMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextSeq(tt.lastID, tt.prefix)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NextSeq() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NextSeq() = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("garbage tail", func(t *testing.T) {
		if _, err := NextSeq("APT20260830xyz", "APT20260830"); err == nil {
			t.Error("NextSeq() expected error for non-numeric tail")
		}
	})
}
