// Package recordid generates the human-readable business identifiers that
// accompany the UUID primary keys on clinical records.
//
// Three schemes are in use:
//
//	Patient:     P<6 digits from the clock><3 random digits>    e.g. P482913057
//	Appointment: APT<YYYYMMDD><3-digit daily sequence>          e.g. APT20260830007
//	Encounter:   ENC<YYYYMMDD><4-digit daily sequence>          e.g. ENC202608300031
//
// The sequence-based schemes are not atomic on their own. Callers persist the
// ID into a column with a unique index and retry on conflict.
package recordid

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	PatientPrefix     = "P"
	AppointmentPrefix = "APT"
	EncounterPrefix   = "ENC"

	appointmentSeqDigits = 3
	encounterSeqDigits   = 4

	dayLayout = "20060102"
)

var ErrPrefixMismatch = errors.New("record id does not carry the expected prefix")

// NewPatientID builds a patient identifier from the current clock reading
// plus three random digits. The result always matches ^P\d{9}$.
func NewPatientID(now time.Time) (string, error) {
	ms := now.UnixMilli() % 1_000_000
	suffix, err := randomDigits(3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%06d%s", PatientPrefix, ms, suffix), nil
}

// AppointmentDayPrefix returns the shared prefix of every appointment
// created on the given day, e.g. "APT20260830".
func AppointmentDayPrefix(day time.Time) string {
	return AppointmentPrefix + day.Format(dayLayout)
}

// EncounterDayPrefix returns the shared prefix of every encounter created
// on the given day, e.g. "ENC20260830".
func EncounterDayPrefix(day time.Time) string {
	return EncounterPrefix + day.Format(dayLayout)
}

// FormatAppointmentID renders a day prefix plus sequence as a full
// appointment identifier. The sequence is zero-padded to three digits.
func FormatAppointmentID(dayPrefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", dayPrefix, appointmentSeqDigits, seq)
}

// FormatEncounterID renders a day prefix plus sequence as a full encounter
// identifier. The sequence is zero-padded to four digits.
func FormatEncounterID(dayPrefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", dayPrefix, encounterSeqDigits, seq)
}

// NextSeq extracts the numeric tail of lastID under dayPrefix and returns
// the following sequence number. An empty lastID means no record exists for
// the day yet, so the sequence starts at 1.
func NextSeq(lastID, dayPrefix string) (int, error) {
	if lastID == "" {
		return 1, nil
	}
	if !strings.HasPrefix(lastID, dayPrefix) {
		return 0, ErrPrefixMismatch
	}
	tail := lastID[len(dayPrefix):]
	n, err := strconv.Atoi(tail)
	if err != nil {
		return 0, fmt.Errorf("record id %q has a non-numeric sequence: %w", lastID, err)
	}
	return n + 1, nil
}

func randomDigits(n int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random digits: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v), nil
}
