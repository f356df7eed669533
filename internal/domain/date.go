// internal/domain/date.go
package domain

import (
	"errors"
	"strings"
	"time"
	_ "time/tzdata" // Reference zone must resolve regardless of the host's zoneinfo
)

// DateLayout is the stored and returned form of every exercise date.
const DateLayout = "2006-01-02"

// ReferenceZone is the zone "today" and every stored date are computed in.
// It is fixed so results do not depend on where the server runs.
const ReferenceZone = "CET"

var referenceLocation = mustLoadLocation(ReferenceZone)

// ErrInvalidDate is returned by ParseDate for input it cannot read.
var ErrInvalidDate = errors.New("invalid date")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("load reference zone " + name + ": " + err.Error())
	}
	return loc
}

// ReferenceLocation returns the fixed reference zone.
func ReferenceLocation() *time.Location {
	return referenceLocation
}

// Layouts that carry their own offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
}

// Layouts without an offset, read as wall-clock time in the reference zone.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate reads a caller-supplied date. A bare YYYY-MM-DD is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, referenceLocation); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders t as the calendar date it falls on in the reference zone.
func FormatDate(t time.Time) string {
	return t.In(referenceLocation).Format(DateLayout)
}

// NormalizeDate parses s and renders it with FormatDate.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return FormatDate(t), nil
}
