package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AttendanceEntry is one recorded session in the attendance table.
type AttendanceEntry struct {
	TeacherID string          `json:"teacher_id"`
	ClassID   string          `json:"class_id"`
	Date      string          `json:"date"`
	Hours     decimal.Decimal `json:"hours"`
	Status    string          `json:"status"`
}

// AttendanceFromRow maps a header-keyed sheet row to an AttendanceEntry.
// An absent or malformed hours cell counts as a single session hour, so
// sheets that only tick presence still produce a payable line.
func AttendanceFromRow(row map[string]string) AttendanceEntry {
	hours, err := decimal.NewFromString(strings.TrimSpace(row["hours"]))
	if err != nil {
		hours = decimal.NewFromInt(1)
	}
	return AttendanceEntry{
		TeacherID: strings.TrimSpace(row["teacher_id"]),
		ClassID:   strings.TrimSpace(row["class_id"]),
		Date:      strings.TrimSpace(row["date"]),
		Hours:     hours,
		Status:    strings.TrimSpace(row["status"]),
	}
}
