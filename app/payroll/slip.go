package payroll

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gunawanst/assahra-api/app/models"
)

// BuildSlip computes the payroll slip for one teacher and one calendar month
// from full-table snapshots of classes and attendance. It is a pure function:
// the caller fetches both tables (usually concurrently) and the engine does
// no I/O.
//
// An attendance entry counts when its teacher matches and its date falls in
// the month (day ignored). Each counted entry becomes one line, priced by
// rate x hours from its class. An entry whose class cannot be resolved still
// produces a line with a zero rate; one broken reference must not sink the
// whole slip. Month must already be validated as YYYY-MM by the caller.
func BuildSlip(teacherID, month string, classes []models.Class, attendance []models.AttendanceEntry) models.Slip {
	byID := make(map[string]models.Class, len(classes))
	for _, class := range classes {
		if class.ClassID != "" {
			byID[class.ClassID] = class
		}
	}

	slip := models.Slip{
		SlipID:      uuid.NewString(),
		TeacherID:   teacherID,
		Month:       month,
		Lines:       []models.SlipLine{},
		TotalHours:  decimal.Zero,
		TotalAmount: decimal.Zero,
	}

	for _, entry := range attendance {
		if entry.TeacherID != teacherID || !inMonth(entry.Date, month) {
			continue
		}

		line := models.SlipLine{
			ClassID: entry.ClassID,
			Date:    entry.Date,
			Hours:   entry.Hours,
			Rate:    decimal.Zero,
		}
		if class, ok := byID[entry.ClassID]; ok {
			line.ClassName = class.Name
			line.Rate = class.Rate
		} else {
			// data-integrity gap: keep the line, price it at zero
			line.ClassName = entry.ClassID
		}
		line.Amount = line.Rate.Mul(line.Hours)

		slip.Lines = append(slip.Lines, line)
		slip.TotalSessions++
		slip.TotalHours = slip.TotalHours.Add(line.Hours)
		slip.TotalAmount = slip.TotalAmount.Add(line.Amount)
	}

	return slip
}

var dateLayouts = []string{"2006-01-02", "2006-1-2", "2006/01/02", "02/01/2006"}

// inMonth reports whether a day-level date string falls in the YYYY-MM month.
// Sheets are hand-edited, so a few date layouts are tolerated; anything
// unparseable falls back to a plain prefix check.
func inMonth(date, month string) bool {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01") == month
		}
	}
	return strings.HasPrefix(date, month+"-")
}
