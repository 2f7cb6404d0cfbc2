package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Class is one row of the classes table: a priced session definition owned by
// a teacher.
type Class struct {
	ClassID   string          `json:"class_id"`
	TeacherID string          `json:"teacher_id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
}

// ClassFromRow maps a header-keyed sheet row to a Class. A missing or
// malformed rate defaults to zero so one bad row cannot poison a whole slip.
func ClassFromRow(row map[string]string) Class {
	rate, err := decimal.NewFromString(strings.TrimSpace(row["rate"]))
	if err != nil {
		rate = decimal.Zero
	}
	return Class{
		ClassID:   strings.TrimSpace(row["class_id"]),
		TeacherID: strings.TrimSpace(row["teacher_id"]),
		Name:      row["name"],
		Rate:      rate,
	}
}
