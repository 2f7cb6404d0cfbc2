package models

import "github.com/shopspring/decimal"

// SlipLine is one payable session on a payroll slip.
type SlipLine struct {
	ClassID   string          `json:"class_id"`
	ClassName string          `json:"class_name"`
	Date      string          `json:"date"`
	Hours     decimal.Decimal `json:"hours"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
}

// Slip is the computed payroll summary for one teacher and one calendar
// month. It is never persisted; every request computes it fresh.
type Slip struct {
	SlipID        string          `json:"slip_id"`
	TeacherID     string          `json:"teacher_id"`
	Month         string          `json:"month"`
	Lines         []SlipLine      `json:"lines"`
	TotalSessions int             `json:"total_sessions"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}
