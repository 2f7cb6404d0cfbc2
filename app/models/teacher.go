package models

import "strings"

// Teacher is one row of the teachers table.
type Teacher struct {
	TeacherID string `json:"teacher_id"`
	Name      string `json:"name"`
}

// TeacherFromRow maps a header-keyed sheet row to a Teacher.
func TeacherFromRow(row map[string]string) Teacher {
	return Teacher{
		TeacherID: strings.TrimSpace(row["teacher_id"]),
		Name:      row["name"],
	}
}
