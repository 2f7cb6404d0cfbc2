package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/models"
)

// ErrStoreUnavailable wraps every failure to reach or read the sheet store.
// There is no retry at this layer.
var ErrStoreUnavailable = errors.New("sheet store unavailable")

// Row is one data row keyed by its trimmed header names.
type Row map[string]string

// Repo reads and appends rows of the named tables. It holds no state beyond
// the client handle and table names, so one instance is shared by all
// requests.
type Repo struct {
	client ValuesClient
	tables config.Tables
}

func NewRepo(client ValuesClient, tables config.Tables) *Repo {
	return &Repo{client: client, tables: tables}
}

// ReadTable fetches a whole table and converts it to rows keyed by header
// name. The first row is the header; each header cell is trimmed and used
// verbatim, and a later duplicate header overwrites the earlier one. Rows
// whose cells are all blank are skipped. An empty or header-only table is an
// empty result, not an error.
func (r *Repo) ReadTable(ctx context.Context, name string) ([]Row, error) {
	values, err := r.client.Get(ctx, name+"!A:Z")
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, name, err)
	}
	if len(values) == 0 {
		return []Row{}, nil
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = strings.TrimSpace(cellString(h))
	}

	rows := []Row{}
	for _, raw := range values[1:] {
		var joined strings.Builder
		for _, cell := range raw {
			joined.WriteString(cellString(cell))
		}
		if strings.TrimSpace(joined.String()) == "" {
			continue // spreadsheet artifact: blank row between data
		}

		row := Row{}
		for i, h := range headers {
			if h == "" {
				continue
			}
			var cell string
			if i < len(raw) {
				cell = cellString(raw[i])
			}
			row[h] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow adds one row at the end of the named table, values in the
// table's current column order. Add-only: nothing is updated or locked, and
// concurrent appends may interleave at the store.
func (r *Repo) AppendRow(ctx context.Context, name string, values []interface{}) error {
	if err := r.client.Append(ctx, name+"!A:Z", values); err != nil {
		return fmt.Errorf("%w: append %s: %v", ErrStoreUnavailable, name, err)
	}
	return nil
}

// Admins returns every row of the admins table.
func (r *Repo) Admins(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.ReadTable(ctx, r.tables.Admins)
	if err != nil {
		return nil, err
	}
	admins := make([]models.Admin, len(rows))
	for i, row := range rows {
		admins[i] = models.AdminFromRow(row)
	}
	return admins, nil
}

// Teachers returns every row of the teachers table.
func (r *Repo) Teachers(ctx context.Context) ([]models.Teacher, error) {
	rows, err := r.ReadTable(ctx, r.tables.Teachers)
	if err != nil {
		return nil, err
	}
	teachers := make([]models.Teacher, len(rows))
	for i, row := range rows {
		teachers[i] = models.TeacherFromRow(row)
	}
	return teachers, nil
}

// Classes returns every row of the classes table.
func (r *Repo) Classes(ctx context.Context) ([]models.Class, error) {
	rows, err := r.ReadTable(ctx, r.tables.Classes)
	if err != nil {
		return nil, err
	}
	classes := make([]models.Class, len(rows))
	for i, row := range rows {
		classes[i] = models.ClassFromRow(row)
	}
	return classes, nil
}

// Attendance returns every row of the attendance table.
func (r *Repo) Attendance(ctx context.Context) ([]models.AttendanceEntry, error) {
	rows, err := r.ReadTable(ctx, r.tables.Attendance)
	if err != nil {
		return nil, err
	}
	entries := make([]models.AttendanceEntry, len(rows))
	for i, row := range rows {
		entries[i] = models.AttendanceFromRow(row)
	}
	return entries, nil
}

// AddAdmin appends an admin row with a creation timestamp. It does not check
// for duplicates; uniqueness is the caller's responsibility, and two
// concurrent calls can both land.
func (r *Repo) AddAdmin(ctx context.Context, email, hash, role string) error {
	if role == "" {
		role = "admin"
	}
	return r.AppendRow(ctx, r.tables.Admins, []interface{}{
		email, "(bcrypt)", hash, role, time.Now().UTC().Format(time.RFC3339),
	})
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
