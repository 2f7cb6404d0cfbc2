package slips_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunawanst/assahra-api/app/auth"
	"github.com/gunawanst/assahra-api/app/config"
	"github.com/gunawanst/assahra-api/app/models"
	"github.com/gunawanst/assahra-api/app/routes/slips"
	"github.com/gunawanst/assahra-api/app/sheetstore"
)

type fakeStore struct {
	grids map[string][][]interface{}
}

func (f *fakeStore) Get(_ context.Context, readRange string) ([][]interface{}, error) {
	return f.grids[strings.TrimSuffix(readRange, "!A:Z")], nil
}

func (f *fakeStore) Append(_ context.Context, _ string, _ []interface{}) error {
	return nil
}

const testSecret = "test-secret"

func payrollGrids() map[string][][]interface{} {
	return map[string][][]interface{}{
		"classes": {
			{"class_id", "teacher_id", "name", "rate"},
			{"C1", "T1", "Tahsin", "75000"},
			{"C2", "T1", "Tahfidz", "50000"},
		},
		"attendance": {
			{"teacher_id", "class_id", "date", "hours", "status"},
			{"T1", "C1", "2024-01-08", "1", "present"},
			{"T1", "C2", "2024-01-10", "2", "present"},
			{"T1", "C1", "2024-02-05", "1", "present"},
			{"T2", "C1", "2024-01-09", "1", "present"},
		},
	}
}

func newApp(store sheetstore.ValuesClient) *fiber.App {
	cfg := &config.Config{
		JWTSecret: testSecret,
		Tables: config.Tables{
			Admins: "admins", Teachers: "teachers",
			Classes: "classes", Attendance: "attendance",
		},
	}
	app := fiber.New()
	slips.SetupSlipsRoutes(app, sheetstore.NewRepo(store, cfg.Tables), cfg)
	return app
}

type slipEnvelope struct {
	Ok    bool        `json:"ok"`
	Error string      `json:"error"`
	Data  models.Slip `json:"data"`
}

func getSlip(t *testing.T, app *fiber.App, target string) slipEnvelope {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out slipEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.IssueToken("boss@example.com", testSecret, auth.DefaultTokenTTL)
	require.NoError(t, err)
	return token
}

func TestGetSlipRequiresToken(t *testing.T) {
	app := newApp(&fakeStore{grids: payrollGrids()})

	out := getSlip(t, app, "/api/slips/?teacher_id=T1&month=2024-01")
	assert.False(t, out.Ok)
	assert.NotEmpty(t, out.Error)

	out = getSlip(t, app, "/api/slips/?teacher_id=T1&month=2024-01&admin_token=bogus")
	assert.False(t, out.Ok)
}

func TestGetSlipValidatesInput(t *testing.T) {
	app := newApp(&fakeStore{grids: payrollGrids()})
	token := adminToken(t)

	for _, target := range []string{
		"/api/slips/?month=2024-01&admin_token=" + token,
		"/api/slips/?teacher_id=T1&admin_token=" + token,
		"/api/slips/?teacher_id=T1&month=Jan-2024&admin_token=" + token,
		"/api/slips/?teacher_id=T1&month=2024-1&admin_token=" + token,
	} {
		out := getSlip(t, app, target)
		assert.False(t, out.Ok, "target %s", target)
		assert.Equal(t, "Missing/invalid teacher_id or month (YYYY-MM)", out.Error)
	}
}

func TestGetSlip(t *testing.T) {
	app := newApp(&fakeStore{grids: payrollGrids()})

	out := getSlip(t, app, "/api/slips/?teacher_id=T1&month=2024-01&admin_token="+adminToken(t))
	require.True(t, out.Ok, "error: %s", out.Error)

	slip := out.Data
	assert.Equal(t, "T1", slip.TeacherID)
	assert.Equal(t, "2024-01", slip.Month)
	require.Len(t, slip.Lines, 2)
	assert.Equal(t, 2, slip.TotalSessions)
	assert.Equal(t, "3", slip.TotalHours.String())
	// 75000*1 + 50000*2
	assert.Equal(t, "175000", slip.TotalAmount.String())
}

func TestGetSlipBearerHeader(t *testing.T) {
	app := newApp(&fakeStore{grids: payrollGrids()})

	req := httptest.NewRequest(http.MethodGet, "/api/slips/?teacher_id=T1&month=2024-01", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out slipEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Ok, "error: %s", out.Error)
}

func TestGetSlipNoMatches(t *testing.T) {
	app := newApp(&fakeStore{grids: payrollGrids()})

	out := getSlip(t, app, "/api/slips/?teacher_id=T9&month=2024-01&admin_token="+adminToken(t))
	require.True(t, out.Ok)
	assert.Empty(t, out.Data.Lines)
	assert.Zero(t, out.Data.TotalSessions)
	assert.True(t, out.Data.TotalAmount.IsZero())
}

func TestIsMonth(t *testing.T) {
	assert.True(t, slips.IsMonth("2024-01"))
	assert.True(t, slips.IsMonth("1999-12"))
	assert.False(t, slips.IsMonth("2024-1"))
	assert.False(t, slips.IsMonth("2024-01-05"))
	assert.False(t, slips.IsMonth(""))
	assert.False(t, slips.IsMonth("202401"))
}
