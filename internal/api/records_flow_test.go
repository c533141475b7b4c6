package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spanteq/console/internal/models"
)

func setupVendorSection(t *testing.T, env *testEnv, adminToken string) models.Section {
	t.Helper()
	section := createTestSection(t, env, adminToken, "vendors",
		[]string{models.RoleRecruiter}, []string{models.RoleRecruiter})

	addTestField(t, env, adminToken, section.ID, map[string]any{
		"key": "vendor_name", "label": "Vendor Name", "type": "text", "required": true,
	})
	addTestField(t, env, adminToken, section.ID, map[string]any{
		"key": "headcount", "label": "Headcount", "type": "number",
	})
	return section
}

func TestCreateRecordRejectsMissingRequiredField(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)
	token := env.tokenFor(t, admin)
	setupVendorSection(t, env, token)

	resp := env.request(t, http.MethodPost, "/api/data/vendors", token, map[string]any{
		"data": map[string]any{"headcount": 12},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeJSON(t, resp, &body)
	require.Equal(t, "Vendor Name is required", body.Fields["vendor_name"])
}

func TestRecordLifecycle(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)
	token := env.tokenFor(t, admin)
	setupVendorSection(t, env, token)

	resp := env.request(t, http.MethodPost, "/api/data/vendors", token, map[string]any{
		"data": map[string]any{"vendor_name": "Acme Staffing", "headcount": 12},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var record models.Record
	decodeJSON(t, resp, &record)
	require.NotEmpty(t, record.ID)
	require.Equal(t, "Acme Staffing", record.Data["vendor_name"])

	resp = env.request(t, http.MethodPut, "/api/data/vendors/"+record.ID, token, map[string]any{
		"data": map[string]any{"vendor_name": "Acme Staffing Inc"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Record
	decodeJSON(t, resp, &updated)
	require.Equal(t, "Acme Staffing Inc", updated.Data["vendor_name"])

	resp = env.request(t, http.MethodDelete, "/api/data/vendors/"+record.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, "/api/data/vendors/"+record.ID, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListRecordsPaginatesAndFilters(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)
	token := env.tokenFor(t, admin)
	setupVendorSection(t, env, token)

	for _, name := range []string{"Acme Staffing", "Globex Partners", "Initech Talent"} {
		resp := env.request(t, http.MethodPost, "/api/data/vendors", token, map[string]any{
			"data": map[string]any{"vendor_name": name, "headcount": 5},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	var page struct {
		Records []models.Record `json:"records"`
		Page    int             `json:"page"`
		Pages   int             `json:"pages"`
		Total   int             `json:"total"`
	}

	resp := env.request(t, http.MethodGet, "/api/data/vendors?limit=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	require.Equal(t, 3, page.Total)
	require.Equal(t, 2, page.Pages)
	require.Len(t, page.Records, 2)

	resp = env.request(t, http.MethodGet, "/api/data/vendors?limit=2&page=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	require.Equal(t, 2, page.Page)
	require.Len(t, page.Records, 1)

	// Text filters match substrings, ignoring case.
	resp = env.request(t, http.MethodGet, "/api/data/vendors?vendor_name=glob", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	require.Equal(t, 1, page.Total)
	require.Len(t, page.Records, 1)
	require.Equal(t, "Globex Partners", page.Records[0].Data["vendor_name"])

	// Keys that name no field are ignored rather than rejected.
	resp = env.request(t, http.MethodGet, "/api/data/vendors?nonexistent=zzz", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	require.Equal(t, 3, page.Total)
}

func TestRecordAccessFollowsSectionRoles(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)
	recruiter := env.createUser(t, "recruiter@spanteq.test", models.RoleRecruiter)
	candidate := env.createUser(t, "candidate@spanteq.test", models.RoleCandidate)
	setupVendorSection(t, env, env.tokenFor(t, admin))

	// Recruiter is on both role lists.
	resp := env.request(t, http.MethodPost, "/api/data/vendors", env.tokenFor(t, recruiter), map[string]any{
		"data": map[string]any{"vendor_name": "Acme Staffing"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/data/vendors", env.tokenFor(t, candidate), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/data/vendors", env.tokenFor(t, candidate), map[string]any{
		"data": map[string]any{"vendor_name": "Sneaky Vendor"},
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestExportRecordsCSV(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)
	token := env.tokenFor(t, admin)
	setupVendorSection(t, env, token)

	resp := env.request(t, http.MethodPost, "/api/data/vendors", token, map[string]any{
		"data": map[string]any{"vendor_name": "Acme Staffing", "headcount": 12},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/data/vendors/export", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	require.Contains(t, resp.Header.Get("Content-Disposition"), "vendors-records.csv")

	body := readBody(t, resp)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "Vendor Name")
	require.Contains(t, lines[1], "Acme Staffing")
}
