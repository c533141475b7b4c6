package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spanteq/console/internal/models"
)

func TestLoginIssuesUsableToken(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)

	resp := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    admin.Email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeJSON(t, resp, &login)
	require.NotEmpty(t, login.Token)
	require.Equal(t, admin.Email, login.User.Email)

	resp = env.request(t, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me models.User
	decodeJSON(t, resp, &me)
	require.Equal(t, admin.ID, me.ID)
	require.Equal(t, models.RoleAdmin, me.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)

	resp := env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    admin.Email,
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@spanteq.test",
		"password": testPassword,
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/sections", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateUserIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)
	recruiter := env.createUser(t, "recruiter@spanteq.test", models.RoleRecruiter)

	payload := map[string]string{
		"email":    "new@spanteq.test",
		"password": "long-enough-pass",
		"name":     "New Recruiter",
		"role":     models.RoleRecruiter,
	}

	resp := env.request(t, http.MethodPost, "/api/users", env.tokenFor(t, recruiter), payload)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/users", env.tokenFor(t, admin), payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.User
	decodeJSON(t, resp, &created)
	require.Equal(t, "new@spanteq.test", created.Email)

	// Same email again is a conflict.
	resp = env.request(t, http.MethodPost, "/api/users", env.tokenFor(t, admin), payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@spanteq.test", models.RoleAdmin)

	resp := env.request(t, http.MethodPost, "/api/users", env.tokenFor(t, admin), map[string]string{
		"email":    "not-an-email",
		"password": "short",
		"role":     "superuser",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeJSON(t, resp, &body)
	require.Contains(t, body.Fields, "email")
	require.Contains(t, body.Fields, "password")
	require.Contains(t, body.Fields, "role")
}
