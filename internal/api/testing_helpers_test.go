package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/spanteq/console/internal/db"
	"github.com/spanteq/console/internal/models"
)

const testPassword = "correct-horse-battery"

type testEnv struct {
	app      *fiber.App
	handler  *Handler
	database *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "api.db"), zerolog.Nop())
	require.NoError(t, err)

	handler := NewHandler(database, "test-secret", time.Hour, zerolog.Nop())
	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testEnv{app: app, handler: handler, database: database}
}

func (env *testEnv) createUser(t *testing.T, email string, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Test " + role,
		Role:         role,
	}
	require.NoError(t, env.database.Create(&user).Error)
	return user
}

func (env *testEnv) tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := env.handler.issueToken(user)
	require.NoError(t, err)
	return token
}

func (env *testEnv) request(t *testing.T, method string, path string, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
