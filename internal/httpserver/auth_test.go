package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/tokens"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedUser(models.User{ID: "admin01", Name: "Admin", Email: "admin@example.com", Password: "secret-pass", IsAdmin: true})

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", transport.LoginRequest{ID: "admin01", Password: "secret-pass"})
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.LoginResponse
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, seeded.Idx, resp.UserIdx)
	require.True(t, resp.IsAdmin)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := tokens.AccessClaimsFromToken(resp.AccessToken, env.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "admin01", claims.LoginID)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(models.User{ID: "admin01", Name: "Admin", Email: "admin@example.com", Password: "secret-pass"})

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", transport.LoginRequest{ID: "admin01", Password: "wrong"})
	require.NoError(t, env.Auth.Login(c))
	requireError(t, rec, http.StatusUnauthorized, "invalid id or password")
}

func TestLogin_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", transport.LoginRequest{ID: "nobody", Password: "whatever"})
	require.NoError(t, env.Auth.Login(c))
	requireError(t, rec, http.StatusUnauthorized, "invalid id or password")
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seedUser(models.User{ID: "gone99", Name: "Gone", Email: "gone@example.com", Password: "secret-pass"})
	require.NoError(t, env.DB.Model(&seeded).UpdateColumn("is_active", false).Error)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", transport.LoginRequest{ID: "gone99", Password: "secret-pass"})
	require.NoError(t, env.Auth.Login(c))
	requireError(t, rec, http.StatusForbidden, "account deactivated")
}

func TestLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", transport.LoginRequest{ID: "admin01"})
	require.NoError(t, env.Auth.Login(c))
	requireError(t, rec, http.StatusBadRequest, "invalid body")
}
