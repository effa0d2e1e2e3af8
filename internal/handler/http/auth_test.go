package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Oisamaye1/myportfolio/internal/service"
	"github.com/Oisamaye1/myportfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestLogin_Success(t *testing.T) {
	srv := newTestServer(t, testServices{})

	resp := postJSON(t, srv.URL+"/api/auth/login", models.LoginRequest{Username: "admin", Password: "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	require.NotNil(t, body.User)
	assert.Equal(t, "admin", body.User.Username)

	cookie := resp.Header.Get("Set-Cookie")
	assert.Equal(t, "auth-token=signed-token; HttpOnly; Path=/; Max-Age=604800; SameSite=Lax", cookie)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{authenticateFn: func(context.Context, string, string) (models.Identity, error) {
		return models.Identity{}, service.ErrInvalidCredentials
	}}
	srv := newTestServer(t, testServices{auth: auth})

	resp := postJSON(t, srv.URL+"/api/auth/login", models.LoginRequest{Username: "admin", Password: "nope"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Set-Cookie"))
}

func TestLogin_MissingFields(t *testing.T) {
	auth := &mockAuthService{authenticateFn: func(context.Context, string, string) (models.Identity, error) {
		return models.Identity{}, service.ErrInvalidDataProvided
	}}
	srv := newTestServer(t, testServices{auth: auth})

	resp := postJSON(t, srv.URL+"/api/auth/login", models.LoginRequest{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_InvalidJSON(t *testing.T) {
	srv := newTestServer(t, testServices{})

	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogout_ClearsCookie(t *testing.T) {
	srv := newTestServer(t, testServices{})

	resp := postJSON(t, srv.URL+"/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := resp.Header.Get("Set-Cookie")
	assert.Equal(t, "auth-token=; HttpOnly; Path=/; Max-Age=0; SameSite=Lax", cookie)
}

func TestMe_NoCookie(t *testing.T) {
	srv := newTestServer(t, testServices{})

	resp, err := http.Get(srv.URL + "/api/auth/me")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body models.MeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Authenticated)
	assert.Nil(t, body.User)
}

func TestMe_InvalidToken(t *testing.T) {
	auth := &mockAuthService{verifyTokenFn: func(context.Context, string) (models.Identity, error) {
		return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
	}}
	srv := newTestServer(t, testServices{auth: auth})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Cookie", "auth-token=garbage")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body models.MeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Authenticated)
}

func TestMe_ValidSession(t *testing.T) {
	srv := newTestServer(t, testServices{})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Cookie", "auth-token=signed-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.MeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Authenticated)
	require.NotNil(t, body.User)
	assert.Equal(t, "admin", body.User.Username)
}
