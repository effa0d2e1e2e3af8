package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactFixture() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "Line one\nLine two",
	}
}

func TestSendContactEmail_Success(t *testing.T) {
	var got resendEmailRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "email-123"})
	}))
	defer srv.Close()

	client := NewResendClient(config.Mail{
		ResendAPIKey: "re_test_key",
		ContactEmail: "owner@example.com",
		BaseURL:      srv.URL,
	}, logger.Nop())

	err := client.SendContactEmail(context.Background(), contactFixture())
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, []string{"owner@example.com"}, got.To)
	assert.Equal(t, "jane@example.com", got.ReplyTo)
	assert.Equal(t, "Portfolio Contact: Project inquiry", got.Subject)
	assert.Contains(t, got.HTML, "Jane Visitor")
	assert.Contains(t, got.HTML, "Line one<br>Line two")
}

func TestSendContactEmail_EscapesHTML(t *testing.T) {
	var got resendEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"id": "email-123"})
	}))
	defer srv.Close()

	client := NewResendClient(config.Mail{
		ResendAPIKey: "re_test_key",
		ContactEmail: "owner@example.com",
		BaseURL:      srv.URL,
	}, logger.Nop())

	request := contactFixture()
	request.Message = "<script>alert(1)</script>"
	require.NoError(t, client.SendContactEmail(context.Background(), request))

	assert.NotContains(t, got.HTML, "<script>")
	assert.Contains(t, got.HTML, "&lt;script&gt;")
}

func TestSendContactEmail_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewResendClient(config.Mail{
		ResendAPIKey: "re_bad_key",
		ContactEmail: "owner@example.com",
		BaseURL:      srv.URL,
	}, logger.Nop())

	err := client.SendContactEmail(context.Background(), contactFixture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
