package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMailSender struct {
	sendFn func(ctx context.Context, request models.ContactRequest) error
}

func (m *mockMailSender) SendContactEmail(ctx context.Context, request models.ContactRequest) error {
	if m.sendFn != nil {
		return m.sendFn(ctx, request)
	}
	return nil
}

func validContactRequest() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to discuss a potential project with you.",
	}
}

func TestContactSend_Success(t *testing.T) {
	var sent models.ContactRequest
	mail := &mockMailSender{sendFn: func(_ context.Context, request models.ContactRequest) error {
		sent = request
		return nil
	}}
	svc := NewContactService(mail, config.Mail{ResendAPIKey: "re_test"}, logger.Nop())

	resp, err := svc.Send(context.Background(), validContactRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "jane@example.com", sent.Email)
}

func TestContactSend_TrimsWhitespace(t *testing.T) {
	var sent models.ContactRequest
	mail := &mockMailSender{sendFn: func(_ context.Context, request models.ContactRequest) error {
		sent = request
		return nil
	}}
	svc := NewContactService(mail, config.Mail{ResendAPIKey: "re_test"}, logger.Nop())

	request := validContactRequest()
	request.Name = "  Jane Visitor  "
	_, err := svc.Send(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "Jane Visitor", sent.Name)
}

func TestContactSend_Validation(t *testing.T) {
	svc := NewContactService(&mockMailSender{}, config.Mail{ResendAPIKey: "re_test"}, logger.Nop())

	tests := []struct {
		name   string
		mutate func(*models.ContactRequest)
	}{
		{"name too short", func(r *models.ContactRequest) { r.Name = "J" }},
		{"name too long", func(r *models.ContactRequest) { r.Name = strings.Repeat("a", 101) }},
		{"bad email", func(r *models.ContactRequest) { r.Email = "not-an-email" }},
		{"empty email", func(r *models.ContactRequest) { r.Email = "" }},
		{"subject too short", func(r *models.ContactRequest) { r.Subject = "Hey" }},
		{"subject too long", func(r *models.ContactRequest) { r.Subject = strings.Repeat("s", 201) }},
		{"message too short", func(r *models.ContactRequest) { r.Message = "Hi there" }},
		{"message too long", func(r *models.ContactRequest) { r.Message = strings.Repeat("m", 2001) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validContactRequest()
			tt.mutate(&request)
			_, err := svc.Send(context.Background(), request)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestContactSend_DemoMode(t *testing.T) {
	mail := &mockMailSender{sendFn: func(context.Context, models.ContactRequest) error {
		t.Fatal("mail sender must not be called in demo mode")
		return nil
	}}
	svc := NewContactService(mail, config.Mail{}, logger.Nop())

	resp, err := svc.Send(context.Background(), validContactRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "demo mode")
}

func TestContactSend_DeliveryFailure(t *testing.T) {
	mail := &mockMailSender{sendFn: func(context.Context, models.ContactRequest) error {
		return errors.New("provider unavailable")
	}}
	svc := NewContactService(mail, config.Mail{ResendAPIKey: "re_test"}, logger.Nop())

	_, err := svc.Send(context.Background(), validContactRequest())
	assert.ErrorIs(t, err, ErrMailDeliveryFailed)
}
