// Package adapter contains clients for external services. Currently that is
// the Resend HTTP API, used to relay contact form submissions.
package adapter

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/models"
	"github.com/go-resty/resty/v2"
)

// resendSender is the unauthenticated-domain sender address Resend accepts
// for accounts without a verified domain.
const resendSender = "Portfolio Contact <onboarding@resend.dev>"

const resendRequestTimeout = 15 * time.Second

// resendEmailRequest is the payload for POST /emails.
// https://resend.com/docs/api-reference/emails/send-email
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendEmailResponse struct {
	ID string `json:"id"`
}

// ResendClient delivers contact form submissions through the Resend API.
// It satisfies the mail sender contract of the contact service.
type ResendClient struct {
	client       *resty.Client
	contactEmail string
	logger       *logger.Logger
}

// NewResendClient constructs a Resend API client from mail configuration.
func NewResendClient(cfg config.Mail, logger *logger.Logger) *ResendClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(resendRequestTimeout).
		SetAuthToken(cfg.ResendAPIKey)

	return &ResendClient{
		client:       cli,
		contactEmail: cfg.ContactEmail,
		logger:       logger,
	}
}

// SendContactEmail relays one contact form submission to the configured
// contact address. The visitor's address goes into Reply-To so the owner
// can answer directly.
func (r *ResendClient) SendContactEmail(ctx context.Context, request models.ContactRequest) error {
	payload := resendEmailRequest{
		From:    resendSender,
		To:      []string{r.contactEmail},
		ReplyTo: request.Email,
		Subject: fmt.Sprintf("Portfolio Contact: %s", request.Subject),
		HTML:    renderContactEmail(request),
	}

	var result resendEmailResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&result).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	if resp.IsError() {
		r.logger.Error().
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("resend api rejected email")
		return fmt.Errorf("resend api returned status %d", resp.StatusCode())
	}

	r.logger.Info().Str("email_id", result.ID).Msg("contact email sent")
	return nil
}

func renderContactEmail(request models.ContactRequest) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(request.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(request.Email))
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(request.Subject))
	message := strings.ReplaceAll(html.EscapeString(request.Message), "\n", "<br>")
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p><p>%s</p>", message)
	return b.String()
}
