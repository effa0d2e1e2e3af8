package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/models"
)

// Field length limits for contact form submissions.
const (
	contactNameMin    = 2
	contactNameMax    = 100
	contactSubjectMin = 5
	contactSubjectMax = 200
	contactMessageMin = 10
	contactMessageMax = 2000
)

// contactService validates contact form submissions and relays them through
// the configured MailSender. With no API key configured it runs in demo
// mode: submissions are accepted and logged, nothing is sent.
type contactService struct {
	mail     MailSender
	demoMode bool
	logger   *logger.Logger
}

func NewContactService(mail MailSender, cfg config.Mail, logger *logger.Logger) ContactService {
	return &contactService{
		mail:     mail,
		demoMode: cfg.ResendAPIKey == "",
		logger:   logger,
	}
}

// Send validates a submission and delivers it.
//
// Returns ErrInvalidDataProvided (wrapped with a field-specific message) when
// validation fails, ErrMailDeliveryFailed when the provider rejects the
// message, and a success response otherwise.
func (c *contactService) Send(ctx context.Context, request models.ContactRequest) (models.ContactResponse, error) {
	log := logger.FromContext(ctx)

	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.TrimSpace(request.Email)
	request.Subject = strings.TrimSpace(request.Subject)
	request.Message = strings.TrimSpace(request.Message)

	if err := validateContactRequest(request); err != nil {
		log.Warn().Err(err).Msg("contact form validation failed")
		return models.ContactResponse{}, err
	}

	if c.demoMode {
		log.Info().
			Str("name", request.Name).
			Str("subject", request.Subject).
			Msg("contact form submission accepted in demo mode, no mail sent")
		return models.ContactResponse{
			Success: true,
			Message: "Message received (demo mode: email delivery is not configured)",
		}, nil
	}

	if err := c.mail.SendContactEmail(ctx, request); err != nil {
		log.Err(err).Msg("contact mail delivery failed")
		return models.ContactResponse{}, fmt.Errorf("%w: %w", ErrMailDeliveryFailed, err)
	}

	return models.ContactResponse{
		Success: true,
		Message: "Message sent successfully",
	}, nil
}

func validateContactRequest(request models.ContactRequest) error {
	if l := len(request.Name); l < contactNameMin || l > contactNameMax {
		return fmt.Errorf("%w: name must be between %d and %d characters", ErrInvalidDataProvided, contactNameMin, contactNameMax)
	}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidDataProvided)
	}
	if l := len(request.Subject); l < contactSubjectMin || l > contactSubjectMax {
		return fmt.Errorf("%w: subject must be between %d and %d characters", ErrInvalidDataProvided, contactSubjectMin, contactSubjectMax)
	}
	if l := len(request.Message); l < contactMessageMin || l > contactMessageMax {
		return fmt.Errorf("%w: message must be between %d and %d characters", ErrInvalidDataProvided, contactMessageMin, contactMessageMax)
	}
	return nil
}
