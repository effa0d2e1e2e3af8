package service

import (
	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContentService ContentService
	ContactService ContactService
	StatusService  StatusService
}

func NewServices(storages store.Storages, mail MailSender, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(cfg.Auth, logger),
		ContentService: NewContentService(storages.Content, logger),
		ContactService: NewContactService(mail, cfg.Mail, logger),
		StatusService:  NewStatusService(storages, cfg, logger),
	}
}
