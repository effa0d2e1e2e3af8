package service

import (
	"context"
	"time"

	"github.com/Oisamaye1/myportfolio/internal/config"
	"github.com/Oisamaye1/myportfolio/internal/logger"
	"github.com/Oisamaye1/myportfolio/internal/store"
	"github.com/Oisamaye1/myportfolio/models"
)

const statusPingTimeout = 3 * time.Second

// statusService reports deployment health: how far database configuration
// got (DSN present, DSN valid, connection live) and whether outbound mail
// is configured.
type statusService struct {
	storages store.Storages
	cfg      config.StructuredConfig
	logger   *logger.Logger
}

func NewStatusService(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) StatusService {
	return &statusService{
		storages: storages,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *statusService) DatabaseStatus(ctx context.Context) models.DatabaseStatus {
	status := models.DatabaseStatus{
		Timestamp:   time.Now().UTC(),
		Environment: s.cfg.Server.Environment,
		HasDSN:      s.cfg.Storage.DB.DSN != "",
		IsValid:     s.cfg.Storage.DB.Valid(),
	}

	if s.storages.DB == nil {
		status.Error = "database is not configured, serving static content"
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, statusPingTimeout)
	defer cancel()

	if err := s.storages.DB.PingContext(pingCtx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database status ping failed")
		status.Error = err.Error()
		return status
	}

	status.CanConnect = true
	status.Connected = true
	return status
}

func (s *statusService) EmailStatus(ctx context.Context) models.EmailStatus {
	return models.EmailStatus{
		HasResendAPIKey: s.cfg.Mail.ResendAPIKey != "",
	}
}
