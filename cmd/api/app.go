package main

import (
	"context"
	"fmt"

	"fintech-directory/internal/config"
	"fintech-directory/internal/domain/notification"
	"fintech-directory/internal/infrastructure/db"
	"fintech-directory/internal/infrastructure/mailer"
	"fintech-directory/internal/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds what every subcommand needs: config, logger and database.
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return &app{cfg: cfg, log: log, db: gdb}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.log.Sync()
}

func (a *app) pingDB(ctx context.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// mailSender picks the transport for MAIL_DRIVER. The returned closer is never nil.
func mailSender(cfg *config.Config, log *zap.Logger) (notification.Sender, func() error, error) {
	noop := func() error { return nil }
	switch cfg.MailDriver {
	case config.MailDriverResend:
		return mailer.NewResendSender(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.MailTimeout()), noop, nil
	case config.MailDriverKafka:
		k := mailer.NewKafkaSender(cfg.KafkaBrokers, cfg.KafkaMailTopic)
		return k, k.Close, nil
	case config.MailDriverLog, "":
		return mailer.NewLogSender(log), noop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported mail driver %q", cfg.MailDriver)
	}
}
