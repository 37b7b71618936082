package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	nmnats "github.com/knapscen/notifymail/internal/adapter/nats"
	"github.com/knapscen/notifymail/internal/adapter/smtp"
	"github.com/knapscen/notifymail/internal/config"
	"github.com/knapscen/notifymail/internal/logger"
	"github.com/knapscen/notifymail/internal/render"
	"github.com/knapscen/notifymail/internal/service"
)

func main() {
	slog.SetDefault(logger.New(config.Defaults().Logging))

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	slog.SetDefault(logger.New(cfg.Logging))

	slog.Info("config loaded",
		"template", cfg.Template,
		"smtp_server", cfg.SMTP.Host,
		"nats_subject", cfg.NATS.Subject,
	)

	nctx, err := cfg.NotificationContext()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	sender := smtp.New(smtp.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		User:      cfg.SMTP.User,
		Password:  cfg.SMTP.Password,
		TLSPolicy: cfg.SMTP.TLSPolicy,
		Timeout:   cfg.SMTP.Timeout,
	})

	bus := nmnats.New(nmnats.Config{
		URL:            cfg.NATS.URL,
		User:           cfg.NATS.User,
		Password:       cfg.NATS.Password,
		ConnectTimeout: cfg.NATS.ConnectTimeout,
		PublishTimeout: cfg.NATS.PublishTimeout,
	})

	svc := service.NewNotificationService(renderer, sender, bus, cfg.SMTP.From, cfg.NATS.Subject)

	return svc.Process(context.Background(), nctx)
}
