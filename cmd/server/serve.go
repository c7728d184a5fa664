package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"krishisahay/config"
	"krishisahay/pkg/logging"
	"krishisahay/pkg/telegram"
	"krishisahay/router"

	chatCtrlImp "krishisahay/pkg/chat/controllerImp"
	dashCtrlImp "krishisahay/pkg/dashboard/controllerImp"
	diagCtrlImp "krishisahay/pkg/diagnosis/controllerImp"
	healthCtrlImp "krishisahay/pkg/health/controllerImp"
	i18nCtrlImp "krishisahay/pkg/i18n/controllerImp"
	schemeCtrlImp "krishisahay/pkg/scheme/controllerImp"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API, the data feeds and the optional Telegram bot",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

// loadLogged loads config and builds the logger, reporting config warnings
// through it.
func loadLogged() (config.AppConfig, *zap.Logger, error) {
	cfg := config.Load()
	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return cfg, nil, err
	}
	for _, w := range cfg.Warnings {
		log.Warn("config", zap.String("detail", w))
	}
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadLogged()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Info("config loaded", zap.Any("config", cfg.Redacted()))

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	router.New(
		e,
		log.Named("http"),
		cfg.DefaultLang,
		dashCtrlImp.New(a.dash),
		i18nCtrlImp.New(a.tr),
		chatCtrlImp.New(a.chat),
		diagCtrlImp.New(a.diag),
		schemeCtrlImp.New(a.schemes),
		healthCtrlImp.NewHealthCtrl(a.db, a.dash),
	)

	a.sched.Start()
	a.dash.Start(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", ":"+cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, telegram.NewReplier(a.chat, cfg.DefaultLang), log.Named("telegram"))
		if err != nil {
			log.Warn("telegram disabled", zap.Error(err))
		} else {
			g.Go(func() error { return bot.Run(gctx) })
		}
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.dash.Stop()
		a.sched.Stop()
		return e.Shutdown(sctx)
	})

	return g.Wait()
}
