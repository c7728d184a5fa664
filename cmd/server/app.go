package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"krishisahay/config"
	"krishisahay/database"
	"krishisahay/pkg/i18n"
	"krishisahay/pkg/logging"
	"krishisahay/pkg/market"
	"krishisahay/pkg/mock"
	"krishisahay/pkg/scheme"

	chatRepoImp "krishisahay/pkg/chat/repositoryImp"
	chatSvc "krishisahay/pkg/chat/service"
	chatSvcImp "krishisahay/pkg/chat/serviceImp"

	dashSvc "krishisahay/pkg/dashboard/service"
	dashSvcImp "krishisahay/pkg/dashboard/serviceImp"
	"krishisahay/pkg/feed"

	diagRepoImp "krishisahay/pkg/diagnosis/repositoryImp"
	diagSvc "krishisahay/pkg/diagnosis/service"
	diagSvcImp "krishisahay/pkg/diagnosis/serviceImp"

	schemeRepo "krishisahay/pkg/scheme/repository"
	schemeRepoImp "krishisahay/pkg/scheme/repositoryImp"
)

// app holds everything serve wires together.
type app struct {
	cfg   config.AppConfig
	log   *zap.Logger
	db    *gorm.DB
	tr    *i18n.Translator
	gen   *mock.Generator
	sched *feed.Scheduler

	schemes schemeRepo.SchemeRepository
	chat    chatSvc.ChatService
	diag    diagSvc.DiagnosisService
	dash    dashSvc.DashboardService
}

// translator returns the builtin table plus the optional override file.
func translator(cfg config.AppConfig) (*i18n.Translator, error) {
	tr := i18n.Default()
	if cfg.TranslationsPath != "" {
		if err := tr.LoadOverrides(cfg.TranslationsPath); err != nil {
			return nil, err
		}
	}
	return tr, nil
}

func generator(cfg config.AppConfig) (*mock.Generator, error) {
	catalog, err := market.LoadCatalog(cfg.CatalogCSV, cfg.CatalogXLSX)
	if err != nil {
		return nil, fmt.Errorf("commodity catalog: %w", err)
	}
	return mock.New(catalog, cfg.FarmLocation, cfg.RandSeed, nil), nil
}

func newApp(ctx context.Context, cfg config.AppConfig, log *zap.Logger) (*app, error) {
	tr, err := translator(cfg)
	if err != nil {
		return nil, err
	}
	gen, err := generator(cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	schemes := schemeRepoImp.New(db)
	list := scheme.DefaultCatalog
	if cfg.SchemesPath != "" {
		if list, err = scheme.LoadFile(cfg.SchemesPath); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("scheme catalog: %w", err)
		}
	}
	if err := schemes.Seed(ctx, list); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("seed schemes: %w", err)
	}
	log.Info("schemes seeded", zap.Int("count", len(list)), zap.String("source", sourceName(cfg.SchemesPath)))

	sched := feed.NewScheduler(logging.CronLogger(log))
	return &app{
		cfg:     cfg,
		log:     log,
		db:      db,
		tr:      tr,
		gen:     gen,
		sched:   sched,
		schemes: schemes,
		chat: chatSvcImp.New(chatRepoImp.New(db), chatSvcImp.Delays{
			Expert:   cfg.ExpertDelay,
			Verified: cfg.VerifiedDelay,
		}, log.Named("chat")),
		diag: diagSvcImp.New(diagRepoImp.New(db), cfg.DiagnosisDelay, log.Named("diagnosis")),
		dash: dashSvcImp.New(gen, schemes, cfg.Feeds, sched, log.Named("feed")),
	}, nil
}

func (a *app) close() {
	if err := database.Close(a.db); err != nil {
		a.log.Warn("close database", zap.Error(err))
	}
}

func sourceName(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
