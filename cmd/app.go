package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"driver-buddy/config"
	"driver-buddy/internal/app/service"
	"driver-buddy/internal/domain"
	"driver-buddy/internal/repository"
	"driver-buddy/internal/repository/postgres"
	"driver-buddy/internal/repository/sqlite"
	"driver-buddy/pkg/workerpool"
)

// app is the wired service graph shared by every command.
type app struct {
	cfg     *config.Config
	db      *sql.DB
	cloud   *pgxpool.Pool
	workers *workerpool.WorkerPool

	drivers  *service.DriverService
	settings *service.SettingsService
	pay      *service.PayService
	time     *service.TimeService
	export   *service.ExportService
	async    *service.AsyncService
}

func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, db: db}

	var cloud domain.DataStore
	if cfg.CloudEnabled() {
		pool, err := postgres.NewPool(ctx, cfg.CloudDSN)
		if err != nil {
			db.Close()
			return nil, err
		}
		a.cloud = pool
		cloud = postgres.NewDocumentStore(pool, postgres.DefaultTimeout)
		log.Println("[init] cloud store connected")
	}

	settingsRepo := sqlite.NewSqliteSettingsRepo(db)
	store := repository.NewSelector(settingsRepo, sqlite.NewStore(db), cloud)

	a.workers = workerpool.NewWorkerPool(cfg.Pool.Workers, cfg.Pool.QueueSize)
	a.async = service.NewAsyncService(a.workers)
	a.drivers = service.NewDriverService(sqlite.NewSqliteDriverRepo(db))
	a.settings = service.NewSettingsService(settingsRepo)
	a.pay = service.NewPayService(store, a.settings)
	a.time = service.NewTimeService(store, store)
	a.export = service.NewExportService(a.pay)
	return a, nil
}

func (a *app) Close() {
	a.workers.Close()
	if a.cloud != nil {
		a.cloud.Close()
	}
	if err := a.db.Close(); err != nil {
		log.Printf("[shutdown] close sqlite: %v", err)
	}
}
