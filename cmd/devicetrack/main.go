package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devicetrack/internal/config"
	httpapi "devicetrack/internal/http"
	"devicetrack/internal/logger"
	"devicetrack/internal/repository"
	"devicetrack/internal/service"
	"devicetrack/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "devicetrack")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := os.MkdirAll(cfg.Database.DataDir, 0o755); err != nil {
		log.Fatal("create data dir failed", zap.String("dir", cfg.Database.DataDir), zap.Error(err))
	}

	st, err := store.Open(store.Options{
		Path:            cfg.Database.Path(),
		DisableWAL:      cfg.Database.DisableWAL,
		BusyTimeoutMS:   cfg.Database.BusyTimeoutMS,
		RecreateOnStart: cfg.Database.RecreateOnStart,
	})
	if err != nil {
		log.Fatal("open store failed", zap.String("path", cfg.Database.Path()), zap.Error(err))
	}

	if cfg.Seed.SampleData {
		if err := repository.SeedSampleData(context.Background(), st.DB()); err != nil {
			log.Warn("sample data seeding failed", zap.Error(err))
		}
	}

	devices := repository.NewSQLiteDevicesRepo(st.DB())
	staff := repository.NewSQLiteStaffRepo(st.DB())
	wards := repository.NewSQLiteWardsRepo(st.DB())

	router := httpapi.NewRouter(log)
	router.RegisterDeviceRoutes(httpapi.NewDeviceHandler(devices, log))
	router.RegisterStaffRoutes(httpapi.NewStaffHandler(staff, log))
	router.RegisterWardRoutes(httpapi.NewWardHandler(wards, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
		}
	}

	// In-flight requests get 5 seconds to finish, then the store closes.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
	if err := st.Close(); err != nil {
		log.Warn("store close failed", zap.Error(err))
	}
}
