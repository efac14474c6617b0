package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/openclinic/hms/internal/config"
	"github.com/openclinic/hms/internal/server"
	"github.com/openclinic/hms/internal/service"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/auth"
	"github.com/openclinic/hms/pkg/logger"
	"github.com/openclinic/hms/pkg/metrics"
	"github.com/openclinic/hms/pkg/tracer"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	collector := metrics.NewCollector("hms", prometheus.DefaultRegisterer)
	jwtManager := auth.NewJWTManager(cfg.JWT)

	st := store.New(store.SystemClock())

	activitySvc := service.NewActivityService(st, log, collector, cfg.Storage.ActivityBufferSize)
	defer activitySvc.Shutdown()

	strict := cfg.Storage.StrictValidation
	svcs := server.Services{
		Auth:          service.NewAuthService(st, jwtManager, activitySvc, log, strict),
		Patients:      service.NewPatientService(st, activitySvc, collector, log, strict),
		Appointments:  service.NewAppointmentService(st, activitySvc, collector, log),
		Records:       service.NewMedicalRecordService(st, activitySvc, log),
		Prescriptions: service.NewPrescriptionService(st, activitySvc, collector, log),
		Staff:         service.NewStaffService(st, activitySvc, log),
		Tasks:         service.NewTaskService(st, activitySvc, collector, log),
	}

	router := server.NewRouter(cfg, log, collector, jwtManager, st, svcs)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}
