package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ibeloyar/taskmarket/internal/config"
	"github.com/ibeloyar/taskmarket/internal/notify"
	"github.com/ibeloyar/taskmarket/internal/repository/pg"
	"github.com/ibeloyar/taskmarket/internal/service"
	"github.com/ibeloyar/taskmarket/pgk/logger"
	"github.com/ibeloyar/taskmarket/pgk/password"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/taskmarket/internal/controller/http"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	storage, err := pg.New(cfg.DatabaseURI)
	if err != nil {
		return err
	}

	emitter := notify.New(storage, lg)

	s := service.New(
		storage,
		password.New(cfg.PassCost),
		emitter,
		cfg.TokenLifetime,
		cfg.SecretKey,
		cfg.WithdrawMinimum,
	)

	router := chi.NewRouter()
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, storage, lg)
	router = httpController.InitRoutes(router, handlers, cfg.SecretKey)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	emitter.Shutdown(shutdownTimeout)

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
