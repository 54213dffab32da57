package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"roulette_tracker/internal/config"

	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// Options Пути и переопределения из командной строки
type Options struct {
	EnvFile    string
	ConfigPath string
	LogLevel   string
}

type App struct {
	ServiceProvider *ServiceProvider
	opts            Options
}

func NewApp(opts Options) *App {
	return &App{opts: opts}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.opts.ConfigPath)
}

// Run Поднимает панель и работает до отмены ctx
func (s *App) Run(ctx context.Context) error {
	err := config.Load(s.opts.EnvFile)
	if err != nil {
		log.Warn().Err(err).Str("path", s.opts.EnvFile).Msg("env file not loaded")
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	if err := setupLogging(s.ServiceProvider.LogCfg(), s.opts.LogLevel); err != nil {
		return err
	}

	go s.ServiceProvider.Hub().Run(ctx)

	if err := s.ServiceProvider.PanelService(ctx).Bootstrap(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("address", srv.Addr).
			Str("storage", s.ServiceProvider.StorageCfg().Driver()).
			Msg("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
