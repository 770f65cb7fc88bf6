package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-app/backend/config"
	"news-app/backend/global"
	"news-app/backend/initialize"
	"news-app/backend/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to the YAML config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Str("config", *configPath).Msg("startup failed")
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.Watch(*configPath, func(cfg *config.Config) {
		initialize.SetLevel(cfg.Log.Level)
		global.Logger.Info().Str("level", cfg.Log.Level).Msg("config reloaded")
	}, func(err error) {
		global.Logger.Warn().Err(err).Msg("ignoring invalid config change")
	}); err != nil {
		global.Logger.Warn().Err(err).Msg("config watch disabled")
	}

	go app.Sweeper.Run(ctx)

	srv := server.NewHTTPServer(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router)
	errc := srv.Start()

	select {
	case err := <-errc:
		if err != nil {
			global.Logger.Error().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		global.Logger.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		global.Logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
