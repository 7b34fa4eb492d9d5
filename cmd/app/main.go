package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dealership/cmd"
	httpin "dealership/internal/adapters/in/http"
	"dealership/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	app := &cli.App{
		Name:  "dealership",
		Usage: "car dealership back office",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "optional file with environment variables",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "apply migrations, then run the HTTP API and scheduled jobs",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending schema migrations and exit",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (cmd.Config, error) {
	return cmd.LoadConfig(c.String("env-file"))
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err := postgres.Migrate(cfg.DatabaseURL()); err != nil {
		return err
	}
	newLogger(cfg.LogLevel).Info("Migrations applied")
	return nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)

	if err := postgres.Migrate(cfg.DatabaseURL()); err != nil {
		return err
	}

	gormDB, err := gorm.Open(gormpg.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	root := cmd.NewCompositionRoot(cfg, gormDB, logger)

	e, err := httpin.NewEcho(root.HTTPServer())
	if err != nil {
		return err
	}

	jobManager := root.JobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startWebServer(ctx, e, cfg, logger)
}

func startWebServer(ctx context.Context, e *echo.Echo, cfg cmd.Config, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", cfg.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
