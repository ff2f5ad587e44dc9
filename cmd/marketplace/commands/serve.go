package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Cheertaboi/marketplace-schema/internal/api"
	"github.com/Cheertaboi/marketplace-schema/internal/api/handlers"
	"github.com/Cheertaboi/marketplace-schema/internal/logging"
	"github.com/Cheertaboi/marketplace-schema/internal/repository"
	"github.com/Cheertaboi/marketplace-schema/internal/service"
)

var serveNoDB bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the schema catalogue and the validation API over HTTP",
	Long: `Serve GET /health, GET /schema, GET /schema/ddl and
POST /validate/{entity}[/batch].

With --no-db the server starts without a database and /health only
reports the process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveNoDB, "no-db", false, "Start without a database connection")
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	var pinger handlers.Pinger
	if !serveNoDB {
		conn, err := openDB(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		store := repository.NewStore(conn)
		defer store.Close()
		pinger = store
	}

	handler := api.NewRouter(logger, service.NewValidationService(logger), pinger)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("http server shutdown", "err", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting marketplace schema service", "addr", cfg.HTTP.Addr, "driver", cfg.DB.Driver, "db", !serveNoDB)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	<-idleConnsClosed
	logger.Info("server stopped")
	return nil
}
