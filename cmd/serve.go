package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/config"
	"github.com/Haston00/DABO/internal/schedstore"
	"github.com/Haston00/DABO/internal/schedstore/postgres"
	"github.com/Haston00/DABO/internal/server"
	"github.com/Haston00/DABO/internal/telemetry"
	"github.com/Haston00/DABO/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for computing and storing schedules",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default: configured listen_addr)")
	serveCmd.Flags().String("database-url", "", "Postgres connection URL (default: in-memory store)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.ListenAddr
	}
	dbURL, _ := cmd.Flags().GetString("database-url")
	if dbURL == "" {
		dbURL = cfg.DatabaseURL
	}

	var store schedstore.Store
	if dbURL != "" {
		pool, err := pgxpool.New(cmd.Context(), dbURL)
		if err != nil {
			printer.Error(fmt.Sprintf("failed to connect to database: %v", err))
			return err
		}
		defer pool.Close()
		store = postgres.New(pool)
		printer.Info("using postgres store")
	} else {
		store = schedstore.NewMemStore()
		printer.Info("no database configured, schedules are kept in memory")
	}

	if err := store.CreateSchema(cmd.Context()); err != nil {
		printer.Error(fmt.Sprintf("failed to create schema: %v", err))
		return err
	}

	emitter, err := openEmitter(cfg)
	if err != nil {
		printer.Error(err.Error())
	}
	defer emitter.Close()
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindServed,
		Data:      map[string]any{"addr": addr},
	})

	app := server.New(store)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		printer.Info("\nshutting down...")
		_ = app.Shutdown()
	}()

	printer.Info(fmt.Sprintf("listening on %s", addr))
	if err := app.Listen(addr); err != nil {
		printer.Error(err.Error())
		return err
	}
	return nil
}
