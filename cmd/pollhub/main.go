package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/RitishHUB/polling-frountend/internal/client/cli"
	"github.com/RitishHUB/polling-frountend/internal/client/client"
	"github.com/RitishHUB/polling-frountend/internal/client/config"
	"github.com/RitishHUB/polling-frountend/internal/client/repositories/storage"
	"github.com/RitishHUB/polling-frountend/internal/client/services"
	"github.com/RitishHUB/polling-frountend/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	repo, db, err := openStorage(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	if db != nil {
		defer db.Close()
	}

	api, err := client.NewHTTPClient(cfg.APIBaseURL, client.StoredSessionToken(repo), logger)
	if err != nil {
		log.Fatalf("api client: %v", err)
	}

	auth := services.NewAuthService(api, repo, logger)
	if err := auth.Init(ctx); err != nil {
		log.Fatalf("session: %v", err)
	}

	app := cli.NewApp(cli.Options{
		Auth:      auth,
		Polls:     services.NewPollService(api, auth, logger),
		Log:       logger,
		In:        os.Stdin,
		Out:       os.Stdout,
		VoteDelay: cfg.VoteDelay,
	})
	app.Run(ctx)
}

// openStorage keeps the session in SQLite, or in memory only when no path
// is configured.
func openStorage(ctx context.Context, path string) (storage.Repository, *sql.DB, error) {
	if path == "" {
		return storage.NewMemoryRepository(), nil, nil
	}
	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewSQLiteRepository(db), db, nil
}
