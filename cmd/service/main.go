package main

import (
	"context"
	"log/slog"
	"os"

	"gitlab.com/dirk.krummacker/contact-book/internal/config"
	"gitlab.com/dirk.krummacker/contact-book/internal/repo"
	"gitlab.com/dirk.krummacker/contact-book/internal/service"
	"gitlab.com/dirk.krummacker/contact-book/internal/store"
)

// Usage example on the command line:
// > PORT=8080 DB_DRIVER=mysql DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
// > PORT=8080 SQLITE_PATH=/tmp/contacts.db go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("could not load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("service stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	db, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(ctx, db); err != nil {
		return err
	}

	metadata, err := repo.NewSQLMetadataRepo(ctx, db, logger)
	if err != nil {
		return err
	}
	contacts, err := repo.NewSQLContactRepo(ctx, db, metadata, logger)
	if err != nil {
		return err
	}

	router := service.New(contacts, metadata, logger).SetupHttpRouter(cfg.GinLogging)
	logger.Info("contact book listening", slog.String("port", cfg.Port), slog.String("driver", cfg.Driver))
	return router.Run(":" + cfg.Port)
}
