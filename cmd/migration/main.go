package main

import (
	"bufio"
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/contact-book/internal/config"
	"gitlab.com/dirk.krummacker/contact-book/internal/store"
)

// Usage example on the command line:
// > DB_DRIVER=mysql DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 go run main.go
// > SQLITE_PATH=/tmp/contacts.db go run main.go -file=../../scripts/testdata.sql
func main() {
	filePtr := flag.String("file", "", "the sql file to execute instead of the built-in schema")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("could not load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.LogLevel)

	ctx := context.Background()
	db, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Error("could not open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if *filePtr == "" {
		err = store.Migrate(ctx, db)
	} else {
		err = executeFile(ctx, db, *filePtr)
	}
	if err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("migration done", slog.String("driver", cfg.Driver))
}

// executeFile runs the statements of a SQL file one by one. A statement ends with the line that
// contains a semicolon.
func executeFile(ctx context.Context, db *sqlx.DB, path string) error {
	readFile, err := os.Open(path) // nosemgrep
	if err != nil {
		return err
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for fileScanner.Scan() {
		line := fileScanner.Text()
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			if _, err := db.ExecContext(ctx, builder.String()); err != nil {
				return err
			}
			builder = strings.Builder{}
		}
	}
	return fileScanner.Err()
}
