package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/mvidmar/itemsvc/internal/api"
	"github.com/mvidmar/itemsvc/internal/config"
	"github.com/mvidmar/itemsvc/internal/db"
)

func main() {
	cfg := config.FromEnv()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to SQLite database file")
	flag.IntVar(&cfg.PageLimit, "page-limit", cfg.PageLimit, "default page size for the list endpoint")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("opening database")
	}
	defer database.Close()

	// Migrations are idempotent, so this also initializes a fresh database.
	if err := db.Migrate(database); err != nil {
		logger.Fatal().Err(err).Msg("migrating database")
	}

	var handler http.Handler = api.NewRouter(database, cfg)
	handler = api.Recover(logger)(handler)
	handler = api.RequestLogger(logger)(handler)

	logger.Info().Str("addr", cfg.Addr).Str("app", cfg.AppName).Str("version", cfg.Version).Msg("server listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
