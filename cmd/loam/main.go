package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"loam/internal/auth"
	"loam/internal/database"
	"loam/internal/web"
)

func main() {
	var (
		dsn        = flag.String("dsn", "loam.db", "The database connection string.")
		addr       = flag.String("addr", ":8080", "The address to listen on.")
		sessionKey = flag.String("session-key", os.Getenv("LOAM_SESSION_KEY"), "Session cookie signing key (at least 32 characters).")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	db, err := database.New(*dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}
	log.Info().Msg("database migrated")

	handleAdminCommands(db)

	if len(flag.Args()) > 0 && flag.Arg(0) == "admin" {
		os.Exit(0)
	}

	if err := auth.InitSessionStore(*sessionKey); err != nil {
		log.Fatal().Err(err).Msg("invalid session key")
	}

	if err := os.MkdirAll("uploads", 0o755); err != nil {
		log.Fatal().Err(err).Msg("error creating uploads directory")
	}

	templates, err := web.ParseTemplates()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing templates")
	}

	srv := web.NewServer(db, templates)

	log.Info().Str("addr", *addr).Msg("starting server")
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
