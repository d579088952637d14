package main

import (
	"flag"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfray/internal/config"
	"github.com/efreeman/hexfray/internal/logger"
	"github.com/efreeman/hexfray/internal/server"
	"github.com/efreeman/hexfray/internal/session"
	"github.com/efreeman/hexfray/pkg/hexfray"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger.Init(*debug)
	cfg := config.Load()

	s, err := session.NewSetup().
		SetPlayers(hexfray.NewPlayers(cfg.Players)).
		SetMoveLimit(cfg.MoveLimit).
		SetSeed(cfg.Seed).
		GenBoard(cfg.Columns, cfg.Rows).
		Session()
	if err != nil {
		log.Fatal().Err(err).Msg("Session setup failed")
	}

	hub := server.NewHub()
	go hub.Run()

	srv := server.New(s, hub)
	log.Info().
		Str("addr", cfg.Addr).
		Int("columns", cfg.Columns).
		Int("rows", cfg.Rows).
		Int("players", cfg.Players).
		Msg("hexfray watch server starting")
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe failed")
	}
}
