package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfray/internal/console"
	"github.com/efreeman/hexfray/internal/logger"
	"github.com/efreeman/hexfray/internal/session"
	"github.com/efreeman/hexfray/pkg/hexfray"
)

func main() {
	var (
		columns      int
		rows         int
		players      int
		canned       string
		aiSeats      string
		moveLimit    int
		seed         int64
		horizon      int
		insertBudget int
		debug        bool
	)

	flag.IntVar(&columns, "columns", 3, "board width")
	flag.IntVar(&rows, "rows", 3, "board height")
	flag.IntVar(&players, "players", 2, "number of players (2-8)")
	flag.StringVar(&canned, "board", "", "canned starting board (see -list-boards)")
	flag.StringVar(&aiSeats, "ai", "", "AI seats by glyph, e.g. B or A,B")
	flag.IntVar(&moveLimit, "move-limit", session.DefaultMoveLimit, "attacks allowed per turn")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = random)")
	flag.IntVar(&horizon, "horizon", 4, "AI expansion depth (0 = use -budget)")
	flag.IntVar(&insertBudget, "budget", 2000, "AI expansion insert budget when -horizon is 0")
	listBoards := flag.Bool("list-boards", false, "list canned boards and exit")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger.Init(debug)

	if *listBoards {
		for name := range hexfray.CannedBoards() {
			fmt.Println(name)
		}
		return
	}

	setup := session.NewSetup().
		SetPlayers(hexfray.NewPlayers(players)).
		SetMoveLimit(moveLimit).
		SetSeed(seed)

	if canned != "" {
		fixture, ok := hexfray.CannedBoards()[canned]
		if !ok {
			log.Fatal().Str("board", canned).Msg("Unknown canned board")
		}
		setup.SetBoard(fixture())
	} else {
		setup.GenBoard(columns, rows)
	}

	s, err := setup.Session()
	if err != nil {
		log.Fatal().Err(err).Msg("Session setup failed")
	}

	seats, err := parseSeats(aiSeats, s.CurrentTurn().Board().Players())
	if err != nil {
		log.Fatal().Err(err).Msg("Bad -ai flag")
	}

	if err := console.Play(s, seats, console.Scoring{Horizon: horizon, InsertBudget: insertBudget}, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Game aborted")
	}
}

// parseSeats resolves a comma-separated glyph list against the roster.
func parseSeats(spec string, roster hexfray.Players) (map[hexfray.Player]bool, error) {
	seats := make(map[hexfray.Player]bool)
	if spec == "" {
		return seats, nil
	}
	byGlyph := make(map[string]hexfray.Player)
	for _, p := range roster.Playing() {
		byGlyph[p.String()] = p
	}
	for _, glyph := range strings.Split(spec, ",") {
		glyph = strings.ToUpper(strings.TrimSpace(glyph))
		p, ok := byGlyph[glyph]
		if !ok {
			return nil, fmt.Errorf("no player %q in the game", glyph)
		}
		seats[p] = true
	}
	return seats, nil
}
