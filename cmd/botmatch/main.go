package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfray/internal/console"
	"github.com/efreeman/hexfray/internal/logger"
	"github.com/efreeman/hexfray/internal/session"
	"github.com/efreeman/hexfray/pkg/hexfray"
)

// matchResult describes one completed game.
type matchResult struct {
	Game      int      `json:"game"`
	Winner    string   `json:"winner,omitempty"`
	Stalemate []string `json:"stalemate,omitempty"`
	Decisions int      `json:"decisions"`
	Aborted   bool     `json:"aborted,omitempty"`
}

func main() {
	var (
		columns   int
		rows      int
		players   int
		canned    string
		numGames  int
		moveLimit int
		seed      int64
		horizon   int
		maxTurns  int
		jsonOut   bool
		debug     bool
	)

	flag.IntVar(&columns, "columns", 3, "board width")
	flag.IntVar(&rows, "rows", 3, "board height")
	flag.IntVar(&players, "players", 2, "number of players (2-8)")
	flag.StringVar(&canned, "board", "", "canned starting board instead of a random one")
	flag.IntVar(&numGames, "n", 1, "number of games to run")
	flag.IntVar(&moveLimit, "move-limit", session.DefaultMoveLimit, "attacks allowed per turn")
	flag.Int64Var(&seed, "seed", 1, "base seed; game i plays with seed+i")
	flag.IntVar(&horizon, "horizon", 4, "AI expansion depth per decision")
	flag.IntVar(&maxTurns, "max-turns", 2000, "abort a game after this many decisions")
	flag.BoolVar(&jsonOut, "json", false, "output results as JSON")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger.Init(debug)

	results := make([]matchResult, 0, numGames)
	wins := make(map[string]int)
	stalemates := 0

	for i := 0; i < numGames; i++ {
		result, err := playGame(gameConfig{
			columns: columns, rows: rows, players: players, canned: canned,
			moveLimit: moveLimit, seed: seed + int64(i), horizon: horizon,
			maxTurns: maxTurns,
		})
		if err != nil {
			log.Fatal().Err(err).Int("game", i).Msg("Match failed")
		}
		result.Game = i
		results = append(results, result)

		switch {
		case result.Winner != "":
			wins[result.Winner]++
			log.Info().Int("game", i).Str("winner", result.Winner).
				Int("decisions", result.Decisions).Msg("Game won")
		case len(result.Stalemate) > 0:
			stalemates++
			log.Info().Int("game", i).Int("decisions", result.Decisions).Msg("Game stalemated")
		default:
			log.Warn().Int("game", i).Msg("Game aborted at the turn cap")
		}
	}

	if jsonOut {
		if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
			log.Fatal().Err(err).Msg("Result encoding failed")
		}
		return
	}

	fmt.Printf("Games: %d\n", numGames)
	for glyph, n := range wins {
		fmt.Printf("  %s won %d\n", glyph, n)
	}
	fmt.Printf("  stalemates: %d\n", stalemates)
}

type gameConfig struct {
	columns, rows, players int
	canned                 string
	moveLimit              int
	seed                   int64
	horizon                int
	maxTurns               int
}

func playGame(cfg gameConfig) (matchResult, error) {
	setup := session.NewSetup().
		SetPlayers(hexfray.NewPlayers(cfg.players)).
		SetMoveLimit(cfg.moveLimit).
		SetSeed(cfg.seed)

	if cfg.canned != "" {
		fixture, ok := hexfray.CannedBoards()[cfg.canned]
		if !ok {
			return matchResult{}, fmt.Errorf("unknown canned board %q", cfg.canned)
		}
		setup.SetBoard(fixture())
	} else {
		setup.GenBoard(cfg.columns, cfg.rows)
	}

	s, err := setup.Session()
	if err != nil {
		return matchResult{}, err
	}

	var result matchResult
	for turn := 0; ; turn++ {
		state := s.CurrentTurn()
		switch state.Progression().Kind() {
		case session.GameOverWinner:
			result.Winner = state.Progression().Winner().String()
			return result, nil
		case session.GameOverStalemate:
			for _, p := range state.Progression().Stalemated() {
				result.Stalemate = append(result.Stalemate, p.String())
			}
			return result, nil
		}
		if turn >= cfg.maxTurns {
			result.Aborted = true
			return result, nil
		}

		scored := s.ScoreWithDepthHorizon(cfg.horizon)
		if _, err := s.Advance(console.BestChoice(scored.Choices())); err != nil {
			return matchResult{}, err
		}
		result.Decisions++
	}
}
