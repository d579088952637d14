// Package console runs a game on the command line: it prints the board
// each turn, reads choice numbers from the player and lets AI seats pick
// their moves from a scored tree.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfray/internal/session"
	"github.com/efreeman/hexfray/pkg/hexfray"
)

// Scoring selects how AI seats expand the tree before choosing.
type Scoring struct {
	// Horizon bounds the expansion by depth when positive.
	Horizon int
	// InsertBudget bounds the expansion by inserted boards when Horizon
	// is zero.
	InsertBudget int
}

// BestChoice returns the index of the highest-scoring choice under the
// destination-major, closer-is-better order. Unscored choices count as
// (0,0); the first of equals wins.
func BestChoice(choices []*hexfray.Choice) int {
	best := 0
	for i := 1; i < len(choices); i++ {
		if choices[i].ScoreOrDefault().Beats(choices[best].ScoreOrDefault()) {
			best = i
		}
	}
	return best
}

// Play drives the session until the game ends or the player quits. AI
// seats score the tree and advance themselves; human seats are prompted
// with choices 1..N plus 0 to quit. Returns nil on a quit or a finished
// game.
func Play(s *session.Session, aiSeats map[hexfray.Player]bool, scoring Scoring, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		state := s.CurrentTurn()
		printState(out, state)

		switch state.Progression().Kind() {
		case session.GameOverWinner:
			fmt.Fprintf(out, "Player %s wins!\n", state.Progression().Winner())
			return nil
		case session.GameOverStalemate:
			glyphs := make([]string, 0, len(state.Progression().Stalemated()))
			for _, p := range state.Progression().Stalemated() {
				glyphs = append(glyphs, p.String())
			}
			fmt.Fprintf(out, "Stalemate between %s.\n", strings.Join(glyphs, ", "))
			return nil
		}

		current := state.Board().Players().Current()
		if aiSeats[current] {
			index := aiChoose(s, scoring)
			action := s.CurrentTurn().Choices()[index].Action()
			fmt.Fprintf(out, "Player %s plays: %s\n", current, action)
			if _, err := s.Advance(index); err != nil {
				return fmt.Errorf("ai advance: %w", err)
			}
			continue
		}

		index, quit, err := promptChoice(reader, out, state.Choices())
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(out, "Quitting.")
			return nil
		}
		if _, err := s.Advance(index); err != nil {
			return fmt.Errorf("advance: %w", err)
		}
	}
}

func aiChoose(s *session.Session, scoring Scoring) int {
	var state *session.State
	if scoring.Horizon > 0 {
		state = s.ScoreWithDepthHorizon(scoring.Horizon)
	} else {
		state = s.ScoreWithInsertBudget(scoring.InsertBudget)
	}
	index := BestChoice(state.Choices())
	log.Debug().
		Int("choice", index).
		Str("score", state.Choices()[index].ScoreOrDefault().String()).
		Msg("ai chose")
	return index
}

func printState(out io.Writer, state *session.State) {
	if last := state.Progression().LastAttack().String(); last != "" {
		fmt.Fprintln(out, last)
	}
	for _, step := range state.Traversal() {
		fmt.Fprintf(out, "Auto-played: %s\n", step.Choice.Action())
	}
	fmt.Fprintln(out, state.Board())
}

// promptChoice lists the choices and reads until it gets a number in
// 0..N. Bad lines re-prompt; a closed input quits.
func promptChoice(reader *bufio.Reader, out io.Writer, choices []*hexfray.Choice) (int, bool, error) {
	for {
		fmt.Fprintln(out, "Movement options, or 0 to quit:")
		for i, choice := range choices {
			fmt.Fprintf(out, "%d. %s\n", i+1, choice)
		}
		fmt.Fprint(out, "> ")

		line, err := reader.ReadString('\n')
		if err == io.EOF && strings.TrimSpace(line) == "" {
			return 0, true, nil
		}
		if err != nil && err != io.EOF {
			return 0, false, fmt.Errorf("read choice: %w", err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < 0 || n > len(choices) {
			fmt.Fprintln(out, "Invalid choice, try again.")
			if err == io.EOF {
				return 0, true, nil
			}
			continue
		}
		if n == 0 {
			return 0, true, nil
		}
		return n - 1, false, nil
	}
}
