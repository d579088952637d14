// Package session drives a game: it owns the expanding state tree,
// collapses forced moves between real decisions, resolves attacks with
// dice rolls and exposes the current decision point to a shell.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/efreeman/hexfray/pkg/hexagon"
	"github.com/efreeman/hexfray/pkg/hexfray"
)

// DefaultMoveLimit caps the attacks a player may chain in one turn.
const DefaultMoveLimit = 6

// ErrNoBoard is returned by Setup.Session when no starting board was
// configured.
var ErrNoBoard = errors.New("no board set")

// ErrInvalidChoice is returned by Advance for an out-of-range index or a
// non-attacking choice. Shells re-prompt on it.
var ErrInvalidChoice = errors.New("invalid choice")

// TreeTooShallowError signals that the state tree has not been expanded
// far enough to serve a lookup; Depth is the horizon that would reach it.
type TreeTooShallowError struct {
	Depth int
}

func (e TreeTooShallowError) Error() string {
	return fmt.Sprintf("state tree too shallow, need depth %d", e.Depth)
}

// LastAttack reports the die rolls that resolved the previous attack.
// The zero value marks the first turn, before any attack.
type LastAttack struct {
	AttackerDice   int
	AttackerRolled int
	DefenderDice   int
	DefenderRolled int
}

func (l LastAttack) String() string {
	if l.AttackerRolled == 0 && l.DefenderRolled == 0 {
		return ""
	}
	if l.AttackerRolled > l.DefenderRolled {
		return fmt.Sprintf(
			"Attacker with %d dice rolled %d beating defender with %d dice who rolled %d.",
			l.AttackerDice, l.AttackerRolled, l.DefenderDice, l.DefenderRolled,
		)
	}
	return fmt.Sprintf(
		"Defender with %d dice rolled %d holding against attacker with %d dice who rolled %d.",
		l.DefenderDice, l.DefenderRolled, l.AttackerDice, l.AttackerRolled,
	)
}

// ProgressionKind states whether play continues or how it ended.
type ProgressionKind int

const (
	// PlayOn: the current player has choices to make.
	PlayOn ProgressionKind = iota
	// GameOverWinner: one player holds the whole grid.
	GameOverWinner
	// GameOverStalemate: nobody can ever attack again.
	GameOverStalemate
)

// Progression is the game status carried by a State.
type Progression struct {
	kind       ProgressionKind
	last       LastAttack
	winner     hexfray.Player
	stalemated []hexfray.Player
}

// Kind returns the progression classification.
func (p Progression) Kind() ProgressionKind { return p.kind }

// LastAttack returns the rolls of the preceding attack; meaningful for
// PlayOn states.
func (p Progression) LastAttack() LastAttack { return p.last }

// Winner returns the winning player of a GameOverWinner state.
func (p Progression) Winner() hexfray.Player { return p.winner }

// Stalemated returns the players locked in a GameOverStalemate.
func (p Progression) Stalemated() []hexfray.Player { return p.stalemated }

// Step records one auto-played forced move.
type Step struct {
	Board  hexfray.Board
	Choice *hexfray.Choice
}

// State is a decision point: the game status, the board, the live
// choices and the forced moves auto-played since the previous decision.
type State struct {
	progression Progression
	traversal   []Step
	board       hexfray.Board
	choices     []*hexfray.Choice
}

// Progression returns the game status.
func (s *State) Progression() Progression { return s.progression }

// Traversal returns the forced moves collapsed into this state.
func (s *State) Traversal() []Step { return s.traversal }

// Board returns the board awaiting a decision.
func (s *State) Board() hexfray.Board { return s.board }

// Choices returns the live choices, scored when a scoring entry point ran.
func (s *State) Choices() []*hexfray.Choice { return s.choices }

// stateFromBoard collapses forced moves starting at board. Single-choice
// passes are consumed: terminal ones finish the game, turnovers and
// knockouts are recorded on the traversal and walked through. A lone
// attack is still presented; forced or not, it is the player's to roll.
func stateFromBoard(board hexfray.Board, tree *hexfray.Tree, outcome LastAttack) (State, error) {
	var traversal []Step
	current := board
	depth := 1

	for {
		choices := tree.FetchChoices(current)
		if choices == nil {
			return State{}, TreeTooShallowError{Depth: depth}
		}

		if len(choices) != 1 {
			return State{
				progression: Progression{kind: PlayOn, last: outcome},
				traversal:   traversal,
				board:       current,
				choices:     choices,
			}, nil
		}

		depth++
		choice := choices[0]
		if choice.Action().IsAttack() {
			return State{
				progression: Progression{kind: PlayOn, last: outcome},
				traversal:   traversal,
				board:       current,
				choices:     choices,
			}, nil
		}

		next := choice.Consequence().Board()
		switch choice.Consequence().Kind() {
		case hexfray.Winner:
			return State{
				progression: Progression{kind: GameOverWinner, winner: next.Players().Current()},
				traversal:   traversal,
				board:       next,
				choices:     choices,
			}, nil
		case hexfray.Stalemate:
			return State{
				progression: Progression{kind: GameOverStalemate, stalemated: next.Players().Playing()},
				traversal:   traversal,
				board:       next,
				choices:     choices,
			}, nil
		case hexfray.GameOver, hexfray.TurnOver:
			traversal = append(traversal, Step{Board: current, Choice: choice})
			current = next
		default:
			panic("single pass choice cannot continue the same turn")
		}
	}
}

// Session is a game in progress. The turn list always holds at least one
// state; the tree grows monotonically as play outruns it, and is rebuilt
// only by the explicit scoring entry points and by Reset.
type Session struct {
	turns     []State
	tree      *hexfray.Tree
	moveLimit int
	rng       *rand.Rand
}

// New starts a session from a board, growing the given tree as needed to
// reach the first decision point.
func New(start hexfray.Board, tree *hexfray.Tree, moveLimit int, rng *rand.Rand) *Session {
	s := &Session{tree: tree, moveLimit: moveLimit, rng: rng}
	s.turns = []State{s.collapse(start, LastAttack{})}
	return s
}

// collapse runs forced-move collapse, appending deeper expansions from
// the board until the tree reaches a decision point.
func (s *Session) collapse(board hexfray.Board, outcome LastAttack) State {
	for {
		state, err := stateFromBoard(board, s.tree, outcome)
		if err == nil {
			return state
		}
		var shallow TreeTooShallowError
		if !errors.As(err, &shallow) {
			panic(err) // stateFromBoard only fails on shallow trees
		}
		log.Debug().Int("depth", shallow.Depth).Msg("growing state tree")
		s.tree.Append(hexfray.BuildDepthBounded(board, shallow.Depth, s.moveLimit))
	}
}

// CurrentTurn returns the live decision point.
func (s *Session) CurrentTurn() *State {
	return &s.turns[len(s.turns)-1]
}

// Turns returns every decision point seen so far, the starting one first.
func (s *Session) Turns() []State { return s.turns }

// MoveLimit returns the per-turn attack cap.
func (s *Session) MoveLimit() int { return s.moveLimit }

// Advance resolves the indexed attack with dice rolls and moves to the
// next decision point. A winning roll advances onto the choice's board; a
// losing roll freezes the attacking tile until its owner's next turn and
// costs the move.
func (s *Session) Advance(index int) (*State, error) {
	state := s.CurrentTurn()
	if index < 0 || index >= len(state.choices) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrInvalidChoice, index, len(state.choices))
	}
	choice := state.choices[index]
	action := choice.Action()
	if !action.IsAttack() {
		return nil, fmt.Errorf("%w: choice %d is not an attack", ErrInvalidChoice, index)
	}

	attackerRoll := s.rollDice(action.AttackerDice())
	defenderRoll := s.rollDice(action.DefenderDice())
	outcome := LastAttack{
		AttackerDice:   action.AttackerDice(),
		AttackerRolled: attackerRoll,
		DefenderDice:   action.DefenderDice(),
		DefenderRolled: defenderRoll,
	}
	log.Debug().
		Int("attackerDice", action.AttackerDice()).
		Int("attackerRolled", attackerRoll).
		Int("defenderDice", action.DefenderDice()).
		Int("defenderRolled", defenderRoll).
		Msg("attack resolved")

	var next hexfray.Board
	if attackerRoll > defenderRoll {
		next = choice.Consequence().Board()
	} else {
		// The attack failed: same board, one move spent, the attacking
		// tile frozen until its owner's next turn.
		from := action.From()
		board := state.board
		frozen := board.Grid().ForkWith(func(c hexagon.Cube, h hexfray.Holding) hexfray.Holding {
			if c == from {
				return hexfray.NewHolding(h.Owner(), h.Dice(), false)
			}
			return h
		})
		next = hexfray.NewBoard(board.Players(), frozen, board.CapturedDice(), board.Moved()+1)
	}

	s.turns = append(s.turns, s.collapse(next, outcome))
	return s.CurrentTurn(), nil
}

// ScoreWithDepthHorizon rebuilds the tree from the current board up to
// horizon layers, scores it and installs the scored choices into the
// current state.
func (s *Session) ScoreWithDepthHorizon(horizon int) *State {
	board := s.CurrentTurn().board
	tree := hexfray.BuildDepthBounded(board, horizon, s.moveLimit)
	return s.installScored(tree)
}

// ScoreWithInsertBudget rebuilds the tree from the current board until
// the insert budget is spent, scores it and installs the scored choices
// into the current state. The first layer ignores the budget so every
// live choice is scored.
func (s *Session) ScoreWithInsertBudget(insertBudget int) *State {
	board := s.CurrentTurn().board
	tree := hexfray.BuildBudgetBounded(board, insertBudget, s.moveLimit)
	return s.installScored(tree)
}

func (s *Session) installScored(tree *hexfray.Tree) *State {
	hexfray.ScoreTree(tree)
	totals := hexfray.SumStats(tree.Stats())
	log.Debug().
		Int("states", tree.Len()).
		Int("boards", totals.Boards).
		Int("inserted", totals.Inserted).
		Msg("scored fresh tree")

	state := s.CurrentTurn()
	state.choices = tree.FetchChoices(tree.Root())
	s.tree = tree
	return state
}

// Reset returns the session to its first decision point with a fresh
// tree and unchanged move limit and randomness.
func (s *Session) Reset() {
	start := s.turns[0].board
	s.tree = hexfray.BuildDepthBounded(start, 1, s.moveLimit)
	s.turns = []State{s.collapse(start, LastAttack{})}
}

func (s *Session) rollDice(n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += s.rng.Intn(6) + 1
	}
	return sum
}

// Setup builds a session: players, a starting board (explicit, canned or
// generated), the move limit and the RNG seed. A fixed seed makes the
// whole session deterministic.
type Setup struct {
	players   hexfray.Players
	board     *hexfray.Board
	genCols   int
	genRows   int
	moveLimit int
	seed      int64
}

// NewSetup starts a two-player setup with the default move limit.
func NewSetup() *Setup {
	return &Setup{players: hexfray.NewPlayers(2), moveLimit: DefaultMoveLimit}
}

// SetPlayers replaces the roster. A changed roster invalidates any board
// chosen earlier.
func (st *Setup) SetPlayers(players hexfray.Players) *Setup {
	if st.players != players {
		st.board = nil
	}
	st.players = players
	return st
}

// SetMoveLimit replaces the per-turn attack cap; values below one are
// ignored.
func (st *Setup) SetMoveLimit(limit int) *Setup {
	if limit >= 1 {
		st.moveLimit = limit
	}
	return st
}

// SetSeed fixes the session randomness. Zero draws a seed from the clock.
func (st *Setup) SetSeed(seed int64) *Setup {
	st.seed = seed
	return st
}

// SetBoard chooses the starting board, adopting its roster.
func (st *Setup) SetBoard(board hexfray.Board) *Setup {
	st.players = board.Players()
	st.board = &board
	st.genCols, st.genRows = 0, 0
	return st
}

// GenBoard requests a random cols×rows board for the configured roster,
// generated when the session is built.
func (st *Setup) GenBoard(columns, rows int) *Setup {
	st.board = nil
	st.genCols, st.genRows = columns, rows
	return st
}

// Session builds the game, or ErrNoBoard when neither a board nor a
// generation request was configured.
func (st *Setup) Session() (*Session, error) {
	seed := st.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var board hexfray.Board
	switch {
	case st.board != nil:
		board = *st.board
	case st.genCols > 0 && st.genRows > 0:
		board = hexfray.GenerateRandomBoard(st.genCols, st.genRows, st.players, rng)
	default:
		return nil, ErrNoBoard
	}

	tree := hexfray.BuildDepthBounded(board, 1, st.moveLimit)
	return New(board, tree, st.moveLimit, rng), nil
}
