package hexfray

import (
	"fmt"
	"strings"

	"github.com/efreeman/hexfray/pkg/hexagon"
)

// Grid is the board's tile mesh.
type Grid = hexagon.Grid[Holding]

// Board is an immutable snapshot of play: the roster, the grid, the dice
// captured so far this turn and the number of attacks made this turn.
// Boards are compared and keyed structurally so that the state map
// collapses transpositions.
type Board struct {
	players  Players
	grid     Grid
	captured int
	moved    int
}

// NewBoard assembles a snapshot.
func NewBoard(players Players, grid Grid, captured, moved int) Board {
	return Board{players: players, grid: grid, captured: captured, moved: moved}
}

// Players returns the roster.
func (b Board) Players() Players { return b.players }

// Grid returns the tile mesh.
func (b Board) Grid() Grid { return b.grid }

// CapturedDice returns the dice captured during the current turn.
func (b Board) CapturedDice() int { return b.captured }

// Moved returns the attacks made during the current turn.
func (b Board) Moved() int { return b.moved }

// Equal reports structural equality over every field.
func (b Board) Equal(o Board) bool {
	return b.players == o.players &&
		b.captured == o.captured &&
		b.moved == o.moved &&
		b.grid.Equal(o.grid)
}

// Key returns a deterministic byte encoding of every equality-relevant
// field. It is exact, not a hash: two boards share a key iff they are
// structurally equal. Grid coordinates are omitted because the layout is
// fixed by the dimensions and iteration order is deterministic.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(12 + 4*MaxPlayers + 3*b.grid.Len())

	sb.WriteByte(byte(b.players.requested))
	sb.WriteByte(byte(b.players.current))
	sb.WriteByte(byte(b.players.count))
	for i := 0; i < MaxPlayers; i++ {
		sb.WriteByte(byte(b.players.playing[i].number))
		sb.WriteByte(b.players.playing[i].glyph)
		sb.WriteByte(byte(b.players.out[i].number))
		sb.WriteByte(b.players.out[i].glyph)
	}

	sb.WriteByte(byte(b.grid.Columns()))
	sb.WriteByte(byte(b.grid.Rows()))
	for _, tile := range b.grid.Tiles() {
		h := tile.Data()
		mobile := byte(0)
		if h.mobile {
			mobile = 1
		}
		sb.WriteByte(byte(h.owner.number))
		sb.WriteByte(byte(h.dice))
		sb.WriteByte(mobile)
	}

	sb.WriteByte(byte(b.captured >> 8))
	sb.WriteByte(byte(b.captured))
	sb.WriteByte(byte(b.moved >> 8))
	sb.WriteByte(byte(b.moved))
	return sb.String()
}

// String renders the staggered board. Cells read `A|3` (mobile) or `A#3`
// (frozen); odd-indexed rows are indented two spaces.
func (b Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(
		&sb,
		"Current Player: %s\nCaptured Dice: %d\nBoard =============\n",
		b.players.Current(), b.captured,
	)
	sb.WriteString(renderGrid(b.grid))
	return sb.String()
}

func renderGrid(g Grid) string {
	var sb strings.Builder
	cols := g.Columns()
	for i, tile := range g.Tiles() {
		col := i % cols
		row := i / cols
		if col == 0 && row%2 == 1 {
			sb.WriteString("  ")
		}
		sb.WriteString(tile.Data().String())
		sb.WriteByte(' ')
		if col == cols-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Action is either an attack between two adjacent tiles or a pass. Attack
// actions record the die counts on both sides at enumeration time.
type Action struct {
	attack   bool
	from, to hexagon.Cube
	attacker int
	defender int
}

// AttackAction builds an attack from one coordinate into another.
func AttackAction(from, to hexagon.Cube, attackerDice, defenderDice int) Action {
	return Action{attack: true, from: from, to: to, attacker: attackerDice, defender: defenderDice}
}

// PassAction builds the passing action.
func PassAction() Action { return Action{} }

// IsAttack reports whether the action is an attack.
func (a Action) IsAttack() bool { return a.attack }

// From returns the attacking coordinate.
func (a Action) From() hexagon.Cube { return a.from }

// To returns the defending coordinate.
func (a Action) To() hexagon.Cube { return a.to }

// AttackerDice returns the die count on the attacking tile.
func (a Action) AttackerDice() int { return a.attacker }

// DefenderDice returns the die count on the defending tile.
func (a Action) DefenderDice() int { return a.defender }

func (a Action) String() string {
	if !a.attack {
		return "Pass turn."
	}
	return fmt.Sprintf(
		"Attack from %s with %d dice into %s holding %d dice.",
		a.from, a.attacker, a.to, a.defender,
	)
}

// ConsequenceKind classifies the board that follows an action.
type ConsequenceKind int

const (
	// Continue: the same player keeps attacking.
	Continue ConsequenceKind = iota
	// TurnOver: the turn passes to the next player after reinforcement.
	TurnOver
	// GameOver: the current player is knocked out; play continues.
	GameOver
	// Winner: the current player holds the entire grid.
	Winner
	// Stalemate: nobody can attack anybody.
	Stalemate
)

func (k ConsequenceKind) String() string {
	switch k {
	case Continue:
		return "Continue"
	case TurnOver:
		return "TurnOver"
	case GameOver:
		return "GameOver"
	case Winner:
		return "Winner"
	case Stalemate:
		return "Stalemate"
	}
	return fmt.Sprintf("ConsequenceKind(%d)", int(k))
}

// Consequence tags the post-action board.
type Consequence struct {
	kind  ConsequenceKind
	board Board
}

// NewConsequence pairs a kind with its resulting board.
func NewConsequence(kind ConsequenceKind, board Board) Consequence {
	return Consequence{kind: kind, board: board}
}

// Kind returns the classification.
func (c Consequence) Kind() ConsequenceKind { return c.kind }

// Board returns the board the consequence leads to.
func (c Consequence) Board() Board { return c.board }

// Choice pairs a legal action with its consequence. The score is the only
// mutable field in the otherwise immutable state graph: the scorer writes
// it, everything else only reads.
type Choice struct {
	action      Action
	consequence Consequence
	score       *Score
}

// NewChoice builds an unscored choice.
func NewChoice(action Action, consequence Consequence) *Choice {
	return &Choice{action: action, consequence: consequence}
}

// Action returns the choice's action.
func (c *Choice) Action() Action { return c.action }

// Consequence returns the choice's consequence.
func (c *Choice) Consequence() Consequence { return c.consequence }

// Score returns the annotation and whether one has been set.
func (c *Choice) Score() (Score, bool) {
	if c.score == nil {
		return Score{}, false
	}
	return *c.score, true
}

// ScoreOrDefault returns the annotation, or the default (0, 0) when the
// choice is unscored.
func (c *Choice) ScoreOrDefault() Score {
	if c.score == nil {
		return Score{}
	}
	return *c.score
}

// SetScore writes the annotation.
func (c *Choice) SetScore(s Score) { c.score = &s }

// ClearScore wipes the annotation.
func (c *Choice) ClearScore() { c.score = nil }

func (c *Choice) String() string {
	if s, ok := c.Score(); ok {
		return fmt.Sprintf("%s [%s]", c.action, s)
	}
	return c.action.String()
}

// Score grades a choice: destination is the win-probability proxy of the
// outcome the choice leads to, distance how many plies away that outcome
// sits. The zero value is the default for unscored choices.
type Score struct {
	destination float64
	distance    int
}

// NewScore builds a score.
func NewScore(destination float64, distance int) Score {
	return Score{destination: destination, distance: distance}
}

// Destination returns the outcome grade in [0, 1].
func (s Score) Destination() float64 { return s.destination }

// Distance returns the plies to the graded outcome.
func (s Score) Distance() int { return s.distance }

// IncrementDistance returns the score one ply further from its outcome.
func (s Score) IncrementDistance() Score {
	return Score{destination: s.destination, distance: s.distance + 1}
}

// Beats reports whether s is strictly preferable to o: destination
// dominates, and at equal destination the smaller distance wins.
func (s Score) Beats(o Score) bool {
	if s.destination != o.destination {
		return s.destination > o.destination
	}
	return s.distance < o.distance
}

func (s Score) String() string {
	return fmt.Sprintf("%.3f at %d away", s.destination, s.distance)
}

// Tree is the state map: the root board plus every explored board keyed
// to its choice vector. The map only ever grows; Append merges further
// expansions in without rewriting existing entries.
type Tree struct {
	root   Board
	states map[string][]*Choice
	stats  []LayerStats
}

// Root returns the board the tree was expanded from.
func (t *Tree) Root() Board { return t.root }

// Len returns the number of explored boards.
func (t *Tree) Len() int { return len(t.states) }

// FetchChoices returns the choices recorded for a board, or nil when the
// board has not been explored.
func (t *Tree) FetchChoices(b Board) []*Choice {
	return t.states[b.Key()]
}

// Contains reports whether the board has been explored.
func (t *Tree) Contains(b Board) bool {
	_, ok := t.states[b.Key()]
	return ok
}

// Append merges a fresh expansion into the tree, skipping keys already
// present.
func (t *Tree) Append(extra *Tree) {
	if extra == nil {
		return
	}
	for key, choices := range extra.states {
		if _, ok := t.states[key]; !ok {
			t.states[key] = choices
		}
	}
}

// Stats returns the per-layer expansion statistics recorded when the tree
// was built. Diagnostic only.
func (t *Tree) Stats() []LayerStats { return t.stats }

// LayerStats records one breadth-first layer of an expansion.
type LayerStats struct {
	// Depth is the 1-based layer number.
	Depth int
	// Boards is how many boards the layer considered.
	Boards int
	// Inserted is how many of those were new.
	Inserted int
}

func (l LayerStats) String() string {
	return fmt.Sprintf(
		"[ Depth: %d\t Boards: %d\t Inserted: %d\t Discarded: %d ]",
		l.Depth, l.Boards, l.Inserted, l.Boards-l.Inserted,
	)
}

// Totals aggregates layer statistics.
type Totals struct {
	Boards   int
	Inserted int
}

// SumStats folds layer statistics into totals.
func SumStats(stats []LayerStats) Totals {
	var t Totals
	for _, s := range stats {
		t.Boards += s.Boards
		t.Inserted += s.Inserted
	}
	return t
}

func (t Totals) String() string {
	efficiency := 0.0
	if t.Boards > 0 && t.Inserted > 0 {
		efficiency = float64(t.Inserted) / float64(t.Boards) * 100
	}
	return fmt.Sprintf(
		"TOTALS = [ Boards: %d\t Inserted: %d\t Discarded: %d\t Efficiency: %.2f%% ]",
		t.Boards, t.Inserted, t.Boards-t.Inserted, efficiency,
	)
}
