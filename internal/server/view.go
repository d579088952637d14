// Package server exposes one hot-seat session on localhost: a JSON state
// view, an advance endpoint and a WebSocket feed that pushes the state
// after every move. It is a viewing/playing surface for the machine the
// game runs on, not a networked multiplayer service.
package server

import (
	"github.com/efreeman/hexfray/internal/session"
)

// CellView is one rendered tile.
type CellView struct {
	Owner  string `json:"owner"`
	Dice   int    `json:"dice"`
	Mobile bool   `json:"mobile"`
}

// ChoiceView is one numbered option for the current player.
type ChoiceView struct {
	Index       int     `json:"index"`
	Description string  `json:"description"`
	Scored      bool    `json:"scored"`
	Destination float64 `json:"destination,omitempty"`
	Distance    int     `json:"distance,omitempty"`
}

// StateView is the wire form of a session state.
type StateView struct {
	Status        string       `json:"status"` // "play_on", "winner", "stalemate"
	Winner        string       `json:"winner,omitempty"`
	Stalemated    []string     `json:"stalemated,omitempty"`
	LastAttack    string       `json:"lastAttack,omitempty"`
	CurrentPlayer string       `json:"currentPlayer"`
	Columns       int          `json:"columns"`
	Rows          int          `json:"rows"`
	Cells         []CellView   `json:"cells"`
	Rendered      string       `json:"rendered"`
	Choices       []ChoiceView `json:"choices"`
	AutoPlayed    []string     `json:"autoPlayed,omitempty"`
}

// ViewState flattens a session state for JSON clients.
func ViewState(state *session.State) StateView {
	board := state.Board()
	view := StateView{
		CurrentPlayer: board.Players().Current().String(),
		Columns:       board.Grid().Columns(),
		Rows:          board.Grid().Rows(),
		Rendered:      board.String(),
	}

	switch state.Progression().Kind() {
	case session.GameOverWinner:
		view.Status = "winner"
		view.Winner = state.Progression().Winner().String()
	case session.GameOverStalemate:
		view.Status = "stalemate"
		for _, p := range state.Progression().Stalemated() {
			view.Stalemated = append(view.Stalemated, p.String())
		}
	default:
		view.Status = "play_on"
		view.LastAttack = state.Progression().LastAttack().String()
	}

	for _, tile := range board.Grid().Tiles() {
		h := tile.Data()
		view.Cells = append(view.Cells, CellView{
			Owner:  h.Owner().String(),
			Dice:   h.Dice(),
			Mobile: h.Mobile(),
		})
	}

	for i, choice := range state.Choices() {
		cv := ChoiceView{Index: i, Description: choice.Action().String()}
		if score, ok := choice.Score(); ok {
			cv.Scored = true
			cv.Destination = score.Destination()
			cv.Distance = score.Distance()
		}
		view.Choices = append(view.Choices, cv)
	}

	for _, step := range state.Traversal() {
		view.AutoPlayed = append(view.AutoPlayed, step.Choice.Action().String())
	}
	return view
}
