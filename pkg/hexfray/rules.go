package hexfray

import (
	"fmt"

	"github.com/efreeman/hexfray/pkg/hexagon"
)

// Choices enumerates everything the current player may legally do from
// the board. The vector is never empty: when no attack is available the
// single entry is the pass whose consequence classifies the position
// (Winner, GameOver, Stalemate or TurnOver). moveLimit caps the attacks a
// player may chain within one turn before the turn is forced over.
//
// Enumeration order is stable: tiles in grid order, neighbors in the
// fixed clockwise order. Expansion and scoring both rely on that.
func Choices(board Board, moveLimit int) []*Choice {
	current := board.players.Current()
	attacks := legalAttacks(board.grid, current)

	if len(attacks) == 0 {
		switch {
		case ownsEntireGrid(board.grid, current):
			return []*Choice{NewChoice(PassAction(), NewConsequence(Winner, board))}
		case ownsNothing(board.grid, current):
			next := NewBoard(board.players.RemoveCurrent(), board.grid, 0, 0)
			return []*Choice{NewChoice(PassAction(), NewConsequence(GameOver, next))}
		case stalemate(board.grid):
			return []*Choice{NewChoice(PassAction(), NewConsequence(Stalemate, board))}
		default:
			return []*Choice{NewChoice(PassAction(), turnOver(board))}
		}
	}

	if board.moved >= moveLimit {
		return []*Choice{NewChoice(PassAction(), turnOver(board))}
	}

	choices := make([]*Choice, 0, len(attacks))
	for _, attack := range attacks {
		grid := applyAttack(board.grid, attack.From(), attack.To())
		next := NewBoard(
			board.players,
			grid,
			board.captured+attack.DefenderDice(),
			board.moved+1,
		)
		choices = append(choices, NewChoice(attack, NewConsequence(Continue, next)))
	}
	return choices
}

// turnOver builds the consequence ending the current player's turn:
// captured dice minus one are distributed over their tiles (which also
// thaws any frozen ones), the next player is activated and the turn
// counters reset.
func turnOver(board Board) Consequence {
	budget := board.captured - 1
	if budget < 0 {
		budget = 0
	}
	grid := reinforce(board.grid, board.players.Current(), budget)
	next := NewBoard(board.players.Next(), grid, 0, 0)
	return NewConsequence(TurnOver, next)
}

// legalAttacks lists every attack the player can make: a mobile tile of
// theirs holding more than one die, against an adjacent enemy tile whose
// dice do not exceed the attacker's.
func legalAttacks(grid Grid, player Player) []Action {
	var attacks []Action
	for _, tile := range grid.Tiles() {
		hold := tile.Data()
		if hold.Owner() != player || !hold.Mobile() || hold.Dice() <= 1 {
			continue
		}
		for _, neighbor := range tile.Coordinate().Neighbors() {
			target, err := grid.Fetch(neighbor)
			if err != nil {
				continue // off the board
			}
			if target.Owner() == player {
				continue
			}
			if target.Dice() <= hold.Dice() {
				attacks = append(attacks, AttackAction(
					tile.Coordinate(), neighbor, hold.Dice(), target.Dice(),
				))
			}
		}
	}
	return attacks
}

// applyAttack produces the grid assuming the attacker wins: one die stays
// behind, the rest occupy the target. Both tiles keep their mobile flags.
// Coordinates are trusted; a miss is a programming error.
func applyAttack(grid Grid, from, to hexagon.Cube) Grid {
	source, err := grid.Fetch(from)
	if err != nil {
		panic(fmt.Sprintf("attack from unknown coordinate %s", from))
	}
	if !grid.Contains(to) {
		panic(fmt.Sprintf("attack into unknown coordinate %s", to))
	}

	return grid.ForkWith(func(c hexagon.Cube, h Holding) Holding {
		switch c {
		case from:
			return NewHolding(source.Owner(), 1, h.Mobile())
		case to:
			return NewHolding(source.Owner(), source.Dice()-1, h.Mobile())
		default:
			return h
		}
	})
}

// reinforce distributes budget extra dice over the player's tiles in grid
// iteration order, five dice to a tile, dropping any overflow. The
// player's tiles are thawed as a side effect: reinforcement marks the end
// of their turn.
func reinforce(grid Grid, player Player, budget int) Grid {
	return grid.ForkWith(func(_ hexagon.Cube, h Holding) Holding {
		if h.Owner() != player {
			return h
		}
		dice := h.Dice()
		if budget > 0 && dice < MaxDice {
			add := MaxDice - dice
			if add > budget {
				add = budget
			}
			dice += add
			budget -= add
		}
		return NewHolding(h.Owner(), dice, true)
	})
}

// ownsEntireGrid reports whether every tile belongs to the player.
func ownsEntireGrid(grid Grid, player Player) bool {
	for _, tile := range grid.Tiles() {
		if tile.Data().Owner() != player {
			return false
		}
	}
	return true
}

// ownsNothing reports whether no tile belongs to the player.
func ownsNothing(grid Grid, player Player) bool {
	for _, tile := range grid.Tiles() {
		if tile.Data().Owner() == player {
			return false
		}
	}
	return true
}

// stalemate reports whether no player could ever attack: every adjacent
// cross-owner pair has at most one die on each side. Half neighbors visit
// each edge once. Mobility is ignored because frozen tiles thaw. Grids
// with fewer than two tiles are never in stalemate.
func stalemate(grid Grid) bool {
	if grid.Len() < 2 {
		return false
	}
	for _, tile := range grid.Tiles() {
		hold := tile.Data()
		for _, half := range tile.Coordinate().HalfNeighbors() {
			other, err := grid.Fetch(half)
			if err != nil {
				continue
			}
			if other.Owner() == hold.Owner() {
				continue
			}
			if hold.Dice() > 1 || other.Dice() > 1 {
				return false
			}
		}
	}
	return true
}
