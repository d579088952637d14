package hexfray

import (
	"math/rand"

	"github.com/efreeman/hexfray/pkg/hexagon"
)

// GenerateRandomBoard builds a cols×rows board where every tile is owned
// by a uniformly drawn playing player and stocked with 1..5 dice. The
// first player in the roster opens.
func GenerateRandomBoard(columns, rows int, players Players, rng *rand.Rand) Board {
	playing := players.Playing()
	grid := hexagon.Rectangular(columns, rows, func(hexagon.Cube) Holding {
		owner := playing[rng.Intn(len(playing))]
		return NewHolding(owner, rng.Intn(MaxDice)+1, true)
	})
	return NewBoard(players, grid, 0, 0)
}

// Canned starting boards. Each states its dimensions and lists its tiles
// explicitly; tests and the console entry build on them.

func cannedTile(col, row int, owner Player, dice int) hexagon.Tile[Holding] {
	return hexagon.NewTile(hexagon.AxialCube(col, row), NewHolding(owner, dice, true))
}

// CannedSoloWin is a 1×1 board: A alone with two dice. The only choice is
// the winning pass.
func CannedSoloWin() Board {
	players := NewPlayers(2)
	a := players.Playing()[0]
	grid := hexagon.GridFromTiles(1, 1, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 2),
	})
	return NewBoard(players, grid, 0, 0)
}

// CannedPairWin is a 2×1 board entirely held by A: A(5) | A(5).
func CannedPairWin() Board {
	players := NewPlayers(2)
	a := players.Playing()[0]
	grid := hexagon.GridFromTiles(2, 1, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 5),
		cannedTile(1, 0, a, 5),
	})
	return NewBoard(players, grid, 0, 0)
}

// CannedPairStalemate is a 2×1 board nobody can move on: A(1) | B(1).
func CannedPairStalemate() Board {
	players := NewPlayers(2)
	a, b := players.Playing()[0], players.Playing()[1]
	grid := hexagon.GridFromTiles(2, 1, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 1),
		cannedTile(1, 0, b, 1),
	})
	return NewBoard(players, grid, 0, 0)
}

// CannedPairLoss is a 2×1 board where A cannot attack and B then takes
// everything: A(2) | B(3).
func CannedPairLoss() Board {
	players := NewPlayers(2)
	a, b := players.Playing()[0], players.Playing()[1]
	grid := hexagon.GridFromTiles(2, 1, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 2),
		cannedTile(1, 0, b, 3),
	})
	return NewBoard(players, grid, 0, 0)
}

// CannedTrioEliminated is a 3×1 board held entirely by B while A is to
// play: B(2) | B(3) | B(3). A is knocked out immediately.
func CannedTrioEliminated() Board {
	players := NewPlayers(2)
	b := players.Playing()[1]
	grid := hexagon.GridFromTiles(3, 1, []hexagon.Tile[Holding]{
		cannedTile(0, 0, b, 2),
		cannedTile(1, 0, b, 3),
		cannedTile(2, 0, b, 3),
	})
	return NewBoard(players, grid, 0, 0)
}

// CannedTrioStandoff is a 3×1 three-player stalemate: A(1) | B(1) | C(1).
func CannedTrioStandoff() Board {
	players := NewPlayers(3)
	roster := players.Playing()
	grid := hexagon.GridFromTiles(3, 1, []hexagon.Tile[Holding]{
		cannedTile(0, 0, roster[0], 1),
		cannedTile(1, 0, roster[1], 1),
		cannedTile(2, 0, roster[2], 1),
	})
	return NewBoard(players, grid, 0, 0)
}

// CannedTrioSkirmish is a 3×1 contest A can fight over: A(2) | B(2) | B(2).
func CannedTrioSkirmish() Board {
	players := NewPlayers(2)
	a, b := players.Playing()[0], players.Playing()[1]
	grid := hexagon.GridFromTiles(3, 1, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 2),
		cannedTile(1, 0, b, 2),
		cannedTile(2, 0, b, 2),
	})
	return NewBoard(players, grid, 0, 0)
}

// Canned2x2NoAttack is a 2×2 board where A has no legal attack:
//
//	A(2) B(3)
//	B(3) B(5)
func Canned2x2NoAttack() Board {
	players := NewPlayers(2)
	a, b := players.Playing()[0], players.Playing()[1]
	grid := hexagon.GridFromTiles(2, 2, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 2),
		cannedTile(1, 0, b, 3),
		cannedTile(0, 1, b, 3),
		cannedTile(1, 1, b, 5),
	})
	return NewBoard(players, grid, 0, 0)
}

// Canned2x2OneAttack is a 2×2 board giving A exactly one attack:
//
//	A(2) B(1)
//	B(3) B(5)
func Canned2x2OneAttack() Board {
	players := NewPlayers(2)
	a, b := players.Playing()[0], players.Playing()[1]
	grid := hexagon.GridFromTiles(2, 2, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 2),
		cannedTile(1, 0, b, 1),
		cannedTile(0, 1, b, 3),
		cannedTile(1, 1, b, 5),
	})
	return NewBoard(players, grid, 0, 0)
}

// Canned2x2TwoAttacks is a 2×2 board giving A two attacks:
//
//	A(4) B(3)
//	B(3) B(5)
func Canned2x2TwoAttacks() Board {
	players := NewPlayers(2)
	a, b := players.Playing()[0], players.Playing()[1]
	grid := hexagon.GridFromTiles(2, 2, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 4),
		cannedTile(1, 0, b, 3),
		cannedTile(0, 1, b, 3),
		cannedTile(1, 1, b, 5),
	})
	return NewBoard(players, grid, 0, 0)
}

// Canned3x2Contest is a 3×2 board both players can fight over:
//
//	A(2) B(2) A(1)
//	  B(1) A(2) B(2)
func Canned3x2Contest() Board {
	players := NewPlayers(2)
	a, b := players.Playing()[0], players.Playing()[1]
	grid := hexagon.GridFromTiles(3, 2, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 2),
		cannedTile(1, 0, b, 2),
		cannedTile(2, 0, a, 1),
		cannedTile(0, 1, b, 1),
		cannedTile(1, 1, a, 2),
		cannedTile(2, 1, b, 2),
	})
	return NewBoard(players, grid, 0, 0)
}

// Canned3x3Opening is a balanced 3×3 two-player opening used by the
// console entry:
//
//	A(3) B(2) A(2)
//	  B(3) A(3) B(2)
//	A(2) B(1) B(3)
func Canned3x3Opening() Board {
	players := NewPlayers(2)
	a, b := players.Playing()[0], players.Playing()[1]
	grid := hexagon.GridFromTiles(3, 3, []hexagon.Tile[Holding]{
		cannedTile(0, 0, a, 3),
		cannedTile(1, 0, b, 2),
		cannedTile(2, 0, a, 2),
		cannedTile(0, 1, b, 3),
		cannedTile(1, 1, a, 3),
		cannedTile(2, 1, b, 2),
		cannedTile(-1, 2, a, 2),
		cannedTile(0, 2, b, 1),
		cannedTile(1, 2, b, 3),
	})
	return NewBoard(players, grid, 0, 0)
}

// CannedBoards maps fixture names to constructors for shells that select
// a starting position by name.
func CannedBoards() map[string]func() Board {
	return map[string]func() Board{
		"solo-win":        CannedSoloWin,
		"pair-win":        CannedPairWin,
		"pair-stalemate":  CannedPairStalemate,
		"pair-loss":       CannedPairLoss,
		"trio-eliminated": CannedTrioEliminated,
		"trio-standoff":   CannedTrioStandoff,
		"trio-skirmish":   CannedTrioSkirmish,
		"2x2-no-attack":   Canned2x2NoAttack,
		"2x2-one-attack":  Canned2x2OneAttack,
		"2x2-two-attacks": Canned2x2TwoAttacks,
		"3x2-contest":     Canned3x2Contest,
		"3x3-opening":     Canned3x3Opening,
	}
}
