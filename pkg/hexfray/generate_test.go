package hexfray

import (
	"math/rand"
	"testing"
)

func TestGenerateRandomBoard_Bounds(t *testing.T) {
	players := NewPlayers(3)
	rng := rand.New(rand.NewSource(7))
	board := GenerateRandomBoard(4, 3, players, rng)

	if board.Grid().Columns() != 4 || board.Grid().Rows() != 3 || board.Grid().Len() != 12 {
		t.Fatalf("unexpected dimensions %dx%d", board.Grid().Columns(), board.Grid().Rows())
	}
	if board.Players().Current() != players.Playing()[0] {
		t.Error("the first roster player opens")
	}
	if board.CapturedDice() != 0 || board.Moved() != 0 {
		t.Error("fresh boards start with zeroed counters")
	}

	seated := make(map[Player]bool)
	for _, p := range players.Playing() {
		seated[p] = true
	}
	for _, tile := range board.Grid().Tiles() {
		h := tile.Data()
		if !seated[h.Owner()] {
			t.Fatalf("tile owned by unseated player %s", h.Owner())
		}
		if h.Dice() < 1 || h.Dice() > MaxDice {
			t.Fatalf("tile dice %d outside 1..%d", h.Dice(), MaxDice)
		}
		if !h.Mobile() {
			t.Fatal("fresh tiles start mobile")
		}
	}
}

func TestGenerateRandomBoard_SeedDeterminism(t *testing.T) {
	players := NewPlayers(2)
	a := GenerateRandomBoard(3, 3, players, rand.New(rand.NewSource(42)))
	b := GenerateRandomBoard(3, 3, players, rand.New(rand.NewSource(42)))
	if !a.Equal(b) {
		t.Fatal("same seed must generate the same board")
	}
	c := GenerateRandomBoard(3, 3, players, rand.New(rand.NewSource(43)))
	if a.Equal(c) {
		t.Fatal("different seeds should disagree somewhere")
	}
}

func TestCannedBoards_Wellformed(t *testing.T) {
	for name, fixture := range CannedBoards() {
		board := fixture()
		if board.Grid().Len() == 0 {
			t.Errorf("%s: empty grid", name)
		}
		if board.Grid().Len() != board.Grid().Columns()*board.Grid().Rows() {
			t.Errorf("%s: tile count does not match stated dimensions", name)
		}
		for _, tile := range board.Grid().Tiles() {
			if !tile.Data().Mobile() {
				t.Errorf("%s: fixtures start fully mobile", name)
			}
			if tile.Data().Owner() == NoPlayer {
				t.Errorf("%s: tile owned by the sentinel", name)
			}
		}
		// Every fixture must produce at least one legal choice.
		if len(Choices(board, testMoveLimit)) == 0 {
			t.Errorf("%s: no choices from the fixture", name)
		}
	}
}
