package hexfray

// Backward-induction scoring. Each choice is annotated with the best
// outcome the acting player can reach through it: destination is the
// outcome grade, distance how many plies away it lies. The walk records
// the best outcome every player can achieve from each board, not just the
// acting player's, so downstream futures inform upstream trunk choices.

// ScoreTree scores every choice reachable from the root. Returns the
// number of boards visited. Scoring twice in a row is a no-op: already
// scored choices are skipped, which is also the cycle guard that keeps
// the walk finite on transposition loops.
func ScoreTree(tree *Tree) int {
	visited, _ := score(tree.Root(), tree)
	return visited
}

// ScoreFrom restricts scoring to the subgraph rooted at the given board.
func ScoreFrom(from Board, tree *Tree) int {
	visited, _ := score(from, tree)
	return visited
}

// ClearScoring wipes every score reachable from the root. Descent stops
// at already-unscored choices, so repeated clears are cheap.
func ClearScoring(tree *Tree) {
	clearScores(tree.Root(), tree)
}

// ClearFrom wipes scores in the subgraph rooted at the given board.
func ClearFrom(from Board, tree *Tree) {
	clearScores(from, tree)
}

func clearScores(board Board, tree *Tree) {
	for _, choice := range tree.FetchChoices(board) {
		if _, ok := choice.Score(); !ok {
			continue
		}
		switch choice.Consequence().Kind() {
		case GameOver, Continue, TurnOver:
			clearScores(choice.Consequence().Board(), tree)
		}
		choice.ClearScore()
	}
}

// ScoreBoard grades a standing position: each player's fraction of owned
// tiles at distance zero. Used for stalemate leaves and for boards beyond
// a truncated tree's frontier.
func ScoreBoard(board Board) map[Player]Score {
	counts := make(map[Player]int)
	for _, tile := range board.Grid().Tiles() {
		counts[tile.Data().Owner()]++
	}

	tiles := float64(board.Grid().Len())
	scores := make(map[Player]Score, len(counts))
	for player, held := range counts {
		scores[player] = NewScore(float64(held)/tiles, 0)
	}
	return scores
}

// score walks the subgraph below board, writing a score onto every
// unscored choice and returning the per-player bests seen from here.
func score(board Board, tree *Tree) (int, map[Player]Score) {
	player := board.Players().Current()
	choices := tree.FetchChoices(board)
	if choices == nil {
		// The tree was truncated here; grade the standing board.
		return 0, ScoreBoard(board)
	}

	scores := make(map[Player]Score)
	sum := 0
	for _, choice := range choices {
		if _, ok := choice.Score(); ok {
			continue
		}

		var visited int
		var subScores map[Player]Score
		switch choice.Consequence().Kind() {
		case Winner:
			// The game can end here; best possible grade, done.
			win := NewScore(1, 0)
			choice.SetScore(win)
			return 1, map[Player]Score{player: win}

		case Stalemate:
			// The game can end here too, just less gloriously.
			subScores = ScoreBoard(choice.Consequence().Board())
			choice.SetScore(subScores[player])
			return 1, subScores

		case GameOver:
			// Game over for the acting player; play continues below.
			v, sc := score(choice.Consequence().Board(), tree)
			sc[player] = NewScore(0, 0)
			choice.SetScore(NewScore(0, 0))
			visited, subScores = v, sc

		case Continue, TurnOver:
			v, sc := score(choice.Consequence().Board(), tree)
			if s, ok := sc[player]; ok {
				choice.SetScore(s.IncrementDistance())
			} else {
				// A knocked-out player may never act again before the
				// game ends; their future is worth nothing.
				sc[player] = NewScore(0, 0)
				choice.SetScore(NewScore(0, 0))
			}
			visited, subScores = v, sc
		}

		// Trunk choice: fold its futures into ours, one ply further out,
		// keeping the existing entry on ties for determinism.
		for p, s := range subScores {
			incremented := s.IncrementDistance()
			if current, ok := scores[p]; !ok || incremented.Beats(current) {
				scores[p] = incremented
			}
		}
		sum += visited
	}

	return sum + 1, scores
}
