package hexfray

import "testing"

func scoredSoleChoice(t *testing.T, tree *Tree, board Board) *Choice {
	t.Helper()
	choices := tree.FetchChoices(board)
	if len(choices) != 1 {
		t.Fatalf("expected a single choice, got %d", len(choices))
	}
	if _, ok := choices[0].Score(); !ok {
		t.Fatal("choice is unscored")
	}
	return choices[0]
}

func TestScoreBoard_Fractions(t *testing.T) {
	board := Canned2x2NoAttack()
	scores := ScoreBoard(board)
	if len(scores) != 2 {
		t.Fatalf("expected 2 players scored, got %d", len(scores))
	}
	a, b := board.Players().Playing()[0], board.Players().Playing()[1]
	if scores[a] != NewScore(0.25, 0) {
		t.Errorf("A: got %s", scores[a])
	}
	if scores[b] != NewScore(0.75, 0) {
		t.Errorf("B: got %s", scores[b])
	}
}

func TestScoreTree_SoloWin(t *testing.T) {
	tree := BuildFull(CannedSoloWin(), testMoveLimit)
	ScoreTree(tree)

	choice := scoredSoleChoice(t, tree, tree.Root())
	if s, _ := choice.Score(); s != NewScore(1, 0) {
		t.Fatalf("expected (1,0), got %s", s)
	}
}

func TestScoreTree_PairWin(t *testing.T) {
	tree := BuildFull(CannedPairWin(), testMoveLimit)
	ScoreTree(tree)

	choice := scoredSoleChoice(t, tree, tree.Root())
	if s, _ := choice.Score(); s != NewScore(1, 0) {
		t.Fatalf("expected (1,0), got %s", s)
	}
}

func TestScoreTree_PairStalemate(t *testing.T) {
	tree := BuildFull(CannedPairStalemate(), testMoveLimit)
	ScoreTree(tree)

	choice := scoredSoleChoice(t, tree, tree.Root())
	if s, _ := choice.Score(); s != NewScore(0.5, 0) {
		t.Fatalf("expected (0.5,0), got %s", s)
	}
}

// A cannot attack on A(2)|B(3); the turn passes and B conquers. The chain
// scores (0,0) for A's forced pass, then (1,1) and (1,0) for B.
func TestScoreTree_PairLossChain(t *testing.T) {
	tree := BuildFull(CannedPairLoss(), testMoveLimit)
	ScoreTree(tree)

	first := scoredSoleChoice(t, tree, tree.Root())
	if s, _ := first.Score(); s != NewScore(0, 0) {
		t.Fatalf("first choice: expected (0,0), got %s", s)
	}

	second := scoredSoleChoice(t, tree, first.Consequence().Board())
	if s, _ := second.Score(); s != NewScore(1, 1) {
		t.Fatalf("second choice: expected (1,1), got %s", s)
	}

	third := scoredSoleChoice(t, tree, second.Consequence().Board())
	if s, _ := third.Score(); s != NewScore(1, 0) {
		t.Fatalf("third choice: expected (1,0), got %s", s)
	}
}

// A is already eliminated on the all-B board; the knockout scores (0,0)
// and B's winning pass (1,0).
func TestScoreTree_EliminatedPlayer(t *testing.T) {
	tree := BuildFull(CannedTrioEliminated(), testMoveLimit)
	ScoreTree(tree)

	first := scoredSoleChoice(t, tree, tree.Root())
	if first.Consequence().Kind() != GameOver {
		t.Fatalf("expected GameOver, got %s", first.Consequence().Kind())
	}
	if s, _ := first.Score(); s != NewScore(0, 0) {
		t.Fatalf("knockout: expected (0,0), got %s", s)
	}

	second := scoredSoleChoice(t, tree, first.Consequence().Board())
	if s, _ := second.Score(); s != NewScore(1, 0) {
		t.Fatalf("winner: expected (1,0), got %s", s)
	}
}

func TestScoreTree_ThreeWayStandoff(t *testing.T) {
	tree := BuildFull(CannedTrioStandoff(), testMoveLimit)
	ScoreTree(tree)

	choice := scoredSoleChoice(t, tree, tree.Root())
	if s, _ := choice.Score(); s != NewScore(1.0/3.0, 0) {
		t.Fatalf("expected (1/3,0), got %s", s)
	}
}

// The skirmish runs A-attack, turnover, B-attack, turnover, A-attack into
// a 2/3-for-A stalemate five plies out.
func TestScoreTree_SkirmishDepth(t *testing.T) {
	tree := BuildFull(CannedTrioSkirmish(), testMoveLimit)
	ScoreTree(tree)

	choice := scoredSoleChoice(t, tree, tree.Root())
	if s, _ := choice.Score(); s != NewScore(2.0/3.0, 5) {
		t.Fatalf("expected (2/3,5), got %s", s)
	}
}

func treeScores(tree *Tree) map[string][]Score {
	out := make(map[string][]Score)
	for key, choices := range tree.states {
		scores := make([]Score, len(choices))
		for i, c := range choices {
			scores[i] = c.ScoreOrDefault()
		}
		out[key] = scores
	}
	return out
}

func sameScores(a, b map[string][]Score) bool {
	if len(a) != len(b) {
		return false
	}
	for key, scores := range a {
		other, ok := b[key]
		if !ok || len(scores) != len(other) {
			return false
		}
		for i := range scores {
			if scores[i] != other[i] {
				return false
			}
		}
	}
	return true
}

func TestScoreTree_Idempotent(t *testing.T) {
	tree := BuildFull(Canned2x2TwoAttacks(), testMoveLimit)
	ScoreTree(tree)
	first := treeScores(tree)
	ScoreTree(tree)
	if !sameScores(first, treeScores(tree)) {
		t.Fatal("scoring twice must not change any score")
	}
}

func TestClearScoring_ThenRescoreMatches(t *testing.T) {
	tree := BuildFull(Canned2x2TwoAttacks(), testMoveLimit)
	ScoreTree(tree)
	first := treeScores(tree)

	ClearScoring(tree)
	for _, choices := range tree.states {
		for _, c := range choices {
			if _, ok := c.Score(); ok {
				t.Fatal("clear must wipe every reachable score")
			}
		}
	}

	ScoreTree(tree)
	if !sameScores(first, treeScores(tree)) {
		t.Fatal("clear-then-score must equal a single scoring pass")
	}
}

func TestScoreFrom_SubtreeOnly(t *testing.T) {
	tree := BuildFull(CannedPairLoss(), testMoveLimit)
	rootChoice := tree.FetchChoices(tree.Root())[0]
	mid := rootChoice.Consequence().Board()

	ScoreFrom(mid, tree)
	if _, ok := rootChoice.Score(); ok {
		t.Fatal("scoring a subtree must not touch the trunk above it")
	}
	if _, ok := tree.FetchChoices(mid)[0].Score(); !ok {
		t.Fatal("subtree root must be scored")
	}
}

// A truncated tree grades its frontier boards by standing position
// instead of refusing to score.
func TestScoreTree_TruncatedFrontier(t *testing.T) {
	tree := BuildDepthBounded(CannedPairLoss(), 1, testMoveLimit)
	ScoreTree(tree)

	choice := scoredSoleChoice(t, tree, tree.Root())
	// Beyond the horizon sits A(2)|B(3): A holds half the tiles.
	if s, _ := choice.Score(); s != NewScore(0.5, 1) {
		t.Fatalf("expected (0.5,1), got %s", s)
	}
}

// Reversible play creates transpositions; the already-scored guard keeps
// the walk from re-entering them forever.
func TestScoreTree_TerminatesOnCycles(t *testing.T) {
	tree := BuildFull(Canned3x2Contest(), 4)
	visited := ScoreTree(tree)
	if visited == 0 {
		t.Fatal("expected a scored tree")
	}
	for _, c := range tree.FetchChoices(tree.Root()) {
		if _, ok := c.Score(); !ok {
			t.Fatal("every root choice must be scored")
		}
	}
}
