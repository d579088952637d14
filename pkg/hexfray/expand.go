package hexfray

// The expander turns a starting board into the map of every position
// reachable under legal play. Strategies differ only in when they stop
// taking breadth-first layers; deduplication through Board.Key collapses
// transpositions, which is also what lets cycles appear in the map.

// BuildFull expands until the frontier empties. Boards of 4x4 and larger
// will exhaust memory under full expansion; callers wanting a bound use
// the depth or budget variants.
func BuildFull(root Board, moveLimit int) *Tree {
	return build(root, moveLimit, func(int, int) bool { return false })
}

// BuildDepthBounded expands at most horizon breadth-first layers. A
// horizon below one still expands the root layer.
func BuildDepthBounded(root Board, horizon, moveLimit int) *Tree {
	return build(root, moveLimit, func(layers, _ int) bool {
		return layers >= horizon
	})
}

// BuildBudgetBounded expands layers until the number of distinct inserted
// boards exceeds insertBudget. The first layer always completes so the
// caller sees every legal first move.
func BuildBudgetBounded(root Board, insertBudget, moveLimit int) *Tree {
	return build(root, moveLimit, func(layers, inserted int) bool {
		return layers >= 1 && inserted > insertBudget
	})
}

// build runs the shared layer loop. After each completed layer, stop is
// consulted with the layers taken so far and the total inserts; a true
// return ends the expansion.
func build(root Board, moveLimit int, stop func(layers, inserted int) bool) *Tree {
	states := make(map[string][]*Choice)
	var stats []LayerStats

	layer := []Board{root}
	inserted := 0
	for depth := 1; len(layer) > 0; depth++ {
		var next []Board
		layerInserts := 0
		for _, board := range layer {
			key := board.Key()
			if _, ok := states[key]; ok {
				continue
			}
			choices := Choices(board, moveLimit)
			for _, choice := range choices {
				next = append(next, choice.Consequence().Board())
			}
			states[key] = choices
			layerInserts++
		}

		stats = append(stats, LayerStats{Depth: depth, Boards: len(layer), Inserted: layerInserts})
		inserted += layerInserts
		if stop(depth, inserted) {
			break
		}
		layer = next
	}

	return &Tree{root: root, states: states, stats: stats}
}
