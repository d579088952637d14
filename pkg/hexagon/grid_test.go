package hexagon

import "testing"

// incrementGrid numbers tiles 1..n in generation order.
func incrementGrid(cols, rows int) Grid[int] {
	n := 0
	return Rectangular(cols, rows, func(Cube) int {
		n++
		return n
	})
}

func fetchOrFatal(t *testing.T, g Grid[int], c Cube) int {
	t.Helper()
	v, err := g.Fetch(c)
	if err != nil {
		t.Fatalf("fetch %s: %v", c, err)
	}
	return v
}

func TestRectangular_RowZero(t *testing.T) {
	g := incrementGrid(4, 1)
	if g.Len() != 4 {
		t.Fatalf("expected 4 tiles, got %d", g.Len())
	}
	for col := 0; col < 4; col++ {
		want := AxialCube(col, 0)
		if got := g.Tiles()[col].Coordinate(); got != want {
			t.Errorf("tile %d: expected %s, got %s", col, want, got)
		}
	}
}

func TestRectangular_2x2Coordinates(t *testing.T) {
	g := incrementGrid(2, 2)

	mustCube := func(x, y, z int) Cube {
		c, err := NewCube(x, y, z)
		if err != nil {
			t.Fatal(err)
		}
		return c
	}

	if v := fetchOrFatal(t, g, mustCube(0, 0, 0)); v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
	if v := fetchOrFatal(t, g, mustCube(1, -1, 0)); v != 2 {
		t.Errorf("expected 2, got %d", v)
	}
	// Row 1 shifts DownRight.
	if v := fetchOrFatal(t, g, mustCube(0, -1, 1)); v != 3 {
		t.Errorf("expected 3, got %d", v)
	}
	if v := fetchOrFatal(t, g, mustCube(1, -2, 1)); v != 4 {
		t.Errorf("expected 4, got %d", v)
	}
}

func TestRectangular_3x3Coordinates(t *testing.T) {
	g := incrementGrid(3, 3)

	// Row 2 shifts DownLeft, back under row 0.
	tests := []struct {
		c    Cube
		want int
	}{
		{AxialCube(0, 0), 1},
		{AxialCube(2, 0), 3},
		{AxialCube(0, 1), 4},
		{AxialCube(-1, 2).Add(Right), 8}, // second tile of row 2
		{AxialCube(-1, 2), 7},
		{AxialCube(1, 2), 9},
	}
	for _, tt := range tests {
		if v := fetchOrFatal(t, g, tt.c); v != tt.want {
			t.Errorf("fetch %s: expected %d, got %d", tt.c, tt.want, v)
		}
	}
}

func TestRectangular_4x4LastRow(t *testing.T) {
	g := incrementGrid(4, 4)
	// Row 3 start: origin + DownRight + DownLeft + DownRight.
	start := Cube{}.Add(DownRight).Add(DownLeft).Add(DownRight)
	if v := fetchOrFatal(t, g, start); v != 13 {
		t.Errorf("expected 13, got %d", v)
	}
	last := start.Add(Right).Add(Right).Add(Right)
	if v := fetchOrFatal(t, g, last); v != 16 {
		t.Errorf("expected 16, got %d", v)
	}
}

func TestGrid_FetchMiss(t *testing.T) {
	g := incrementGrid(2, 2)
	_, err := g.Fetch(AxialCube(5, 5))
	if err == nil {
		t.Fatal("expected NoHexError")
	}
	if _, ok := err.(NoHexError); !ok {
		t.Fatalf("expected NoHexError, got %T", err)
	}
}

func TestGrid_EmptyDimensions(t *testing.T) {
	g := incrementGrid(0, 3)
	if g.Len() != 0 {
		t.Fatalf("expected empty grid, got %d tiles", g.Len())
	}
}

func TestGrid_IterationOrderStable(t *testing.T) {
	g := incrementGrid(3, 2)
	prev := 0
	for _, tile := range g.Tiles() {
		if tile.Data() != prev+1 {
			t.Fatalf("iteration out of order: got %d after %d", tile.Data(), prev)
		}
		prev = tile.Data()
	}
}

func TestGrid_ForkWith(t *testing.T) {
	g := Rectangular(2, 2, func(Cube) int { return 4 })
	f := g.ForkWith(func(_ Cube, v int) int { return v * 2 })

	for _, tile := range f.Tiles() {
		if tile.Data() != 8 {
			t.Fatalf("expected 8, got %d", tile.Data())
		}
	}
	// Original untouched.
	for _, tile := range g.Tiles() {
		if tile.Data() != 4 {
			t.Fatal("fork mutated the source grid")
		}
	}
	if f.Columns() != 2 || f.Rows() != 2 {
		t.Error("fork should preserve dimensions")
	}
}

func TestGrid_Equal(t *testing.T) {
	a := incrementGrid(2, 2)
	b := incrementGrid(2, 2)
	if !a.Equal(b) {
		t.Fatal("identical grids should be equal")
	}
	c := b.ForkWith(func(cu Cube, v int) int {
		if cu == AxialCube(0, 0) {
			return 99
		}
		return v
	})
	if a.Equal(c) {
		t.Fatal("grids with different contents should differ")
	}
}

func TestGridFromTiles_PreservesOrder(t *testing.T) {
	tiles := []Tile[int]{
		NewTile(AxialCube(0, 0), 10),
		NewTile(AxialCube(1, 0), 20),
	}
	g := GridFromTiles(2, 1, tiles)
	if g.Len() != 2 || g.Tiles()[1].Data() != 20 {
		t.Fatal("explicit tile order not preserved")
	}
	if v := fetchOrFatal(t, g, AxialCube(1, 0)); v != 20 {
		t.Fatalf("expected 20, got %d", v)
	}
}
