package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jacobpatterson1549/letter-board/game/tile"
)

func TestPlaceOnCell(t *testing.T) {
	a := newTestTile(1, 'A', 0, 0)
	b := newTestTile(2, 'B', 3, 2)
	c := newTestTile(3, 'C', 9, 6)
	placeTests := []struct {
		dropped tile.Position
		Cell
		want    []tile.Position
		wantErr error
	}{
		{ // empty cell
			dropped: a,
			Cell:    Cell{5, 5},
			want:    []tile.Position{a.MoveTo(5, 5), b, c},
		},
		{ // last tile to the origin corner
			dropped: c,
			Cell:    Cell{1, 0},
			want:    []tile.Position{a, b, c.MoveTo(1, 0)},
		},
		{ // own cell
			dropped: b,
			Cell:    Cell{3, 2},
			want:    []tile.Position{a, b, c},
		},
		{ // occupied cell
			dropped: a,
			Cell:    Cell{3, 2},
			want:    []tile.Position{a, b, c},
			wantErr: ErrInvalidDrop,
		},
		{ // off the board
			dropped: a,
			Cell:    Cell{10, 7},
			want:    []tile.Position{a, b, c},
			wantErr: ErrInvalidDrop,
		},
		{ // unknown tile
			dropped: newTestTile(8, 'Z', 0, 0),
			Cell:    Cell{5, 5},
			want:    []tile.Position{a, b, c},
			wantErr: ErrTileNotFound,
		},
		{ // stale payload coordinates are ignored
			dropped: a.MoveTo(8, 1),
			Cell:    Cell{4, 4},
			want:    []tile.Position{a.MoveTo(4, 4), b, c},
		},
	}
	for i, test := range placeTests {
		b0 := newTestBoard(t, a, b, c)
		got, err := b0.Place(test.dropped, test.Cell)
		switch {
		case test.wantErr != nil:
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Test %v: wanted error %v, got %v", i, test.wantErr, err)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		}
		if got == nil {
			t.Errorf("Test %v: wanted board", i)
			continue
		}
		if diff := cmp.Diff(test.want, got.Tiles()); diff != "" {
			t.Errorf("Test %v: tiles mismatch (-want +got):\n%v", i, diff)
		}
		if diff := cmp.Diff([]tile.Position{a, b, c}, b0.Tiles()); diff != "" {
			t.Errorf("Test %v: original board modified (-want +got):\n%v", i, diff)
		}
	}
}

func TestPlaceOnEveryCell(t *testing.T) {
	a := newTestTile(1, 'A', 0, 0)
	b := newTestTile(2, 'B', 3, 2)
	b0 := newTestBoard(t, a, b)
	for _, c := range b0.Grid() {
		got, err := b0.Place(a, c)
		switch {
		case c == CellOf(b):
			if !errors.Is(err, ErrInvalidDrop) {
				t.Errorf("wanted invalid drop onto occupied cell %v, got %v", c, err)
			}
			continue
		case err != nil:
			t.Errorf("unwanted error placing on %v: %v", c, err)
			continue
		}
		gotA, _ := got.Tile(a.Tile.ID)
		gotB, _ := got.Tile(b.Tile.ID)
		switch {
		case CellOf(gotA) != c:
			t.Errorf("wanted tile at %v, got %v", c, CellOf(gotA))
		case gotB != b:
			t.Errorf("other tile moved: wanted %v, got %v", b, gotB)
		}
	}
}

func TestPlaceSwap(t *testing.T) {
	a := newTestTile(1, 'A', 0, 0)
	b := newTestTile(2, 'B', 3, 2)
	c := newTestTile(3, 'C', 9, 6)
	placeTests := []struct {
		dropped tile.Position
		target  tile.Position
		want    []tile.Position
		wantErr error
	}{
		{
			dropped: a,
			target:  b,
			want:    []tile.Position{a.MoveTo(3, 2), b.MoveTo(0, 0), c},
		},
		{
			dropped: c,
			target:  a,
			want:    []tile.Position{a.MoveTo(9, 6), b, c.MoveTo(0, 0)},
		},
		{ // self
			dropped: b,
			target:  b,
			want:    []tile.Position{a, b, c},
		},
		{ // unknown dropped tile
			dropped: newTestTile(8, 'Z', 0, 0),
			target:  b,
			want:    []tile.Position{a, b, c},
			wantErr: ErrTileNotFound,
		},
		{ // unknown target tile
			dropped: a,
			target:  newTestTile(9, 'Z', 5, 5),
			want:    []tile.Position{a, b, c},
			wantErr: ErrTileNotFound,
		},
		{ // target found by id, not by the coordinates it was dragged over
			dropped: a,
			target:  b.MoveTo(9, 6),
			want:    []tile.Position{a.MoveTo(3, 2), b.MoveTo(0, 0), c},
		},
	}
	for i, test := range placeTests {
		b0 := newTestBoard(t, a, b, c)
		got, err := b0.Place(test.dropped, TileTarget{test.target})
		switch {
		case test.wantErr != nil:
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Test %v: wanted error %v, got %v", i, test.wantErr, err)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		}
		if diff := cmp.Diff(test.want, got.Tiles()); diff != "" {
			t.Errorf("Test %v: tiles mismatch (-want +got):\n%v", i, diff)
		}
	}
}

func TestPlaceSwapIsNotSequential(t *testing.T) {
	a := newTestTile(1, 'A', 0, 0)
	b := newTestTile(2, 'B', 3, 2)
	b0 := newTestBoard(t, a, b)
	got, err := b0.Place(a, &TileTarget{b})
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	// moving a first, then moving b to where a is now, leaves b in place
	movedA := a.MoveTo(b.X, b.Y)
	sequential := []tile.Position{movedA, b.MoveTo(movedA.X, movedA.Y)}
	if diff := cmp.Diff(sequential, got.Tiles()); diff == "" {
		t.Error("swap should not apply moves sequentially")
	}
	want := []tile.Position{a.MoveTo(3, 2), b.MoveTo(0, 0)}
	if diff := cmp.Diff(want, got.Tiles()); diff != "" {
		t.Errorf("tiles mismatch (-want +got):\n%v", diff)
	}
}

func TestPlaceNoDestination(t *testing.T) {
	a := newTestTile(1, 'A', 0, 0)
	b0 := newTestBoard(t, a)
	var nilTarget *TileTarget
	for i, dest := range []Destination{nil, nilTarget} {
		got, err := b0.Place(a, dest)
		switch {
		case !errors.Is(err, ErrInvalidDrop):
			t.Errorf("Test %v: wanted invalid drop error, got %v", i, err)
		case !got.Equal(b0):
			t.Errorf("Test %v: wanted unchanged board", i)
		}
	}
}

func TestPlaceScenario(t *testing.T) {
	a, err := tile.NewPosition(1, 'A', 0, 0)
	if err != nil {
		t.Fatalf("creating tile 1: %v", err)
	}
	b, err := tile.NewPosition(2, 'B', 3, 2)
	if err != nil {
		t.Fatalf("creating tile 2: %v", err)
	}
	b0 := newTestBoard(t, *a, *b)
	swapped, err := b0.Place(*a, TileTarget{*b})
	if err != nil {
		t.Fatalf("unwanted error swapping: %v", err)
	}
	wantSwapped := []tile.Position{
		{Tile: tile.Tile{ID: 1, Ch: 'A'}, X: 3, Y: 2},
		{Tile: tile.Tile{ID: 2, Ch: 'B'}, X: 0, Y: 0},
	}
	if diff := cmp.Diff(wantSwapped, swapped.Tiles()); diff != "" {
		t.Errorf("swap mismatch (-want +got):\n%v", diff)
	}
	moved, err := b0.Place(*a, Cell{5, 5})
	if err != nil {
		t.Fatalf("unwanted error moving: %v", err)
	}
	wantMoved := []tile.Position{
		{Tile: tile.Tile{ID: 1, Ch: 'A'}, X: 5, Y: 5},
		*b,
	}
	if diff := cmp.Diff(wantMoved, moved.Tiles()); diff != "" {
		t.Errorf("move mismatch (-want +got):\n%v", diff)
	}
}
