package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jacobpatterson1549/letter-board/game/tile"
)

func newTestTile(id tile.ID, ch rune, x tile.X, y tile.Y) tile.Position {
	return tile.Position{
		Tile: tile.Tile{
			ID: id,
			Ch: tile.Letter(ch),
		},
		X: x,
		Y: y,
	}
}

func newTestBoard(t *testing.T, tilePositions ...tile.Position) *Board {
	t.Helper()
	b, err := New(DefaultConfig(), tilePositions)
	if err != nil {
		t.Fatalf("creating test board: %v", err)
	}
	return b
}

func TestNew(t *testing.T) {
	newTests := []struct {
		Config
		tilePositions []tile.Position
		wantOk        bool
	}{
		{ // invalid config
			tilePositions: []tile.Position{newTestTile(1, 'A', 0, 0)},
		},
		{ // duplicate id
			Config: DefaultConfig(),
			tilePositions: []tile.Position{
				newTestTile(1, 'A', 0, 0),
				newTestTile(1, 'B', 1, 0),
			},
		},
		{ // same cell
			Config: DefaultConfig(),
			tilePositions: []tile.Position{
				newTestTile(1, 'A', 4, 4),
				newTestTile(2, 'B', 4, 4),
			},
		},
		{ // no letter
			Config: DefaultConfig(),
			tilePositions: []tile.Position{
				newTestTile(1, 0, 0, 0),
			},
		},
		{ // lowercase letter
			Config: DefaultConfig(),
			tilePositions: []tile.Position{
				newTestTile(1, 'a', 0, 0),
			},
		},
		{ // off board
			Config: DefaultConfig(),
			tilePositions: []tile.Position{
				newTestTile(1, 'A', 10, 0),
			},
		},
		{
			Config: DefaultConfig(),
			wantOk: true,
		},
		{
			Config: DefaultConfig(),
			tilePositions: []tile.Position{
				newTestTile(2, 'B', 3, 2),
				newTestTile(1, 'A', 0, 0),
			},
			wantOk: true,
		},
	}
	for i, test := range newTests {
		got, err := New(test.Config, test.tilePositions)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		default:
			if diff := cmp.Diff(test.tilePositions, got.Tiles(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Test %v: tiles mismatch (-want +got):\n%v", i, diff)
			}
		}
	}
}

func TestNewCopiesTiles(t *testing.T) {
	tilePositions := []tile.Position{newTestTile(1, 'A', 0, 0)}
	b := newTestBoard(t, tilePositions...)
	tilePositions[0].X = 5
	tiles := b.Tiles()
	tiles[0].Y = 5
	if want, got := newTestTile(1, 'A', 0, 0), b.Tiles()[0]; want != got {
		t.Errorf("board tiles modified from outside: wanted %v, got %v", want, got)
	}
}

func TestOccupied(t *testing.T) {
	b := newTestBoard(t,
		newTestTile(1, 'A', 0, 0),
		newTestTile(2, 'B', 3, 2),
	)
	occupiedTests := []struct {
		x    tile.X
		y    tile.Y
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{2, 3, false},
		{9, 6, false},
		{-1, -1, false},
	}
	for i, test := range occupiedTests {
		if got := b.Occupied(test.x, test.y); test.want != got {
			t.Errorf("Test %v: wanted occupied(%v,%v) to be %v", i, test.x, test.y, test.want)
		}
	}
}

func TestTileAt(t *testing.T) {
	tp := newTestTile(2, 'B', 3, 2)
	b := newTestBoard(t, tp)
	got, ok := b.TileAt(Cell{3, 2})
	switch {
	case !ok:
		t.Error("wanted tile at (3,2)")
	case tp != got:
		t.Errorf("wanted %v, got %v", tp, got)
	}
	if _, ok := b.TileAt(Cell{2, 3}); ok {
		t.Error("wanted no tile at (2,3)")
	}
}

func TestCanDropOnCell(t *testing.T) {
	b := newTestBoard(t, newTestTile(1, 'A', 0, 0))
	canDropTests := []struct {
		Cell
		want bool
	}{
		{Cell{0, 0}, false},
		{Cell{1, 0}, true},
		{Cell{10, 0}, false},
		{Cell{0, -1}, false},
	}
	for i, test := range canDropTests {
		if got := b.CanDropOnCell(test.Cell); test.want != got {
			t.Errorf("Test %v: wanted %v for %v, got %v", i, test.want, test.Cell, got)
		}
	}
}

func TestEqual(t *testing.T) {
	a := newTestTile(1, 'A', 0, 0)
	b := newTestTile(2, 'B', 3, 2)
	b1 := newTestBoard(t, a, b)
	equalTests := []struct {
		other *Board
		want  bool
	}{
		{b1, true},
		{newTestBoard(t, a, b), true},
		{newTestBoard(t, b, a), false},
		{newTestBoard(t, a), false},
		{newTestBoard(t, a, b.MoveTo(4, 4)), false},
		{nil, false},
	}
	for i, test := range equalTests {
		if got := b1.Equal(test.other); test.want != got {
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, got)
		}
	}
}
