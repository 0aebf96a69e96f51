package hex

import (
	"errors"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	b := NewBoard(4)
	b.Place(Move{0, 1}, PlayerA)
	b.Place(Move{3, 2}, PlayerB)

	s := b.Encode()
	if s != ".x../..../..../..o." {
		t.Fatalf("unexpected encoding %q", s)
	}
	decoded, err := Decode(s)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !decoded.Equal(b) || decoded.Hash() != b.Hash() {
		t.Fatalf("decoded board differs")
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "../.", "..x/...", "../.z"} {
		if _, err := Decode(s); !errors.Is(err, ErrInvalidBoard) {
			t.Fatalf("Decode(%q): got err=%v, want ErrInvalidBoard", s, err)
		}
	}
}

func TestFromGrid(t *testing.T) {
	grid := [][]int{
		{1, 0, 0},
		{0, 2, 0},
		{1, 0, 2},
	}
	b, err := FromGrid(grid)
	if err != nil {
		t.Fatalf("FromGrid failed: %v", err)
	}
	if b.At(0, 0) != PlayerA || b.At(1, 1) != PlayerB || b.At(2, 2) != PlayerB {
		t.Fatalf("cells not restored")
	}
	if b.Hash() != b.CalculateHash() {
		t.Fatalf("hash not maintained while loading")
	}

	back := b.Grid()
	for r := range grid {
		for c := range grid[r] {
			if back[r][c] != grid[r][c] {
				t.Fatalf("grid round trip differs at (%d,%d)", r, c)
			}
		}
	}
}

func TestFromGridRejectsMalformed(t *testing.T) {
	cases := map[string][][]int{
		"empty":     {},
		"ragged":    {{0, 0}, {0}},
		"bad code":  {{0, 3}, {0, 0}},
		"negative":  {{-1, 0}, {0, 0}},
		"too large": make([][]int, MaxSize+1),
	}
	for name, grid := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := FromGrid(grid); !errors.Is(err, ErrInvalidBoard) {
				t.Fatalf("got err=%v, want ErrInvalidBoard", err)
			}
		})
	}
}
