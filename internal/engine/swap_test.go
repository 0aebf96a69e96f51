package engine

import (
	"testing"

	"github.com/Jkey189/Hex/internal/hex"
)

func TestShouldSwap(t *testing.T) {
	tests := []struct {
		m    hex.Move
		size int
		want bool
	}{
		{hex.Move{Row: 5, Col: 5}, 11, true},
		{hex.Move{Row: 4, Col: 6}, 11, true},
		{hex.Move{Row: 6, Col: 4}, 11, true},
		{hex.Move{Row: 7, Col: 5}, 11, false},
		{hex.Move{Row: 0, Col: 0}, 11, false},
		{hex.Move{Row: 10, Col: 10}, 11, false},
		{hex.Move{Row: 1, Col: 1}, 3, true},
		{hex.Move{Row: 0, Col: 0}, 3, true},
		{hex.Move{Row: 11, Col: 5}, 11, false},
		{hex.NoMove, 11, false},
	}
	for _, tc := range tests {
		if got := ShouldSwap(tc.m, tc.size); got != tc.want {
			t.Errorf("ShouldSwap(%v, %d) = %v, want %v", tc.m, tc.size, got, tc.want)
		}
	}
}
