package engine

import (
	"testing"

	"github.com/Jkey189/Hex/internal/hex"
)

func TestEvaluateWonPosition(t *testing.T) {
	b := mustDecode(t, "x../x../x..")
	if got := Evaluate(b, hex.PlayerA); got != WinScore {
		t.Fatalf("winner: got %d want %d", got, WinScore)
	}
	if got := Evaluate(b, hex.PlayerB); got != -WinScore {
		t.Fatalf("loser: got %d want %d", got, -WinScore)
	}
}

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	for _, n := range []int{1, 3, 5, 8} {
		if got := Evaluate(hex.NewBoard(n), hex.PlayerA); got != 0 {
			t.Fatalf("size %d: got %d", n, got)
		}
	}
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	positions := []string{
		"...../..x../...../.o.../.....",
		"x..../.xo../..o../...x./o....",
		"..../.x../.ox./....",
	}
	for _, s := range positions {
		b := mustDecode(t, s)
		a, o := Evaluate(b, hex.PlayerA), Evaluate(b, hex.PlayerB)
		if a != -o {
			t.Fatalf("%s: A=%d B=%d", s, a, o)
		}
	}
}

func TestCenterStoneFavorsOwner(t *testing.T) {
	b := hex.NewBoard(5)
	b.Place(b.Center(), hex.PlayerA)
	if got := Evaluate(b, hex.PlayerA); got <= 0 {
		t.Fatalf("A with the only stone should lead, got %d", got)
	}
}

func TestCustomWeights(t *testing.T) {
	b := mustDecode(t, "x.../x.../..o./....")
	w := Weights{Material: 1}
	if got := w.Evaluate(b, hex.PlayerA); got != 1 {
		t.Fatalf("material only: got %d want 1", got)
	}
	w = Weights{PathDiff: 1}
	// A 还差 2 步，B 还差 3 步
	if got := w.Evaluate(b, hex.PlayerA); got != 1 {
		t.Fatalf("path only: got %d want 1", got)
	}
}

func TestShortestPath(t *testing.T) {
	tests := []struct {
		name  string
		board string
		p     hex.Player
		want  int
	}{
		{"empty A", "...../...../...../...../.....", hex.PlayerA, 5},
		{"empty B", "...../...../...../...../.....", hex.PlayerB, 5},
		{"A column prefix", "x..../x..../x..../...../.....", hex.PlayerA, 2},
		{"B row", "...../ooo../...../...../.....", hex.PlayerB, 2},
		{"A cut off by B row", "...../...../ooooo/...../.....", hex.PlayerA, 26},
		{"A connected", "x../x../x..", hex.PlayerA, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustDecode(t, tt.board)
			if got := shortestPath(b, tt.p); got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestExtractFeaturesLinks(t *testing.T) {
	// 两块 A 之间隔一行空格，能虚连
	b := mustDecode(t, "...../.x.../...../.x.../.....")
	f := extractFeatures(b, hex.PlayerA)
	if f.links != 1 {
		t.Fatalf("links: got %d want 1", f.links)
	}
	if f.connectivity != 2 || f.material != 2 {
		t.Fatalf("groups: connectivity=%d material=%d", f.connectivity, f.material)
	}

	// B 的墙在右侧，A 仍能从左边绕过去
	b = mustDecode(t, "..o../.xo../..o../.xo../..o..")
	if f := extractFeatures(b, hex.PlayerA); f.links != 1 {
		t.Fatalf("same column stones are still linked through col 0-1, got %d", f.links)
	}
	b = mustDecode(t, "...../.x.../ooooo/.x.../.....")
	if f := extractFeatures(b, hex.PlayerA); f.links != 0 {
		t.Fatalf("row wall should cut the link, got %d", f.links)
	}
}

func TestDequeOrder(t *testing.T) {
	var d deque
	d.push(1, false)
	d.push(2, true)
	d.push(3, false)
	d.push(4, true)

	want := []int{4, 2, 1, 3}
	for _, w := range want {
		if d.empty() {
			t.Fatalf("deque drained early")
		}
		if got := d.pop(); got != w {
			t.Fatalf("got %d want %d", got, w)
		}
	}
	if !d.empty() {
		t.Fatalf("deque should be empty")
	}
}
