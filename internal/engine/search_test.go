package engine

import (
	"testing"
	"time"

	"github.com/Jkey189/Hex/internal/hex"
)

func mustDecode(t *testing.T, s string) *hex.Board {
	t.Helper()
	b, err := hex.Decode(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return b
}

func TestEmptyBoardPlaysCenter(t *testing.T) {
	for n := 1; n <= 11; n++ {
		b := hex.NewBoard(n)
		res := NewEngine().Search(b, hex.PlayerA, SearchConfig{MaxDepth: 3})
		if res.BestMove != b.Center() || res.Reason != ReasonOpening {
			t.Fatalf("size %d: got %v (%s), want center %v", n, res.BestMove, res.Reason, b.Center())
		}
		if !b.IsEmpty() {
			t.Fatalf("size %d: board mutated", n)
		}
	}
}

func TestTakesImmediateWinAtAnyDepth(t *testing.T) {
	// A: (0,0)、(2,0)，唯一胜点 (1,0)；B 同样在 (1,0) 有胜点
	b := mustDecode(t, "x.o/.o./x..")
	for depth := 1; depth <= 4; depth++ {
		res := NewEngine().Search(b, hex.PlayerA, SearchConfig{MaxDepth: depth})
		if res.BestMove != (hex.Move{Row: 1, Col: 0}) {
			t.Fatalf("depth %d: got %v, want (1,0)", depth, res.BestMove)
		}
		if res.Reason != ReasonWin || res.Score != WinScore {
			t.Fatalf("depth %d: got reason %s score %d", depth, res.Reason, res.Score)
		}
	}
}

func TestBlocksSingleThreat(t *testing.T) {
	// B 占满第 0 行前三格，只差 (0,3)
	b := mustDecode(t, "ooo./.x../.x../....")
	if w := b.WinningCells(hex.PlayerA); len(w) != 0 {
		t.Fatalf("fixture broken: A has wins %v", w)
	}

	for depth := 1; depth <= 3; depth++ {
		mv := NewEngine().FindBestMove(b, depth, hex.PlayerA)
		if mv != (hex.Move{Row: 0, Col: 3}) {
			t.Fatalf("depth %d: got %v, want block at (0,3)", depth, mv)
		}
		b.Place(mv, hex.PlayerA)
		if w := b.WinningCells(hex.PlayerB); len(w) != 0 {
			t.Fatalf("B still wins at %v after the block", w)
		}
		b.Remove(mv)
	}
}

func TestSearchLeavesBoardUnchanged(t *testing.T) {
	b := mustDecode(t, "...../.x.../..o../...x./o....")
	key, hash := b.Key(), b.Hash()

	for _, p := range []hex.Player{hex.PlayerA, hex.PlayerB} {
		for depth := 1; depth <= 3; depth++ {
			mv := FindBestMove(b, depth, p)
			if b.Key() != key || b.Hash() != hash {
				t.Fatalf("player %v depth %d: board changed", p, depth)
			}
			if b.At(mv.Row, mv.Col) != hex.Empty || !b.InBounds(mv.Row, mv.Col) {
				t.Fatalf("player %v depth %d: illegal move %v", p, depth, mv)
			}
		}
	}
}

func TestFindsForcedWinAndStopsEarly(t *testing.T) {
	// A 在中心；落 (0,1) 或 (0,2) 后下方有两个胜点，B 只能堵一个
	b := mustDecode(t, "o../.x./...")

	var depths []int
	res := NewEngine().Search(b, hex.PlayerA, SearchConfig{
		MaxDepth: 6,
		OnDepth:  func(r DepthReport) { depths = append(depths, r.Depth) },
	})
	if res.Reason != ReasonSearch {
		t.Fatalf("got reason %s, want search", res.Reason)
	}
	if res.Score < WinScore {
		t.Fatalf("expected forced win, got score %d", res.Score)
	}
	if res.Depth != 3 || len(depths) != 3 {
		t.Fatalf("should stop at depth 3, got depth=%d reports=%v", res.Depth, depths)
	}

	b.Place(res.BestMove, hex.PlayerA)
	if w := b.WinningCells(hex.PlayerA); len(w) < 2 {
		t.Fatalf("winning move %v should leave a double threat, got %v", res.BestMove, w)
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	b := mustDecode(t, "...../..x../.o.../...../.....")
	e := NewEngine()
	first := e.FindBestMove(b, 2, hex.PlayerA)
	second := e.FindBestMove(b, 2, hex.PlayerA)
	third := NewEngine().FindBestMove(b, 2, hex.PlayerA)
	if first != second || first != third {
		t.Fatalf("non-deterministic: %v %v %v", first, second, third)
	}
}

func TestFullBoardReturnsNoMove(t *testing.T) {
	b := mustDecode(t, "xo/ox")
	res := NewEngine().Search(b, hex.PlayerB, SearchConfig{MaxDepth: 2})
	if !res.BestMove.IsNone() || res.Reason != ReasonNone {
		t.Fatalf("got %v (%s), want NoMove", res.BestMove, res.Reason)
	}
}

func TestTimeLimitStopsBetweenDepths(t *testing.T) {
	b := mustDecode(t, "...../.x.../..o../...../.....")
	res := NewEngine().Search(b, hex.PlayerA, SearchConfig{
		MaxDepth:  4,
		TimeLimit: time.Nanosecond,
	})
	if res.Depth != 1 {
		t.Fatalf("expired budget should still finish depth 1 only, got %d", res.Depth)
	}
	if res.BestMove.IsNone() {
		t.Fatalf("depth 1 must produce a move")
	}
}

func TestAlphaBetaRestoresBoardAndUsesCache(t *testing.T) {
	b := mustDecode(t, "..../.x../..o./....")
	key := b.Key()

	e := NewEngine()
	plain := e.alphaBeta(b, 3, -scoreInf, scoreInf, true, hex.PlayerA, false)
	if e.tt.size() != 0 {
		t.Fatalf("cache disabled but table has %d entries", e.tt.size())
	}
	cached := e.alphaBeta(b, 3, -scoreInf, scoreInf, true, hex.PlayerA, true)
	if plain != cached {
		t.Fatalf("full-window value changed with cache: %d vs %d", plain, cached)
	}
	if e.tt.size() == 0 {
		t.Fatalf("cache enabled but nothing stored")
	}
	if b.Key() != key {
		t.Fatalf("alphaBeta left the board modified")
	}

	again := e.alphaBeta(b, 3, -scoreInf, scoreInf, true, hex.PlayerA, true)
	if again != cached {
		t.Fatalf("second cached call differs: %d vs %d", again, cached)
	}
}
