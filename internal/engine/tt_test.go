package engine

import "testing"

func TestTransTableProbeDepth(t *testing.T) {
	tt := newTransTable()
	tt.store(42, "abc", 3, 17, ttExact)

	if _, ok := tt.probe(42, "abc", 4); ok {
		t.Fatalf("shallower entry must not answer a deeper probe")
	}
	e, ok := tt.probe(42, "abc", 2)
	if !ok || e.Score != 17 || e.Flag != ttExact {
		t.Fatalf("got %+v ok=%v", e, ok)
	}
	if tt.probes != 2 || tt.hits != 1 {
		t.Fatalf("probes=%d hits=%d", tt.probes, tt.hits)
	}
}

func TestTransTableRejectsCollision(t *testing.T) {
	tt := newTransTable()
	tt.store(7, "board-one", 5, 100, ttLower)
	if _, ok := tt.probe(7, "board-two", 1); ok {
		t.Fatalf("different board under the same key must miss")
	}

	// 碰撞的新局面直接替换，哪怕更浅
	tt.store(7, "board-two", 1, -3, ttUpper)
	e, ok := tt.probe(7, "board-two", 1)
	if !ok || e.Score != -3 {
		t.Fatalf("collision replace failed: %+v %v", e, ok)
	}
}

func TestTransTableKeepsDeeperResult(t *testing.T) {
	tt := newTransTable()
	tt.store(1, "x", 4, 10, ttExact)
	tt.store(1, "x", 2, 99, ttExact)
	if e, _ := tt.probe(1, "x", 0); e.Score != 10 || e.Depth != 4 {
		t.Fatalf("shallow store overwrote deeper: %+v", e)
	}
	tt.store(1, "x", 4, 11, ttLower)
	if e, _ := tt.probe(1, "x", 0); e.Score != 11 || e.Flag != ttLower {
		t.Fatalf("equal depth should overwrite: %+v", e)
	}
}

func TestTransTableClear(t *testing.T) {
	tt := newTransTable()
	tt.store(1, "x", 1, 1, ttExact)
	tt.probe(1, "x", 1)
	tt.clear()
	if tt.size() != 0 || tt.probes != 0 || tt.hits != 0 {
		t.Fatalf("clear left size=%d probes=%d hits=%d", tt.size(), tt.probes, tt.hits)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score, alpha, beta int
		want               ttFlag
	}{
		{5, 0, 10, ttExact},
		{0, 0, 10, ttUpper},
		{-4, 0, 10, ttUpper},
		{10, 0, 10, ttLower},
		{12, 0, 10, ttLower},
	}
	for _, tc := range tests {
		if got := classify(tc.score, tc.alpha, tc.beta); got != tc.want {
			t.Errorf("classify(%d,%d,%d) = %v, want %v", tc.score, tc.alpha, tc.beta, got, tc.want)
		}
	}
}
