package game

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Jkey189/Hex/internal/engine"
	"github.com/Jkey189/Hex/internal/hex"
)

func newTestManager() *Manager { return NewManager(zerolog.Nop()) }

func TestNewGameAndGet(t *testing.T) {
	m := newTestManager()
	g, err := m.NewGame(7)
	if err != nil {
		t.Fatal(err)
	}
	if g.ID == "" || g.Board.Size() != 7 || g.ToMove != hex.PlayerA || !g.FirstMove.IsNone() {
		t.Fatalf("unexpected new game %+v", g)
	}

	got, err := m.Get(g.ID)
	if err != nil || got.ID != g.ID {
		t.Fatalf("get: %v %v", got, err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := m.NewGame(0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("want ErrInvalidSize, got %v", err)
	}
	if _, err := m.NewGame(hex.MaxSize + 1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("want ErrInvalidSize, got %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m := newTestManager()
	g, _ := m.NewGame(3)
	g.Board.Place(hex.Move{Row: 1, Col: 1}, hex.PlayerA)

	got, _ := m.Get(g.ID)
	if !got.Board.IsEmpty() {
		t.Fatalf("caller mutation leaked into the manager")
	}
}

func TestPlayAlternatesAndDetectsWin(t *testing.T) {
	m := newTestManager()
	g, _ := m.NewGame(3)

	moves := []hex.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}
	var err error
	for i, mv := range moves {
		g, err = m.Play(g.ID, mv)
		if err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
	}
	if g.Winner != hex.PlayerA || g.Status() != "a_won" || g.MoveCount != 5 {
		t.Fatalf("want A win after 5 moves, got %+v", g)
	}
	if _, err := m.Play(g.ID, hex.Move{Row: 2, Col: 2}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("want ErrGameOver, got %v", err)
	}
}

func TestPlayRejectsIllegal(t *testing.T) {
	m := newTestManager()
	g, _ := m.NewGame(3)
	g, _ = m.Play(g.ID, hex.Move{Row: 1, Col: 1})

	for _, mv := range []hex.Move{{Row: 1, Col: 1}, {Row: 3, Col: 0}, {Row: -1, Col: 2}} {
		if _, err := m.Play(g.ID, mv); !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("%v: want ErrIllegalMove, got %v", mv, err)
		}
	}
	got, _ := m.Get(g.ID)
	if got.MoveCount != 1 || got.ToMove != hex.PlayerB {
		t.Fatalf("rejected moves changed state: %+v", got)
	}
}

func TestSwap(t *testing.T) {
	m := newTestManager()
	g, _ := m.NewGame(5)
	if _, err := m.Swap(g.ID); !errors.Is(err, ErrSwapNotAllowed) {
		t.Fatalf("swap before first move: %v", err)
	}

	first := hex.Move{Row: 2, Col: 3}
	g, _ = m.Play(g.ID, first)
	g, err := m.Swap(g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Board.At(first.Row, first.Col) != hex.PlayerB || !g.Swapped {
		t.Fatalf("stone not converted: %+v", g)
	}
	if g.ToMove != hex.PlayerA || g.MoveCount != 2 {
		t.Fatalf("after swap A should move, got %+v", g)
	}
	if g.Board.Count(hex.PlayerA) != 0 || g.Board.Count(hex.PlayerB) != 1 {
		t.Fatalf("stone counts wrong after swap")
	}
	if _, err := m.Swap(g.ID); !errors.Is(err, ErrSwapNotAllowed) {
		t.Fatalf("second swap: %v", err)
	}
}

func TestAIMoveSwapsCentralOpening(t *testing.T) {
	m := newTestManager()
	g, _ := m.NewGame(5)
	g, _ = m.Play(g.ID, hex.Move{Row: 2, Col: 2})

	g, res, err := m.AIMove(g.ID, engine.SearchConfig{MaxDepth: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Swapped || !g.Swapped || g.ToMove != hex.PlayerA {
		t.Fatalf("central opening should be swapped: %+v %+v", res, g)
	}
}

func TestAIMovePlaysAndTakesWin(t *testing.T) {
	m := newTestManager()
	g, _ := m.NewGame(3)
	// A: (0,0) (2,0)，B: (0,2) (1,1)，轮到 A，(1,0) 一步胜
	for _, mv := range []hex.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 1, Col: 1}} {
		g, _ = m.Play(g.ID, mv)
	}

	g, res, err := m.AIMove(g.ID, engine.SearchConfig{MaxDepth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Swapped || res.Search.BestMove != (hex.Move{Row: 1, Col: 0}) {
		t.Fatalf("unexpected ai result %+v", res)
	}
	if g.Winner != hex.PlayerA {
		t.Fatalf("AI move should win, got %+v", g)
	}
	if _, _, err := m.AIMove(g.ID, engine.SearchConfig{MaxDepth: 1}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("want ErrGameOver, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	m := newTestManager()
	g, _ := m.NewGame(3)
	if m.Len() != 1 {
		t.Fatalf("len %d", m.Len())
	}
	if err := m.Delete(g.ID); err != nil {
		t.Fatal(err)
	}
	if err := m.Delete(g.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
