package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/Jkey189/Hex/internal/engine"
	"github.com/Jkey189/Hex/internal/hex"
)

// TestCase 一个随机局面及引擎对它的判断，给前端 / 其他实现做对照
type TestCase struct {
	Board      [][]int  `json:"board"`
	Position   string   `json:"position"`
	ToMove     int      `json:"to_move"`
	Winner     int      `json:"winner"`
	WinsA      [][2]int `json:"wins_a"`
	WinsB      [][2]int `json:"wins_b"`
	Eval       int      `json:"eval"`
	BestMove   [2]int   `json:"best_move"`
	Reason     string   `json:"reason"`
	Depth      int      `json:"depth"`
	ShouldSwap bool     `json:"should_swap,omitempty"`
	ThreatWin  *[2]int  `json:"threat_win,omitempty"`
}

func pairs(ms []hex.Move) [][2]int {
	out := make([][2]int, len(ms))
	for i, m := range ms {
		out[i] = [2]int{m.Row, m.Col}
	}
	return out
}

func main() {
	size := flag.Int("size", 5, "board size")
	games := flag.Int("games", 10, "number of random games")
	depth := flag.Int("depth", 2, "search depth for best_move")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "hex_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for g := 0; g < *games; g++ {
		b := hex.NewBoard(*size)
		p := hex.PlayerA
		for b.Winner() == hex.Empty {
			legal := b.EmptyCells()
			if len(legal) == 0 {
				break
			}

			e := engine.NewEngine()
			e.Seed(*seed)
			res := e.Search(b, p, engine.SearchConfig{MaxDepth: *depth})

			tc := TestCase{
				Board:    b.Grid(),
				Position: b.Encode(),
				ToMove:   int(p),
				WinsA:    pairs(b.WinningCells(hex.PlayerA)),
				WinsB:    pairs(b.WinningCells(hex.PlayerB)),
				Eval:     engine.Evaluate(b, p),
				BestMove: [2]int{res.BestMove.Row, res.BestMove.Col},
				Reason:   string(res.Reason),
				Depth:    res.Depth,
			}
			if tr := e.ThreatSearch(b, p, *depth*2); tr.CanWin {
				tc.ThreatWin = &[2]int{tr.Move.Row, tr.Move.Col}
			}
			if b.Count(hex.PlayerA) == 1 && b.Count(hex.PlayerB) == 0 {
				tc.ShouldSwap = engine.ShouldSwap(firstStone(b), *size)
			}
			testCases = append(testCases, tc)

			// 随机走一步，让局面分散开
			b.Place(legal[rng.Intn(len(legal))], p)
			p = p.Opponent()
		}

		final := b.Grid()
		testCases = append(testCases, TestCase{
			Board:    final,
			Position: b.Encode(),
			ToMove:   int(p),
			Winner:   int(b.Winner()),
			BestMove: [2]int{-1, -1},
			Reason:   string(engine.ReasonNone),
		})
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *games, *out)
}

func firstStone(b *hex.Board) hex.Move {
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.At(r, c) == hex.PlayerA {
				return hex.Move{Row: r, Col: c}
			}
		}
	}
	return hex.NoMove
}
