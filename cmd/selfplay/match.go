package main

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Jkey189/Hex/internal/engine"
	"github.com/Jkey189/Hex/internal/hex"
)

type PlayerConfig struct {
	Name      string
	Depth     int
	TimeLimit time.Duration
}

func (pc PlayerConfig) searchConfig() engine.SearchConfig {
	return engine.SearchConfig{MaxDepth: pc.Depth, TimeLimit: pc.TimeLimit}
}

type GameRecord struct {
	Winner  hex.Player
	Moves   []hex.Move
	Swapped bool
	Board   *hex.Board
}

// playGame 下完一整盘。opening 不为 NoMove 时作为先手第一手；
// 第二手由后手按交换规则决定要不要换。onMove 可以为 nil。
func playGame(size int, a, b PlayerConfig, opening hex.Move, seed int64,
	onMove func(ply int, p hex.Player, res engine.SearchResult)) GameRecord {

	board := hex.NewBoard(size)
	engines := map[hex.Player]*engine.Engine{hex.PlayerA: engine.NewEngine(), hex.PlayerB: engine.NewEngine()}
	configs := map[hex.Player]PlayerConfig{hex.PlayerA: a, hex.PlayerB: b}
	for _, e := range engines {
		e.Seed(seed)
	}

	rec := GameRecord{Board: board}
	toMove := hex.PlayerA
	if !opening.IsNone() && board.Place(opening, hex.PlayerA) {
		rec.Moves = append(rec.Moves, opening)
		toMove = hex.PlayerB
		// 1×1 棋盘第一手就赢了
		if w := board.Winner(); w != hex.Empty {
			rec.Winner = w
			return rec
		}
	}

	for ply := len(rec.Moves); !board.IsFull(); ply++ {
		if ply == 1 && !rec.Swapped && engine.ShouldSwap(rec.Moves[0], size) {
			board.Remove(rec.Moves[0])
			board.Place(rec.Moves[0], hex.PlayerB)
			rec.Swapped = true
			rec.Moves = append(rec.Moves, rec.Moves[0])
			toMove = hex.PlayerA
			if w := board.Winner(); w != hex.Empty {
				rec.Winner = w
				break
			}
			continue
		}

		res := engines[toMove].Search(board, toMove, configs[toMove].searchConfig())
		if res.BestMove.IsNone() || !board.Place(res.BestMove, toMove) {
			break
		}
		rec.Moves = append(rec.Moves, res.BestMove)
		if onMove != nil {
			onMove(ply, toMove, res)
		}
		if w := board.Winner(); w != hex.Empty {
			rec.Winner = w
			break
		}
		toMove = toMove.Opponent()
	}
	return rec
}

type MatchResult struct {
	Games   int
	Wins    map[string]int
	Swaps   int
	Plies   int
	Elapsed time.Duration
}

// runMatch 并发跑 games 盘，奇偶盘交换先后手；每盘第一手随机，保证对局不全一样
func runMatch(games, size, workers int, p1, p2 PlayerConfig, seed int64, log zerolog.Logger) (MatchResult, error) {
	res := MatchResult{Games: games, Wins: map[string]int{p1.Name: 0, p2.Name: 0}}
	start := time.Now()

	var mu sync.Mutex
	g := errgroup.Group{}
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			first, second := p1, p2
			if i%2 == 1 {
				first, second = p2, p1
			}
			rng := rand.New(rand.NewSource(seed + int64(i)))
			opening := hex.Move{Row: rng.Intn(size), Col: rng.Intn(size)}

			rec := playGame(size, first, second, opening, seed+int64(i), nil)

			winner := "none"
			switch rec.Winner {
			case hex.PlayerA:
				winner = first.Name
			case hex.PlayerB:
				winner = second.Name
			}
			log.Info().
				Int("game", i+1).
				Str("a", first.Name).
				Str("b", second.Name).
				Str("winner", winner).
				Bool("swapped", rec.Swapped).
				Int("plies", len(rec.Moves)).
				Msg("game finished")

			mu.Lock()
			defer mu.Unlock()
			if rec.Winner != hex.Empty {
				res.Wins[winner]++
			}
			if rec.Swapped {
				res.Swaps++
			}
			res.Plies += len(rec.Moves)
			return nil
		})
	}
	err := g.Wait()
	res.Elapsed = time.Since(start)
	return res, err
}
