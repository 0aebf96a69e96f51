package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Jkey189/Hex/internal/config"
	"github.com/Jkey189/Hex/internal/engine"
	"github.com/Jkey189/Hex/internal/hex"
)

func main() {
	cfg := config.Load()

	mode := flag.String("mode", "play", "play: one verbose game; bench: depth-vs-depth match")
	size := flag.Int("size", cfg.DefaultSize, "board size")
	depth := flag.Int("depth", cfg.DefaultDepth, "search depth (play mode, and player 1 in bench mode)")
	timeMs := flag.Int("time", int(cfg.TimeLimit.Milliseconds()), "per-move time limit in ms, 0 = none")
	flag.Parse()

	logger := cfg.Logger(true)
	if *size < hex.MinSize || *size > hex.MaxSize {
		log.Fatal().Int("size", *size).Msg("board size out of range")
	}
	limit := time.Duration(*timeMs) * time.Millisecond

	switch *mode {
	case "play":
		d := engine.DepthForSize(*depth, *size)
		pc := PlayerConfig{Name: fmt.Sprintf("depth-%d", d), Depth: d, TimeLimit: limit}
		logger.Info().Int("size", *size).Int("depth", d).Msg("selfplay start")

		rec := playGame(*size, pc, pc, hex.NoMove, time.Now().UnixNano(),
			func(ply int, p hex.Player, res engine.SearchResult) {
				logger.Info().
					Int("ply", ply+1).
					Str("side", p.String()).
					Int("row", res.BestMove.Row).
					Int("col", res.BestMove.Col).
					Int("score", res.Score).
					Int("depth", res.Depth).
					Int64("nodes", res.Nodes).
					Str("reason", string(res.Reason)).
					Dur("took", res.TimeUsed).
					Msg("move")
			})

		fmt.Println(rec.Board.String())
		fmt.Printf("Winner: %v after %d plies (swapped=%v)\n", rec.Winner, len(rec.Moves), rec.Swapped)
	case "bench":
		runBenchmark(*size, *depth, limit, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}
