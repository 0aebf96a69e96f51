package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

var (
	benchGames   = flag.Int("games", 10, "number of games to play (bench mode)")
	benchDepth2  = flag.Int("depth2", 1, "search depth of player 2 (bench mode)")
	benchWorkers = flag.Int("workers", runtime.NumCPU(), "games played in parallel (bench mode)")
	benchSeed    = flag.Int64("seed", 1, "seed for random openings (bench mode)")
)

// runBenchmark 两个深度对打，先后手轮换
func runBenchmark(size, depth1 int, limit time.Duration, log zerolog.Logger) {
	p1 := PlayerConfig{Name: fmt.Sprintf("Alpha-Beta (Depth %d)", depth1), Depth: depth1, TimeLimit: limit}
	p2 := PlayerConfig{Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *benchDepth2), Depth: *benchDepth2, TimeLimit: limit}
	if depth1 == *benchDepth2 {
		p2.Name += " #2"
	}

	log.Info().
		Int("games", *benchGames).
		Int("size", size).
		Int("workers", *benchWorkers).
		Msg("benchmark start")

	res, err := runMatch(*benchGames, size, *benchWorkers, p1, p2, *benchSeed, log)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}

	fmt.Printf("\n=== Final Score (%d games, %v) ===\n", res.Games, res.Elapsed.Round(time.Millisecond))
	fmt.Printf("%s: %d\n", p1.Name, res.Wins[p1.Name])
	fmt.Printf("%s: %d\n", p2.Name, res.Wins[p2.Name])
	fmt.Printf("Swaps: %d\n", res.Swaps)
	if res.Games > 0 {
		fmt.Printf("Avg plies: %.1f\n", float64(res.Plies)/float64(res.Games))
	}
}
