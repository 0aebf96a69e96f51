package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Jkey189/Hex/internal/engine"
	"github.com/Jkey189/Hex/internal/hex"
)

// 打印一个局面：棋盘、胜负、双方一步胜点、排序后的前几手和搜索结果
func main() {
	pos := flag.String("pos", "...../...../...../...../.....", "board in Encode() form, rows separated by '/'")
	side := flag.String("side", "a", "side to move: a or b")
	depth := flag.Int("depth", 3, "search depth")
	top := flag.Int("top", 8, "how many ordered moves to print")
	flag.Parse()

	b, err := hex.Decode(*pos)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p := hex.PlayerA
	if *side == "b" || *side == "B" {
		p = hex.PlayerB
	}

	fmt.Println(b.String())
	fmt.Println("Encoded:", b.Encode())
	fmt.Println("Winner:", b.Winner())
	fmt.Println("Eval:", engine.Evaluate(b, p))
	fmt.Println("A wins at:", b.WinningCells(hex.PlayerA))
	fmt.Println("B wins at:", b.WinningCells(hex.PlayerB))

	if tr := engine.NewEngine().ThreatSearch(b, p, *depth*2); tr.CanWin {
		fmt.Printf("Threat win: %v in %d threats (%d nodes)\n", tr.Move, tr.Depth, tr.Nodes)
	} else {
		fmt.Printf("Threat win: none (%d nodes)\n", tr.Nodes)
	}

	ordered := engine.OrderedMoves(b, p)
	if len(ordered) > *top {
		ordered = ordered[:*top]
	}
	fmt.Println("Ordered moves:", ordered)

	res := engine.NewEngine().Search(b, p, engine.SearchConfig{
		MaxDepth: *depth,
		OnDepth: func(d engine.DepthReport) {
			fmt.Printf("  depth %d: %v score=%d nodes=%d %v\n", d.Depth, d.BestMove, d.Score, d.Nodes, d.Elapsed)
		},
	})
	fmt.Printf("Best: %v score=%d depth=%d reason=%s nodes=%d tt=%d/%d\n",
		res.BestMove, res.Score, res.Depth, res.Reason, res.Nodes, res.TTHits, res.TTProbes)
}
