package engine

import "github.com/Jkey189/Hex/internal/hex"

const (
	threatDepthCap         = 16
	threatDefaultDepth     = 6
	threatNodeBudgetBase   = 20000
	threatNodeBudgetPerPly = 5000
)

const (
	threatModeAttack uint64 = 0xA5A5A5A5A5A5A5A5
	threatModeDefend uint64 = 0x5A5A5A5A5A5A5A5A
)

type threatTTEntry struct {
	Board  string
	Depth  int
	Result bool
	Move   hex.Move // 记录攻方走法，下次先试
}

type threatContext struct {
	tt         map[uint64]threatTTEntry
	nodes      int
	nodeBudget int
}

// ThreatResult 连续威胁搜索结果
type ThreatResult struct {
	CanWin bool
	Move   hex.Move
	Depth  int // 找到胜法时用了几手威胁
	Nodes  int
}

// ThreatSearch 只走“下完之后自己有一步胜点”的棋，逼对方每手都去堵，
// 直到形成两个堵不过来的胜点。maxDepth 是攻方最多走几手。
// 只给分析工具用，选点流程不调用它。搜完后 b 保持原样。
func (e *Engine) ThreatSearch(b *hex.Board, p hex.Player, maxDepth int) ThreatResult {
	if maxDepth <= 0 {
		maxDepth = threatDefaultDepth
	}
	if maxDepth > threatDepthCap {
		maxDepth = threatDepthCap
	}

	ctx := &threatContext{
		tt:         make(map[uint64]threatTTEntry, 1<<12),
		nodeBudget: threatNodeBudgetBase + maxDepth*threatNodeBudgetPerPly,
	}

	// 迭代加深，浅层先找最短的胜法
	for d := 1; d <= maxDepth; d++ {
		if ok, mv := e.threatAttack(b, p, d, ctx); ok {
			return ThreatResult{CanWin: true, Move: mv, Depth: d, Nodes: ctx.nodes}
		}
		if ctx.reachNodeBudget() {
			break
		}
	}
	return ThreatResult{Move: hex.NoMove, Nodes: ctx.nodes}
}

// threatAttack 攻方能否在 depth 手威胁内逼出胜局；能的话返回第一手
func (e *Engine) threatAttack(b *hex.Board, p hex.Player, depth int, ctx *threatContext) (bool, hex.Move) {
	if wins := b.WinningCells(p); len(wins) > 0 {
		return true, wins[0]
	}
	if depth <= 0 || ctx.reachNodeBudget() {
		return false, hex.NoMove
	}

	key := b.Hash() ^ threatModeAttack
	snap := b.Key()
	ttMove := hex.NoMove
	if entry, ok := ctx.tt[key]; ok && entry.Board == snap {
		if entry.Depth >= depth {
			return entry.Result, entry.Move
		}
		ttMove = entry.Move
	}

	// 对手已经有一步胜点：只能去堵，两个以上堵不住
	threats := b.WinningCells(p.Opponent())
	var candidates []hex.Move
	switch {
	case len(threats) > 1:
		ctx.tt[key] = threatTTEntry{Board: snap, Depth: depth, Result: false, Move: hex.NoMove}
		return false, hex.NoMove
	case len(threats) == 1:
		candidates = threats
	default:
		candidates = OrderedMoves(b, p)
		if !ttMove.IsNone() {
			candidates = append([]hex.Move{ttMove}, candidates...)
		}
	}

	result, best := false, hex.NoMove
	for _, mv := range candidates {
		if !b.Place(mv, p) {
			continue
		}
		// 攻方必须形成威胁
		if len(b.WinningCells(p)) > 0 && !e.threatDefend(b, p, depth-1, ctx) {
			result, best = true, mv
		}
		b.Remove(mv)
		if result {
			break
		}
	}

	ctx.tt[key] = threatTTEntry{Board: snap, Depth: depth, Result: result, Move: best}
	return result, best
}

// threatDefend 守方（p 的对手）能否逃脱。守方自己有一步胜点就直接赢了；
// 否则只有一个堵点时必须堵，两个以上逃不掉。
func (e *Engine) threatDefend(b *hex.Board, p hex.Player, depth int, ctx *threatContext) bool {
	opp := p.Opponent()
	if len(b.WinningCells(opp)) > 0 {
		return true
	}
	wins := b.WinningCells(p)
	if len(wins) >= 2 {
		return false
	}
	if len(wins) == 0 || ctx.reachNodeBudget() {
		return true
	}

	key := b.Hash() ^ threatModeDefend
	snap := b.Key()
	if entry, ok := ctx.tt[key]; ok && entry.Board == snap && entry.Depth >= depth {
		return entry.Result
	}

	block := wins[0]
	b.Place(block, opp)
	forced, _ := e.threatAttack(b, p, depth, ctx)
	b.Remove(block)

	escaped := !forced
	ctx.tt[key] = threatTTEntry{Board: snap, Depth: depth, Result: escaped, Move: block}
	return escaped
}

func (ctx *threatContext) reachNodeBudget() bool {
	ctx.nodes++
	return ctx.nodes > ctx.nodeBudget
}
