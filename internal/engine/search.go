package engine

import (
	"sort"
	"time"

	"github.com/Jkey189/Hex/internal/hex"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000

	defaultDepth = 3
)

// 选点依据
type Reason string

const (
	ReasonOpening  Reason = "opening"  // 空盘下天元
	ReasonWin      Reason = "win"      // 一步胜
	ReasonBlock    Reason = "block"    // 堵对手一步胜
	ReasonSearch   Reason = "search"   // 迭代加深
	ReasonFallback Reason = "fallback" // 随机兜底
	ReasonNone     Reason = "none"     // 没有空格
)

// 搜索配置
type SearchConfig struct {
	MaxDepth int // 最大深度（ply），<=0 时用默认值
	// 墙钟上限，只在两层迭代之间检查；第一层总会跑完。0 表示不限制
	TimeLimit time.Duration
	// 每跑完一层回调一次
	OnDepth func(DepthReport)
}

// DepthReport 一层迭代加深结束时的快照
type DepthReport struct {
	Depth    int
	BestMove hex.Move
	Score    int
	Nodes    int64
	Elapsed  time.Duration
}

// 搜索结果
type SearchResult struct {
	BestMove hex.Move
	Score    int // 从 player 视角
	Depth    int // 实际完成的深度
	Nodes    int64
	TimeUsed time.Duration
	Reason   Reason
	TTProbes int64
	TTHits   int64
}

// FindBestMove 用一个新引擎搜索 maxDepth 层，返回 player 的着法
func FindBestMove(b *hex.Board, maxDepth int, player hex.Player) hex.Move {
	return NewEngine().FindBestMove(b, maxDepth, player)
}

func (e *Engine) FindBestMove(b *hex.Board, maxDepth int, player hex.Player) hex.Move {
	return e.Search(b, player, SearchConfig{MaxDepth: maxDepth}).BestMove
}

// Search 选点入口。返回时 b 与调用前完全一致。
func (e *Engine) Search(b *hex.Board, player hex.Player, cfg SearchConfig) SearchResult {
	start := time.Now()
	e.tt.clear()
	e.nodes = 0

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = defaultDepth
	}

	// 正常路径都靠逐步撤销复原；万一中途 panic，用快照整盘拷回去
	snapshot := b.Clone()
	defer func() {
		if r := recover(); r != nil {
			b.Restore(snapshot)
			panic(r)
		}
	}()

	result := e.selectMove(b, player, cfg, start)
	result.Nodes = e.nodes
	result.TimeUsed = time.Since(start)
	result.TTProbes = e.tt.probes
	result.TTHits = e.tt.hits

	e.log.Debug().
		Str("player", player.String()).
		Str("reason", string(result.Reason)).
		Int("row", result.BestMove.Row).
		Int("col", result.BestMove.Col).
		Int("score", result.Score).
		Int("depth", result.Depth).
		Int64("nodes", result.Nodes).
		Int("tt_entries", e.tt.size()).
		Dur("took", result.TimeUsed).
		Msg("search done")
	return result
}

func (e *Engine) selectMove(b *hex.Board, player hex.Player, cfg SearchConfig, start time.Time) SearchResult {
	// 空盘：分支最多又最对称，直接下中心
	if b.IsEmpty() {
		return SearchResult{BestMove: b.Center(), Reason: ReasonOpening}
	}

	ordered := orderMoves(b, player)
	if len(ordered) == 0 {
		return SearchResult{BestMove: hex.NoMove, Reason: ReasonNone}
	}

	// 一步胜：排序时胜点已经排在最前
	if ordered[0].wins {
		return SearchResult{BestMove: ordered[0].move, Score: WinScore, Reason: ReasonWin}
	}

	// 对手下一手能赢：按排序顺序取第一个威胁点去堵
	for _, sm := range ordered {
		if sm.threat {
			return SearchResult{BestMove: sm.move, Reason: ReasonBlock}
		}
	}

	moves := make([]hex.Move, len(ordered))
	for i, sm := range ordered {
		moves[i] = sm.move
	}

	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = start.Add(cfg.TimeLimit)
	}

	res := SearchResult{BestMove: hex.NoMove}
	found := false
	scores := make([]int, len(moves))

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		if depth > 1 && !deadline.IsZero() && time.Now().After(deadline) {
			break
		}

		bestMove, bestScore := hex.NoMove, -scoreInf-1
		for i, mv := range moves {
			if !b.Place(mv, player) {
				continue
			}
			// 根节点每个着法都给满窗口，顶层结果不受内部 fail-soft 影响
			v := e.alphaBeta(b, depth-1, -scoreInf, scoreInf, false, player, true)
			b.Remove(mv)

			scores[i] = v
			if v > bestScore {
				bestScore = v
				bestMove = mv
			}
		}
		if bestMove.IsNone() {
			break
		}

		res.BestMove, res.Score, res.Depth = bestMove, bestScore, depth
		res.Reason = ReasonSearch
		found = true

		elapsed := time.Since(start)
		e.log.Debug().
			Int("depth", depth).
			Int("row", bestMove.Row).
			Int("col", bestMove.Col).
			Int("score", bestScore).
			Int64("nodes", e.nodes).
			Dur("elapsed", elapsed).
			Msg("depth complete")
		if cfg.OnDepth != nil {
			cfg.OnDepth(DepthReport{
				Depth:    depth,
				BestMove: bestMove,
				Score:    bestScore,
				Nodes:    e.nodes,
				Elapsed:  elapsed,
			})
		}

		// 已经找到必胜，再深也不会更好
		if bestScore >= WinScore {
			break
		}

		// 用这一层的分数给下一层排序
		sortByScores(moves, scores)
	}

	if !found {
		legal := b.EmptyCells()
		if len(legal) == 0 {
			return SearchResult{BestMove: hex.NoMove, Reason: ReasonNone}
		}
		return SearchResult{BestMove: legal[e.rng.Intn(len(legal))], Reason: ReasonFallback}
	}
	return res
}

// sortByScores 按分数稳定降序重排 moves，scores 跟着一起排
func sortByScores(moves []hex.Move, scores []int) {
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return scores[idx[i]] > scores[idx[j]] })

	ms := make([]hex.Move, len(moves))
	ss := make([]int, len(scores))
	for i, k := range idx {
		ms[i], ss[i] = moves[k], scores[k]
	}
	copy(moves, ms)
	copy(scores, ss)
}

// alphaBeta 以 root 为视角的极大极小 + α-β（fail-soft）。
// maximizing 为 true 时轮到 root 走，否则轮到对手。
func (e *Engine) alphaBeta(b *hex.Board, depth, alpha, beta int, maximizing bool, root hex.Player, useCache bool) int {
	e.nodes++

	if v, over := terminalScore(b, root); over {
		return v
	}

	mover := root
	if !maximizing {
		mover = root.Opponent()
	}

	alphaOrig, betaOrig := alpha, beta
	var key uint64
	var snap string
	if useCache {
		key = b.Hash() ^ hex.SideKey(mover)
		snap = b.Key()
		if entry, ok := e.tt.probe(key, snap, depth); ok {
			switch entry.Flag {
			case ttExact:
				return entry.Score
			case ttLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case ttUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	if depth <= 0 {
		return e.Weights.heuristic(b, root)
	}

	moves := orderMoves(b, mover)
	if len(moves) == 0 {
		return e.Weights.heuristic(b, root)
	}

	var best int
	if maximizing {
		best = -scoreInf
	} else {
		best = scoreInf
	}

	for _, sm := range moves {
		// 落下即胜，不必再往下搜
		if sm.wins {
			if maximizing {
				return WinScore
			}
			return -WinScore
		}

		b.Place(sm.move, mover)
		v := e.alphaBeta(b, depth-1, alpha, beta, !maximizing, root, useCache)
		b.Remove(sm.move)

		if maximizing {
			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if v < best {
				best = v
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			break
		}
	}

	if useCache {
		e.tt.store(key, snap, depth, best, classify(best, alphaOrig, betaOrig))
	}
	return best
}
