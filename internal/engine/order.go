package engine

import (
	"sort"

	"github.com/Jkey189/Hex/internal/hex"
)

const (
	winBonus   = 1_000_000
	blockBonus = 500_000

	centerWeight    = 2
	ownNeighbor     = 3
	emptyNeighbor   = 1
	redundantWeight = 4
	acrossWeight    = 2
)

type scoredMove struct {
	move   hex.Move
	score  int
	wins   bool // 落下即胜
	threat bool // 对手在这里落子即胜
}

// OrderedMoves 按启发式分从高到低返回 p 的所有空格，同分保持行优先。
// 只影响剪枝效率，不影响搜索结果。
func OrderedMoves(b *hex.Board, p hex.Player) []hex.Move {
	scored := orderMoves(b, p)
	out := make([]hex.Move, len(scored))
	for i, sm := range scored {
		out[i] = sm.move
	}
	return out
}

func orderMoves(b *hex.Board, p hex.Player) []scoredMove {
	empties := b.EmptyCells()
	if len(empties) == 0 {
		return nil
	}

	n := b.Size()
	wins := cellSet(n, b.WinningCells(p))
	threats := b.WinningCells(p.Opponent())
	threatSet := cellSet(n, threats)

	// 对手只有一个一步胜点时，占住它后对手就没有一步胜了；
	// 有两个以上时任何一手都挡不住，不给挡子加分
	block := hex.NoMove
	if len(threats) == 1 {
		block = threats[0]
	}

	roots := b.GroupRoots(p)
	center := b.Center()

	scored := make([]scoredMove, len(empties))
	for i, m := range empties {
		idx := m.Row*n + m.Col
		sm := scoredMove{move: m, wins: wins[idx], threat: threatSet[idx]}
		if sm.wins {
			sm.score += winBonus
		}
		if m == block {
			sm.score += blockBonus
		}
		sm.score += positionalScore(b, m, p, roots, center)
		scored[i] = sm
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}

func positionalScore(b *hex.Board, m hex.Move, p hex.Player, roots []int, center hex.Move) int {
	n := b.Size()
	score := centerWeight * (n - hex.Distance(m, center))

	own, empty, across := 0, 0, 0
	firstRoot, sameGroup := -1, true
	for _, nb := range b.Neighbors(m) {
		switch b.At(nb.Row, nb.Col) {
		case p:
			own++
			r := roots[nb.Row*n+nb.Col]
			if firstRoot < 0 {
				firstRoot = r
			} else if r != firstRoot {
				sameGroup = false
			}
			// 邻居在进攻方向的前后一层，说明这手在往目标边延伸
			if (p == hex.PlayerA && nb.Row != m.Row) || (p == hex.PlayerB && nb.Col != m.Col) {
				across++
			}
		case hex.Empty:
			empty++
		}
	}

	score += ownNeighbor*own + emptyNeighbor*empty + acrossWeight*across
	// 邻居本来就连在一起，这手只是加厚
	if own >= 2 && sameGroup {
		score -= redundantWeight * (own - 1)
	}
	return score
}

func cellSet(n int, moves []hex.Move) []bool {
	set := make([]bool, n*n)
	for _, m := range moves {
		set[m.Row*n+m.Col] = true
	}
	return set
}
