package hex

// 并查集：size*size 个格子 + 4 个虚拟边节点
type unionFind struct {
	parent []int32
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int32, n),
		rank:   make([]uint8, n),
	}
	for i := range uf.parent {
		uf.parent[i] = int32(i)
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for int(uf.parent[x]) != x {
		// 路径减半
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = int(uf.parent[x])
	}
	return x
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = int32(ry)
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = int32(rx)
	default:
		uf.parent[ry] = int32(rx)
		uf.rank[rx]++
	}
}

// 虚拟节点下标
func (b *Board) virtualTop() int    { return b.size * b.size }
func (b *Board) virtualBottom() int { return b.size*b.size + 1 }
func (b *Board) virtualLeft() int   { return b.size*b.size + 2 }
func (b *Board) virtualRight() int  { return b.size*b.size + 3 }

// edgeNodes 返回 p 的两条目标边对应的虚拟节点
func (b *Board) edgeNodes(p Player) (int, int) {
	if p == PlayerA {
		return b.virtualTop(), b.virtualBottom()
	}
	return b.virtualLeft(), b.virtualRight()
}

// touchesEdges 报告 (row,col) 是否位于 p 的第一/第二目标边上
func (b *Board) touchesEdges(row, col int, p Player) (first, second bool) {
	if p == PlayerA {
		return row == 0, row == b.size-1
	}
	return col == 0, col == b.size-1
}

// buildUnion 每次现算，棋盘随时会变，不做跨改动缓存
func (b *Board) buildUnion(p Player) *unionFind {
	uf := newUnionFind(b.size*b.size + 4)
	first, second := b.edgeNodes(p)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			i := b.index(r, c)
			if b.cells[i] != p {
				continue
			}
			for _, d := range hexDirs {
				nr, nc := r+d[0], c+d[1]
				if b.InBounds(nr, nc) && b.cells[b.index(nr, nc)] == p {
					uf.union(i, b.index(nr, nc))
				}
			}
			onFirst, onSecond := b.touchesEdges(r, c, p)
			if onFirst {
				uf.union(i, first)
			}
			if onSecond {
				uf.union(i, second)
			}
		}
	}
	return uf
}

// HasWon p 是否已经连通两条目标边
func (b *Board) HasWon(p Player) bool {
	if !p.Valid() {
		return false
	}
	uf := b.buildUnion(p)
	first, second := b.edgeNodes(p)
	return uf.find(first) == uf.find(second)
}

// Winner 返回胜者，没有则 Empty
func (b *Board) Winner() Player {
	if b.HasWon(PlayerA) {
		return PlayerA
	}
	if b.HasWon(PlayerB) {
		return PlayerB
	}
	return Empty
}

// WinningCells 返回 p 落下即胜的所有空格（行优先）。
// 只建一次并查集：空格的 p 邻居根 + 自身所在边，同时覆盖两条边的根即为一步胜。
func (b *Board) WinningCells(p Player) []Move {
	if !p.Valid() {
		return nil
	}
	uf := b.buildUnion(p)
	first, second := b.edgeNodes(p)
	rootFirst, rootSecond := uf.find(first), uf.find(second)
	already := rootFirst == rootSecond

	var wins []Move
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[b.index(r, c)] != Empty {
				continue
			}
			if already {
				wins = append(wins, Move{Row: r, Col: c})
				continue
			}
			hitFirst, hitSecond := b.touchesEdges(r, c, p)
			for _, d := range hexDirs {
				nr, nc := r+d[0], c+d[1]
				if !b.InBounds(nr, nc) || b.cells[b.index(nr, nc)] != p {
					continue
				}
				root := uf.find(b.index(nr, nc))
				if root == rootFirst {
					hitFirst = true
				}
				if root == rootSecond {
					hitSecond = true
				}
			}
			if hitFirst && hitSecond {
				wins = append(wins, Move{Row: r, Col: c})
			}
		}
	}
	return wins
}

// GroupRoots 给 p 的每颗棋子标上所属连通块的代表下标，其他格子为 -1。
// 供评估/排序判断“邻居是否已经连在一起”。
func (b *Board) GroupRoots(p Player) []int {
	uf := b.buildUnion(p)
	roots := make([]int, len(b.cells))
	for i, c := range b.cells {
		if c == p {
			roots[i] = uf.find(i)
		} else {
			roots[i] = -1
		}
	}
	return roots
}

type probeKey struct {
	r1, c1, r2, c2 int8
	p              Player
}

// Connects 虚连探测：两格之间是否存在一条只经过空格或 p 方棋子的路径。
// 结果在棋盘下一次改动前有效。
func (b *Board) Connects(r1, c1, r2, c2 int, p Player) bool {
	if !p.Valid() || !b.InBounds(r1, c1) || !b.InBounds(r2, c2) {
		return false
	}
	opp := p.Opponent()
	if b.At(r1, c1) == opp || b.At(r2, c2) == opp {
		return false
	}
	if r1 == r2 && c1 == c2 {
		return true
	}

	key := probeKey{int8(r1), int8(c1), int8(r2), int8(c2), p}
	if v, ok := b.probes[key]; ok {
		return v
	}

	found := b.reach(b.index(r1, c1), b.index(r2, c2), opp)
	if b.probes == nil {
		b.probes = make(map[probeKey]bool, 16)
	}
	b.probes[key] = found
	return found
}

// reach 显式栈 DFS，大棋盘上也不会爆递归
func (b *Board) reach(from, to int, blocked Player) bool {
	visited := make([]bool, len(b.cells))
	stack := make([]int, 0, len(b.cells))
	stack = append(stack, from)
	visited[from] = true

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if i == to {
			return true
		}
		r, c := i/b.size, i%b.size
		for _, d := range hexDirs {
			nr, nc := r+d[0], c+d[1]
			if !b.InBounds(nr, nc) {
				continue
			}
			j := b.index(nr, nc)
			if visited[j] || b.cells[j] == blocked {
				continue
			}
			visited[j] = true
			stack = append(stack, j)
		}
	}
	return false
}
