package engine

import (
	"sort"

	"github.com/Jkey189/Hex/internal/hex"
)

// WinScore 已连通时的固定分，远大于任何启发式分
const WinScore = 100_000_000

// Weights 各项启发式的权重。路径差的权重必须大于子力，
// “离连通还差几步”比单纯多几颗子重要。
type Weights struct {
	Connectivity int // Σ 连通块大小²
	EdgeControl  int // 目标边上的棋子
	PathDiff     int // 对手最短路 - 自己最短路
	Material     int // 棋子数
	Link         int // 沿进攻方向相邻的两块仍能虚连
}

var DefaultWeights = Weights{
	Connectivity: 10,
	EdgeControl:  5,
	PathDiff:     15,
	Material:     1,
	Link:         3,
}

// Evaluate 从 p 的视角给局面打分（默认权重）
func Evaluate(b *hex.Board, p hex.Player) int {
	return DefaultWeights.Evaluate(b, p)
}

func (w Weights) Evaluate(b *hex.Board, p hex.Player) int {
	if v, over := terminalScore(b, p); over {
		return v
	}
	return w.heuristic(b, p)
}

// terminalScore 有人已经赢了就返回 ±WinScore
func terminalScore(b *hex.Board, p hex.Player) (int, bool) {
	if b.HasWon(p) {
		return WinScore, true
	}
	if b.HasWon(p.Opponent()) {
		return -WinScore, true
	}
	return 0, false
}

type features struct {
	connectivity int
	edge         int
	dist         int
	material     int
	links        int
}

func (w Weights) heuristic(b *hex.Board, p hex.Player) int {
	me := extractFeatures(b, p)
	op := extractFeatures(b, p.Opponent())

	score := w.Connectivity * (me.connectivity - op.connectivity)
	score += w.EdgeControl * (me.edge - op.edge)
	score += w.PathDiff * (op.dist - me.dist)
	score += w.Material * (me.material - op.material)
	score += w.Link * (me.links - op.links)
	return score
}

// group 一个连通块：大小、代表格、沿进攻方向的最小坐标
type group struct {
	size int
	rep  hex.Move
	axis int
}

func extractFeatures(b *hex.Board, p hex.Player) features {
	var f features
	groups := collectGroups(b, p)
	for _, g := range groups {
		f.connectivity += g.size * g.size
		f.material += g.size
	}

	n := b.Size()
	for i := 0; i < n; i++ {
		if p == hex.PlayerA {
			f.edge += boolInt(b.At(0, i) == p) + boolInt(b.At(n-1, i) == p)
		} else {
			f.edge += boolInt(b.At(i, 0) == p) + boolInt(b.At(i, n-1) == p)
		}
	}

	f.dist = shortestPath(b, p)

	// 按进攻方向排好，只看相邻两块
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].axis < groups[j].axis })
	for i := 1; i < len(groups); i++ {
		a, c := groups[i-1].rep, groups[i].rep
		if b.Connects(a.Row, a.Col, c.Row, c.Col, p) {
			f.links++
		}
	}
	return f
}

// collectGroups 泛洪划分 p 的连通块（显式栈）
func collectGroups(b *hex.Board, p hex.Player) []group {
	n := b.Size()
	seen := make([]bool, n*n)
	var groups []group
	var stack []hex.Move

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if seen[r*n+c] || b.At(r, c) != p {
				continue
			}
			g := group{rep: hex.Move{Row: r, Col: c}, axis: axisOf(r, c, p)}
			seen[r*n+c] = true
			stack = append(stack[:0], g.rep)
			for len(stack) > 0 {
				m := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				g.size++
				if a := axisOf(m.Row, m.Col, p); a < g.axis {
					g.axis = a
				}
				for _, nb := range b.Neighbors(m) {
					i := nb.Row*n + nb.Col
					if seen[i] || b.At(nb.Row, nb.Col) != p {
						continue
					}
					seen[i] = true
					stack = append(stack, nb)
				}
			}
			groups = append(groups, g)
		}
	}
	return groups
}

func axisOf(row, col int, p hex.Player) int {
	if p == hex.PlayerA {
		return row
	}
	return col
}

// shortestPath 0/1 BFS：走进自己的格子 0 步，空格 1 步，对手格子不可走。
// 返回从第一条目标边到对边还需要落几颗子；被完全截断时返回 n*n+1。
func shortestPath(b *hex.Board, p hex.Player) int {
	n := b.Size()
	unreachable := n*n + 1
	opp := p.Opponent()

	dist := make([]int, n*n)
	for i := range dist {
		dist[i] = unreachable
	}
	done := make([]bool, n*n)
	var dq deque

	cost := func(r, c int) int {
		if b.At(r, c) == p {
			return 0
		}
		return 1
	}
	onTarget := func(r, c int) bool {
		if p == hex.PlayerA {
			return r == n-1
		}
		return c == n-1
	}

	for i := 0; i < n; i++ {
		r, c := 0, i
		if p == hex.PlayerB {
			r, c = i, 0
		}
		if b.At(r, c) == opp {
			continue
		}
		d := cost(r, c)
		dist[r*n+c] = d
		dq.push(r*n+c, d == 0)
	}

	for !dq.empty() {
		i := dq.pop()
		if done[i] {
			continue
		}
		done[i] = true
		r, c := i/n, i%n
		if onTarget(r, c) {
			return dist[i]
		}
		for _, nb := range b.Neighbors(hex.Move{Row: r, Col: c}) {
			if b.At(nb.Row, nb.Col) == opp {
				continue
			}
			j := nb.Row*n + nb.Col
			w := cost(nb.Row, nb.Col)
			if dist[i]+w < dist[j] {
				dist[j] = dist[i] + w
				dq.push(j, w == 0)
			}
		}
	}
	return unreachable
}

// deque 0/1 BFS 用的双端队列：front 逆序存放，back 顺序存放
type deque struct {
	front []int
	back  []int
	head  int
}

func (d *deque) push(x int, toFront bool) {
	if toFront {
		d.front = append(d.front, x)
		return
	}
	d.back = append(d.back, x)
}

func (d *deque) pop() int {
	if k := len(d.front); k > 0 {
		x := d.front[k-1]
		d.front = d.front[:k-1]
		return x
	}
	x := d.back[d.head]
	d.head++
	return x
}

func (d *deque) empty() bool {
	return len(d.front) == 0 && d.head == len(d.back)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
