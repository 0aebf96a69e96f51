package hex

import "fmt"

const (
	MinSize = 1
	MaxSize = 19
)

// Board N×N 棋盘。A 连第 0 行和第 N-1 行，B 连第 0 列和第 N-1 列。
//
// 搜索会就地 Place/Remove，调用方在搜索期间不要读写同一块棋盘。
type Board struct {
	size  int
	cells []Player
	hash  uint64

	// Connects 的结果缓存，任何改动都会作废
	probes map[probeKey]bool
}

// NewBoard 创建空棋盘，尺寸越界属于调用方 bug，直接 panic
func NewBoard(size int) *Board {
	if size < MinSize || size > MaxSize {
		panic(fmt.Sprintf("hex: board size %d out of range [%d,%d]", size, MinSize, MaxSize))
	}
	initZobrist()
	return &Board{
		size:  size,
		cells: make([]Player, size*size),
	}
}

func (b *Board) Size() int { return b.size }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) index(row, col int) int { return row*b.size + col }

// At 越界返回 Empty
func (b *Board) At(row, col int) Player {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

// Place 落子。越界、已占或 p 不是玩家时返回 false，不修改棋盘。
func (b *Board) Place(m Move, p Player) bool {
	if !p.Valid() || !b.InBounds(m.Row, m.Col) {
		return false
	}
	i := b.index(m.Row, m.Col)
	if b.cells[i] != Empty {
		return false
	}
	b.cells[i] = p
	b.hash ^= cellKey(m.Row, m.Col, p)
	b.invalidate()
	return true
}

// Remove 清空格子；本来就空或越界时什么也不做
func (b *Board) Remove(m Move) {
	if !b.InBounds(m.Row, m.Col) {
		return
	}
	i := b.index(m.Row, m.Col)
	p := b.cells[i]
	if p == Empty {
		return
	}
	b.cells[i] = Empty
	b.hash ^= cellKey(m.Row, m.Col, p)
	b.invalidate()
}

func (b *Board) invalidate() {
	if len(b.probes) > 0 {
		clear(b.probes)
	}
}

// EmptyCells 按行优先返回所有空格
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(b.cells))
	for i, p := range b.cells {
		if p == Empty {
			moves = append(moves, Move{Row: i / b.size, Col: i % b.size})
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	for _, p := range b.cells {
		if p == Empty {
			return false
		}
	}
	return true
}

func (b *Board) IsEmpty() bool {
	for _, p := range b.cells {
		if p != Empty {
			return false
		}
	}
	return true
}

// Count 统计 p 方棋子数
func (b *Board) Count(p Player) int {
	n := 0
	for _, c := range b.cells {
		if c == p {
			n++
		}
	}
	return n
}

// Center 棋盘中心；偶数尺寸取靠右下的那个近中心格
func (b *Board) Center() Move {
	return Move{Row: b.size / 2, Col: b.size / 2}
}

// Neighbors 返回 m 的界内邻格
func (b *Board) Neighbors(m Move) []Move {
	out := make([]Move, 0, 6)
	for _, d := range hexDirs {
		r, c := m.Row+d[0], m.Col+d[1]
		if b.InBounds(r, c) {
			out = append(out, Move{Row: r, Col: c})
		}
	}
	return out
}

// Hash 当前局面的 Zobrist 哈希（增量维护）
func (b *Board) Hash() uint64 { return b.hash }

// Key 整盘内容的紧凑快照，置换表用它做完整比对
func (b *Board) Key() string {
	buf := make([]byte, len(b.cells))
	for i, p := range b.cells {
		buf[i] = byte(p)
	}
	return string(buf)
}

func (b *Board) Clone() *Board {
	nb := &Board{
		size:  b.size,
		cells: make([]Player, len(b.cells)),
		hash:  b.hash,
	}
	copy(nb.cells, b.cells)
	return nb
}

// Restore 把 src 的内容整块拷回来（尺寸必须一致）
func (b *Board) Restore(src *Board) {
	if src.size != b.size {
		panic("hex: Restore size mismatch")
	}
	copy(b.cells, src.cells)
	b.hash = src.hash
	b.invalidate()
}

// Equal 尺寸和每个格子都相同
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.size != o.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
