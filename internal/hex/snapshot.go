package hex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBoard 外部传进来的局面格式不对（尺寸不方、越界、未知编码）
var ErrInvalidBoard = errors.New("invalid board snapshot")

// FromGrid 从 0/1/2 二维数组还原棋盘
func FromGrid(grid [][]int) (*Board, error) {
	n := len(grid)
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidBoard, n)
	}
	b := NewBoard(n)
	for r, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), n)
		}
		for c, v := range row {
			p := Player(v)
			switch {
			case v == int(Empty):
				continue
			case p.Valid():
				b.Place(Move{Row: r, Col: c}, p)
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d) has code %d", ErrInvalidBoard, r, c, v)
			}
		}
	}
	return b, nil
}

// Grid 导出为 0/1/2 二维数组
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.size)
	for r := range grid {
		grid[r] = make([]int, b.size)
		for c := range grid[r] {
			grid[r][c] = int(b.cells[b.index(r, c)])
		}
	}
	return grid
}

// 文本形式：每行一个字符串，“/” 分隔；'.' 空，'x' 为 A，'o' 为 B
func cellChar(p Player) byte {
	switch p {
	case PlayerA:
		return 'x'
	case PlayerB:
		return 'o'
	}
	return '.'
}

func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(b.size * (b.size + 1))
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < b.size; c++ {
			sb.WriteByte(cellChar(b.cells[b.index(r, c)]))
		}
	}
	return sb.String()
}

func Decode(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	n := len(rows)
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidBoard, n)
	}
	b := NewBoard(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), n)
		}
		for c := 0; c < n; c++ {
			switch ch := row[c]; ch {
			case '.':
			case 'x', 'X':
				b.Place(Move{Row: r, Col: c}, PlayerA)
			case 'o', 'O':
				b.Place(Move{Row: r, Col: c}, PlayerB)
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at (%d,%d)", ErrInvalidBoard, ch, r, c)
			}
		}
	}
	return b, nil
}

// String 多行斜排打印，调试用
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		sb.WriteString(strings.Repeat(" ", r))
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cellChar(b.cells[b.index(r, c)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
