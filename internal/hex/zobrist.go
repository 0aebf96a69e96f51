package hex

import "sync"

var (
	zobristOnce sync.Once

	// [格子下标][Player]，下标按 MaxSize 的步长编号，所有尺寸共用一张表
	zobristCells [MaxSize * MaxSize][3]uint64
	zobristSide  uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for i := range zobristCells {
			// Empty 不参与异或
			zobristCells[i][PlayerA] = next()
			zobristCells[i][PlayerB] = next()
		}
		zobristSide = next()
	})
}

func cellKey(row, col int, p Player) uint64 {
	return zobristCells[row*MaxSize+col][p]
}

// SideKey 用于把“轮到谁走”混进局面哈希
func SideKey(p Player) uint64 {
	initZobrist()
	if p == PlayerB {
		return zobristSide
	}
	return 0
}

// CalculateHash 全量重算哈希（校验增量维护用）
func (b *Board) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			p := b.cells[r*b.size+c]
			if p == Empty {
				continue
			}
			h ^= cellKey(r, c, p)
		}
	}
	return h
}
