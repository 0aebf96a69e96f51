package engine

import "github.com/Jkey189/Hex/internal/hex"

// 开局第一手离中心多近时后手选择交换
const swapRadius = 1

// ShouldSwap 交换规则（pie rule）的粗略判断：先手第一手落在中心附近就换。
// 不经过搜索。
func ShouldSwap(opening hex.Move, boardSize int) bool {
	if opening.IsNone() || opening.Row >= boardSize || opening.Col >= boardSize {
		return false
	}
	center := boardSize / 2
	return abs(opening.Row-center) <= swapRadius && abs(opening.Col-center) <= swapRadius
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
