package engine

import (
	"fmt"
	"strings"
)

// Difficulty 难度档位，数值就是搜索深度
type Difficulty int

const (
	Easy      Difficulty = 1
	Medium    Difficulty = 2
	Difficult Difficulty = 3
	Expert    Difficulty = 4
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Difficult:
		return "difficult"
	case Expert:
		return "expert"
	}
	return fmt.Sprintf("depth-%d", int(d))
}

// ParseDifficulty 接受档位名或 1~4 的数字
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "difficult", "hard", "3":
		return Difficult, nil
	case "expert", "4":
		return Expert, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// DepthForSize 按棋盘大小压一下深度，大棋盘分支太多。
// 只给外层调用方用；FindBestMove 本身严格按传入深度搜索。
func DepthForSize(depth, size int) int {
	limit := 2
	switch {
	case size <= 7:
		limit = 4
	case size <= 9:
		limit = 3
	}
	if depth > limit {
		return limit
	}
	if depth < 1 {
		return 1
	}
	return depth
}
