package hex

// Player 同时表示格子状态：0=空，1=A（连上下），2=B（连左右）
type Player int8

const (
	Empty   Player = 0
	PlayerA Player = 1
	PlayerB Player = 2
)

// Opponent 返回对手；Empty 的对手仍是 Empty
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

// Valid 是否是真正的执棋方
func (p Player) Valid() bool { return p == PlayerA || p == PlayerB }

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return "-"
}

// Move 落子坐标
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove 表示“没有可走的棋”
var NoMove = Move{Row: -1, Col: -1}

// IsNone reports whether m is the NoMove sentinel.
func (m Move) IsNone() bool { return m.Row < 0 || m.Col < 0 }

// 六个相邻方向（行, 列）
var hexDirs = [6][2]int{
	{-1, 0}, {-1, +1},
	{0, -1}, {0, +1},
	{+1, -1}, {+1, 0},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance 六角格距离（轴向坐标下的环距离）
func Distance(a, b Move) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	d := abs(dr)
	if abs(dc) > d {
		d = abs(dc)
	}
	if abs(dr+dc) > d {
		d = abs(dr + dc)
	}
	return d
}
