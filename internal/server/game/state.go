package game

import (
	"time"

	"github.com/Jkey189/Hex/internal/hex"
)

// GameState 一盘棋的快照。Manager 对外只给拷贝，调用方随便改不影响对局。
type GameState struct {
	ID        string
	Board     *hex.Board
	ToMove    hex.Player
	MoveCount int      // 含交换
	FirstMove hex.Move // 先手第一手，交换规则用
	Swapped   bool
	Winner    hex.Player
	History   []hex.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) Over() bool { return g.Winner != hex.Empty }

// Status "ongoing" / "a_won" / "b_won"
func (g *GameState) Status() string {
	switch g.Winner {
	case hex.PlayerA:
		return "a_won"
	case hex.PlayerB:
		return "b_won"
	}
	return "ongoing"
}

// CanSwap 只有先手下完第一手、轮到后手时可以交换
func (g *GameState) CanSwap() bool {
	return g.MoveCount == 1 && !g.Swapped && g.ToMove == hex.PlayerB && !g.Over()
}

func (g *GameState) clone() *GameState {
	c := *g
	c.Board = g.Board.Clone()
	c.History = append([]hex.Move(nil), g.History...)
	return &c
}
