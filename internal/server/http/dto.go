package httpserver

import (
	"encoding/json"

	"github.com/Jkey189/Hex/internal/engine"
	"github.com/Jkey189/Hex/internal/hex"
	"github.com/Jkey189/Hex/internal/server/game"
)

// AiMoveRequest 无状态选点：前端把整盘传过来
type AiMoveRequest struct {
	Board    [][]int `json:"board"`   // 0 空, 1 A, 2 B
	ToMove   int     `json:"to_move"` // 1=A, 2=B
	MaxDepth int     `json:"max_depth"`
	TimeMs   int64   `json:"time_ms"`

	// 给了难度就按难度定深度，忽略 max_depth
	Difficulty string `json:"difficulty,omitempty"`
}

// 前端用的招法结构
type MoveDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func dtoToMove(m MoveDTO) hex.Move {
	return hex.Move{Row: m.Row, Col: m.Col}
}

func moveToDTO(m hex.Move) MoveDTO {
	return MoveDTO{Row: m.Row, Col: m.Col}
}

type AiMoveResponse struct {
	BestMove MoveDTO `json:"best_move"`
	Score    int     `json:"score"`
	Depth    int     `json:"depth"`
	Nodes    int64   `json:"nodes"`
	Reason   string  `json:"reason"`
	Status   string  `json:"status"` // "ok" / "no_moves" / "game_over"
	Winner   int     `json:"winner"`
	TimeMs   int64   `json:"time_ms"`
}

func searchToDTO(res engine.SearchResult) AiMoveResponse {
	status := "ok"
	if res.BestMove.IsNone() {
		status = "no_moves"
	}
	return AiMoveResponse{
		BestMove: moveToDTO(res.BestMove),
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		Reason:   string(res.Reason),
		Status:   status,
		TimeMs:   res.TimeUsed.Milliseconds(),
	}
}

type ShouldSwapRequest struct {
	Move MoveDTO `json:"move"`
	Size int     `json:"size"`
}

type ShouldSwapResponse struct {
	Swap bool `json:"swap"`
}

type NewGameRequest struct {
	Size int `json:"size"` // 0 用默认尺寸
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// Swap / State 请求只带 game_id
type GameRequest struct {
	GameID string `json:"game_id"`
}

type GameAIRequest struct {
	GameID     string `json:"game_id"`
	MaxDepth   int    `json:"max_depth"`
	TimeMs     int64  `json:"time_ms"`
	Difficulty string `json:"difficulty,omitempty"`
}

// StateResponse new_game / play / swap / state 共用
type StateResponse struct {
	GameID    string    `json:"game_id"`
	Size      int       `json:"size"`
	Board     [][]int   `json:"board"`
	Position  string    `json:"position"` // Encode() 的紧凑串
	ToMove    int       `json:"to_move"`
	MoveCount int       `json:"move_count"`
	LastMove  *MoveDTO  `json:"last_move,omitempty"`
	Swapped   bool      `json:"swapped"`
	CanSwap   bool      `json:"can_swap"`
	Status    string    `json:"status"`
	Winner    int       `json:"winner"`
	History   []MoveDTO `json:"history"`
}

func stateToDTO(g *game.GameState) StateResponse {
	resp := StateResponse{
		GameID:    g.ID,
		Size:      g.Board.Size(),
		Board:     g.Board.Grid(),
		Position:  g.Board.Encode(),
		ToMove:    int(g.ToMove),
		MoveCount: g.MoveCount,
		Swapped:   g.Swapped,
		CanSwap:   g.CanSwap(),
		Status:    g.Status(),
		Winner:    int(g.Winner),
		History:   make([]MoveDTO, len(g.History)),
	}
	for i, m := range g.History {
		resp.History[i] = moveToDTO(m)
	}
	if n := len(g.History); n > 0 {
		last := moveToDTO(g.History[n-1])
		resp.LastMove = &last
	}
	return resp
}

type GameAIResponse struct {
	State   StateResponse   `json:"state"`
	Swapped bool            `json:"swapped"`
	Search  *AiMoveResponse `json:"search,omitempty"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// websocket 消息外壳
type wsMessage struct {
	Type    string          `json:"type"` // "depth" / "result" / "error" / "ping"
	Payload json.RawMessage `json:"payload,omitempty"`
}

type DepthDTO struct {
	Depth    int     `json:"depth"`
	BestMove MoveDTO `json:"best_move"`
	Score    int     `json:"score"`
	Nodes    int64   `json:"nodes"`
	TimeMs   int64   `json:"time_ms"`
}

func depthToDTO(d engine.DepthReport) DepthDTO {
	return DepthDTO{
		Depth:    d.Depth,
		BestMove: moveToDTO(d.BestMove),
		Score:    d.Score,
		Nodes:    d.Nodes,
		TimeMs:   d.Elapsed.Milliseconds(),
	}
}
