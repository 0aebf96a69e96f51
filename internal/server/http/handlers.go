package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Jkey189/Hex/internal/engine"
	"github.com/Jkey189/Hex/internal/hex"
	"github.com/Jkey189/Hex/internal/server/game"
)

var errBadPlayer = errors.New("to_move must be 1 or 2")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	resp := ErrorResponse{Error: code}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("bad json: %w", err)
	}
	return nil
}

// gameError 把对局表的哨兵错误映射成状态码
func (s *Server) gameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over", err)
	case errors.Is(err, game.ErrIllegalMove):
		writeError(w, http.StatusBadRequest, "illegal_move", err)
	case errors.Is(err, game.ErrSwapNotAllowed):
		writeError(w, http.StatusBadRequest, "swap_not_allowed", err)
	case errors.Is(err, game.ErrInvalidSize):
		writeError(w, http.StatusBadRequest, "invalid_size", err)
	default:
		s.log.Error().Err(err).Msg("game operation failed")
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}

// searchConfig 深度按配置夹住；time_ms 为 0 时用配置里的默认时限。
// difficulty 非空时覆盖 depth。
func (s *Server) searchConfig(depth int, timeMs int64, difficulty string) (engine.SearchConfig, error) {
	if difficulty != "" {
		d, err := engine.ParseDifficulty(difficulty)
		if err != nil {
			return engine.SearchConfig{}, err
		}
		depth = int(d)
	}
	cfg := engine.SearchConfig{
		MaxDepth:  s.cfg.ClampDepth(depth),
		TimeLimit: s.cfg.TimeLimit,
	}
	if timeMs > 0 {
		cfg.TimeLimit = time.Duration(timeMs) * time.Millisecond
	}
	return cfg, nil
}

// decodeAiMove 校验无状态请求，坏快照在这里就拒掉，不进引擎
func decodeAiMove(req AiMoveRequest) (*hex.Board, hex.Player, error) {
	b, err := hex.FromGrid(req.Board)
	if err != nil {
		return nil, hex.Empty, err
	}
	p := hex.Player(req.ToMove)
	if !p.Valid() {
		return nil, hex.Empty, errBadPlayer
	}
	return b, p, nil
}

func (s *Server) newEngine() *engine.Engine {
	e := engine.NewEngine()
	e.SetLogger(s.log)
	return e
}

func (s *Server) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	b, p, err := decodeAiMove(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_board", err)
		return
	}

	if winner := b.Winner(); winner != hex.Empty {
		writeJSON(w, http.StatusOK, AiMoveResponse{
			BestMove: moveToDTO(hex.NoMove),
			Reason:   string(engine.ReasonNone),
			Status:   "game_over",
			Winner:   int(winner),
		})
		return
	}

	cfg, err := s.searchConfig(req.MaxDepth, req.TimeMs, req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_difficulty", err)
		return
	}
	// 只思考不落子
	res := s.newEngine().Search(b, p, cfg)
	writeJSON(w, http.StatusOK, searchToDTO(res))
}

func (s *Server) handleShouldSwap(w http.ResponseWriter, r *http.Request) {
	var req ShouldSwapRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	if req.Size < hex.MinSize || req.Size > hex.MaxSize {
		writeError(w, http.StatusBadRequest, "invalid_size", fmt.Errorf("size %d", req.Size))
		return
	}
	writeJSON(w, http.StatusOK, ShouldSwapResponse{Swap: engine.ShouldSwap(dtoToMove(req.Move), req.Size)})
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空 body 也算合法，用默认尺寸
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json", err)
			return
		}
	}
	if req.Size == 0 {
		req.Size = s.cfg.DefaultSize
	}

	g, err := s.games.NewGame(req.Size)
	if err != nil {
		s.gameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	g, err := s.games.Play(req.GameID, dtoToMove(req.Move))
	if err != nil {
		s.gameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	g, err := s.games.Swap(req.GameID)
	if err != nil {
		s.gameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	g, err := s.games.Get(req.GameID)
	if err != nil {
		s.gameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

// handleGameAI 让引擎替当前执棋方走一步（第二手可能是交换）
func (s *Server) handleGameAI(w http.ResponseWriter, r *http.Request) {
	var req GameAIRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	cfg, err := s.searchConfig(req.MaxDepth, req.TimeMs, req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_difficulty", err)
		return
	}
	g, res, err := s.games.AIMove(req.GameID, cfg)
	if err != nil {
		s.gameError(w, err)
		return
	}

	resp := GameAIResponse{State: stateToDTO(g), Swapped: res.Swapped}
	if !res.Swapped {
		dto := searchToDTO(res.Search)
		resp.Search = &dto
	}
	writeJSON(w, http.StatusOK, resp)
}
