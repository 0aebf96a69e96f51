package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Jkey189/Hex/internal/engine"
	"github.com/Jkey189/Hex/internal/hex"
)

var (
	ErrNotFound       = errors.New("game not found")
	ErrIllegalMove    = errors.New("illegal move")
	ErrGameOver       = errors.New("game is over")
	ErrSwapNotAllowed = errors.New("swap not allowed")
	ErrInvalidSize    = errors.New("invalid board size")
)

// 每盘棋一把锁：AI 思考时只锁住自己这盘
type entry struct {
	mu sync.Mutex
	st *GameState
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*entry
	log   zerolog.Logger
}

func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		games: make(map[string]*entry),
		log:   log,
	}
}

func (m *Manager) NewGame(size int) (*GameState, error) {
	if size < hex.MinSize || size > hex.MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     hex.NewBoard(size),
		ToMove:    hex.PlayerA,
		FirstMove: hex.NoMove,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.games[g.ID] = &entry{st: g}
	m.mu.Unlock()

	m.log.Info().Str("game", g.ID).Int("size", size).Msg("new game")
	return g.clone(), nil
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.clone(), nil
}

// Len 当前对局数
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Delete 删除不存在的 id 返回 ErrNotFound
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

// Play 轮到谁就替谁落子
func (m *Manager) Play(id string, mv hex.Move) (*GameState, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := play(e.st, mv); err != nil {
		return nil, err
	}
	return e.st.clone(), nil
}

func play(g *GameState, mv hex.Move) error {
	if g.Over() {
		return ErrGameOver
	}
	if !g.Board.Place(mv, g.ToMove) {
		return fmt.Errorf("%w: (%d,%d)", ErrIllegalMove, mv.Row, mv.Col)
	}
	g.MoveCount++
	if g.MoveCount == 1 {
		g.FirstMove = mv
	}
	g.History = append(g.History, mv)
	g.Winner = g.Board.Winner()
	g.ToMove = g.ToMove.Opponent()
	g.UpdatedAt = time.Now()
	return nil
}

// Swap 交换规则：后手把先手第一颗子改成自己的颜色，然后轮到先手
func (m *Manager) Swap(id string) (*GameState, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := swap(e.st); err != nil {
		return nil, err
	}
	return e.st.clone(), nil
}

func swap(g *GameState) error {
	if !g.CanSwap() {
		return ErrSwapNotAllowed
	}
	g.Board.Remove(g.FirstMove)
	g.Board.Place(g.FirstMove, hex.PlayerB)
	g.Swapped = true
	g.MoveCount++
	g.History = append(g.History, g.FirstMove)
	g.Winner = g.Board.Winner()
	g.ToMove = hex.PlayerA
	g.UpdatedAt = time.Now()
	return nil
}

// AIResult AI 这一手的结果；Swapped 为 true 时没有搜索
type AIResult struct {
	Swapped bool
	Search  engine.SearchResult
}

// AIMove 让引擎替当前执棋方走一步。第二手先看要不要交换。
func (m *Manager) AIMove(id string, cfg engine.SearchConfig) (*GameState, AIResult, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, AIResult{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	g := e.st
	if g.Over() {
		return nil, AIResult{}, ErrGameOver
	}

	if g.CanSwap() && engine.ShouldSwap(g.FirstMove, g.Board.Size()) {
		if err := swap(g); err != nil {
			return nil, AIResult{}, err
		}
		m.log.Info().Str("game", id).Msg("ai swapped")
		return g.clone(), AIResult{Swapped: true}, nil
	}

	eng := engine.NewEngine()
	eng.SetLogger(m.log.With().Str("game", id).Logger())
	res := eng.Search(g.Board, g.ToMove, cfg)
	if res.BestMove.IsNone() {
		return nil, AIResult{Search: res}, fmt.Errorf("%w: no legal move", ErrIllegalMove)
	}
	if err := play(g, res.BestMove); err != nil {
		return nil, AIResult{Search: res}, err
	}

	m.log.Info().
		Str("game", id).
		Int("row", res.BestMove.Row).
		Int("col", res.BestMove.Col).
		Str("reason", string(res.Reason)).
		Int("depth", res.Depth).
		Msg("ai move")
	return g.clone(), AIResult{Search: res}, nil
}
