package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Jkey189/Hex/internal/config"
	"github.com/Jkey189/Hex/internal/server/game"
)

// 单次 HTTP 请求的硬上限；长搜索走 /api/analyze
const requestTimeout = 60 * time.Second

type Server struct {
	r        *chi.Mux
	games    *game.Manager
	cfg      config.Config
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewServer 装好中间件和全部路由。webDir 为空时不挂静态文件。
func NewServer(cfg config.Config, log zerolog.Logger) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		games: game.NewManager(log),
		cfg:   cfg,
		log:   log,
		// 本地单机服务，不校验 Origin
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/api", func(r chi.Router) {
		// websocket 会 hijack 连接，不能套 Timeout
		r.Get("/analyze", s.handleAnalyze)

		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(requestTimeout))
			r.Use(jsonContentType)

			r.Post("/ai_move", s.handleAiMove)
			r.Post("/should_swap", s.handleShouldSwap)
			r.Post("/new_game", s.handleNewGame)
			r.Post("/play", s.handlePlay)
			r.Post("/swap", s.handleSwap)
			r.Post("/state", s.handleState)
			r.Post("/game_ai", s.handleGameAI)
		})
	})

	if cfg.WebDir != "" {
		RegisterStaticRoutes(s.r, cfg.WebDir, "")
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

// Router 测试里直接拿路由用
func (s *Server) Router() chi.Router { return s.r }

func (s *Server) Games() *game.Manager { return s.games }

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger 每个请求一条 zerolog 日志
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Str("request_id", chimw.GetReqID(r.Context())).
			Dur("took", time.Since(start)).
			Msg("http request")
	})
}
