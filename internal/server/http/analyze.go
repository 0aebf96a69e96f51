package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Jkey189/Hex/internal/engine"
)

const wsIdlePingInterval = 30 * time.Second

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func wsFrame(typ string, payload any) []byte {
	return mustMarshal(wsMessage{Type: typ, Payload: mustMarshal(payload)})
}

// handleAnalyze 客户端发一条 AiMoveRequest，服务端每跑完一层推一条 depth，
// 最后推 result 并关闭连接
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade 已经写过错误响应
		return
	}
	defer conn.Close()

	var req AiMoveRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.log.Debug().Err(err).Msg("analyze: read request")
		return
	}

	send := make(chan []byte, 16)
	b, p, err := decodeAiMove(req)
	var cfg engine.SearchConfig
	if err == nil {
		cfg, err = s.searchConfig(req.MaxDepth, req.TimeMs, req.Difficulty)
	}
	if err != nil {
		send <- wsFrame("error", ErrorResponse{Error: "bad_request", Detail: err.Error()})
		close(send)
	} else {
		cfg.OnDepth = func(d engine.DepthReport) {
			send <- wsFrame("depth", depthToDTO(d))
		}
		go func() {
			defer close(send)
			res := s.newEngine().Search(b, p, cfg)
			send <- wsFrame("result", searchToDTO(res))
		}()
	}

	if err := writeWSWithHeartbeat(conn, send); err != nil {
		s.log.Debug().Err(err).Msg("analyze: write")
		// 对端断了，搜索协程还会继续往 send 里写，接着读空它
		go func() {
			for range send {
			}
		}()
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}

// writeWSWithHeartbeat 把 send 里的消息依次写出，空闲太久补一个 ping；send 关闭即返回
func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
