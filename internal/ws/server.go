package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"roomrelay/internal/relay"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second // must be < pongWait
)

// ConnContext is handed to every command handler.
type ConnContext struct {
	Conn   relay.Conn
	Server *WsServer
}

type WsServer struct {
	relaySvc  *relay.Service
	router    *Router
	upgrader  websocket.Upgrader
	readLimit int64
}

func NewWsServer(relaySvc *relay.Service, readLimit int64) *WsServer {
	srv := &WsServer{
		relaySvc: relaySvc,
		router:   NewRouter(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true }, // dev-only
		},
		readLimit: readLimit,
	}
	srv.registerHandlers() // ← all WS commands configured here
	return srv
}

// ---------------------------------------------------------------------------
//  Public: Gin entry-point
// ---------------------------------------------------------------------------

func (s *WsServer) Handle(ginCtx *gin.Context) {
	rawConn, err := s.upgrader.Upgrade(ginCtx.Writer, ginCtx.Request, nil)
	if err != nil {
		zap.L().Warn("ws.upgrade", zap.Error(err))
		return
	}
	rawConn.SetReadLimit(s.readLimit)

	conn := &clientConn{id: uuid.NewString(), rawConn: rawConn}
	zap.L().Debug("ws.connected", zap.String("conn", conn.id))

	go s.reader(conn)
	go s.pinger(conn)
}

// ---------------------------------------------------------------------------
//  Private helpers
// ---------------------------------------------------------------------------

func (s *WsServer) registerHandlers() {
	// 🔹 join --------------------------------------------------------------
	Register(
		s.router,
		"join",
		func(cc *ConnContext, req JoinRequest) error {
			if req.RoomID == "" || req.UserName == "" {
				return ErrMissingField
			}
			return s.relaySvc.Join(cc.Conn, req.RoomID, req.UserName)
		},
	)

	// 🔹 chat --------------------------------------------------------------
	Register(
		s.router,
		"chat",
		func(cc *ConnContext, req ChatRequest) error {
			if req.Message == "" {
				return ErrMissingField
			}
			return s.relaySvc.Chat(cc.Conn, req.Message)
		},
	)
}

// reader consumes frames until the peer goes away, then tears the
// membership down exactly once.
func (s *WsServer) reader(conn *clientConn) {
	defer func() {
		s.relaySvc.Disconnect(conn)
		_ = conn.rawConn.Close()
		zap.L().Debug("ws.disconnected", zap.String("conn", conn.id))
	}()

	_ = conn.rawConn.SetReadDeadline(time.Now().Add(pongWait))
	conn.rawConn.SetPongHandler(func(string) error {
		return conn.rawConn.SetReadDeadline(time.Now().Add(pongWait))
	})

	cc := &ConnContext{Conn: conn, Server: s}

	for {
		_, raw, err := conn.rawConn.ReadMessage()
		if err != nil {
			return // client closed or errored
		}

		// A single bad frame never disrupts the session: drop it,
		// note it locally, keep reading.
		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			zap.L().Debug("ws.bad_frame", zap.String("conn", conn.id), zap.Error(err))
			continue
		}

		switch err := s.router.dispatch(cc, env); {
		case err == nil:
		case errors.Is(err, relay.ErrNameTaken):
			// Rejection already answered with an "error" envelope.
		case errors.Is(err, relay.ErrNotJoined):
			// Chat before join is dropped silently.
			zap.L().Debug("ws.chat_unjoined", zap.String("conn", conn.id))
		default:
			zap.L().Debug("ws.dropped_frame",
				zap.String("conn", conn.id),
				zap.String("type", env.Type),
				zap.Error(err),
			)
		}
	}
}

func (s *WsServer) pinger(conn *clientConn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.ping(); err != nil {
			_ = conn.rawConn.Close()
			return
		}
	}
}
