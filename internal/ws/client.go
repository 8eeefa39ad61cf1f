package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// clientConn is the relay-facing handle for one websocket session. The write
// mutex keeps frames from the relay and pings from the keepalive ticker from
// interleaving on the wire.
type clientConn struct {
	id      string // uuid, for log correlation only
	rawConn *websocket.Conn
	mu      sync.Mutex
}

// Send implements relay.Conn.
func (c *clientConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.rawConn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.rawConn.WriteMessage(websocket.TextMessage, payload)
}

func (c *clientConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rawConn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}
