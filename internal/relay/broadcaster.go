package relay

import (
	"encoding/json"

	"go.uber.org/zap"
)

// broadcaster performs best-effort envelope delivery. A failed write is a
// local warning only: one bad socket must not abort the rest of a fan-out,
// and the registry is never mutated from here.
type broadcaster struct{}

func (broadcaster) sendTo(conn Conn, env Envelope) {
	raw, err := json.Marshal(env)
	if err != nil {
		zap.L().Warn("relay.marshal", zap.String("type", env.Type), zap.Error(err))
		return
	}
	if err := conn.Send(raw); err != nil {
		zap.L().Warn("relay.send_failed", zap.String("type", env.Type), zap.Error(err))
	}
}

// broadcast attempts delivery exactly once per member, skipping exclude.
// The envelope is marshalled once and shared across recipients.
func (broadcaster) broadcast(members []Conn, env Envelope, exclude Conn) {
	raw, err := json.Marshal(env)
	if err != nil {
		zap.L().Warn("relay.marshal", zap.String("type", env.Type), zap.Error(err))
		return
	}
	for _, c := range members {
		if c == exclude {
			continue
		}
		if err := c.Send(raw); err != nil {
			zap.L().Warn("relay.send_failed", zap.String("type", env.Type), zap.Error(err))
		}
	}
}
