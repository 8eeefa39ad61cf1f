package ws

import (
	"encoding/json"
	"errors"
	"sync"
)

var (
	// ErrUnknownType marks a frame whose type is not a registered command.
	ErrUnknownType = errors.New("unknown_type")
	// ErrMissingField marks a structurally valid frame lacking a required
	// payload field. Both are protocol errors: dropped, logged, no reply.
	ErrMissingField = errors.New("missing_field")
)

// internal (untyped) handler signature.
type rawHandler func(c *ConnContext, payload json.RawMessage) error

// Router keeps a map[type]handler, à-la gin.Engine.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]rawHandler
}

func NewRouter() *Router { return &Router{handlers: make(map[string]rawHandler)} }

// Register binds a command type to a strongly-typed handler.
func Register[Req any](
	r *Router,
	cmdType string,
	h func(c *ConnContext, req Req) error,
) {
	if cmdType == "" {
		panic("ws router: empty command type")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[cmdType] = func(c *ConnContext, payload json.RawMessage) error {
		var req Req
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &req); err != nil {
				return err
			}
		}
		return h(c, req)
	}
}

// dispatch is called by the server's reader loop.
func (r *Router) dispatch(c *ConnContext, env Envelope) error {
	r.mu.RLock()
	h, ok := r.handlers[env.Type]
	r.mu.RUnlock()
	if !ok {
		return ErrUnknownType
	}
	return h(c, env.Payload)
}
