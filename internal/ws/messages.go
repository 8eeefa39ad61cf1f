package ws

import "encoding/json"

// Envelope wraps every inbound WS frame.
type Envelope struct {
	Type    string          `json:"type"`              // "join" or "chat"
	Payload json.RawMessage `json:"payload,omitempty"` // command body
}

// ──────────────────────────── Request DTOs ───────────────────────────────────

// JoinRequest is the payload for "join".
type JoinRequest struct {
	RoomID   string `json:"roomId"`
	UserName string `json:"userName"`
}

// ChatRequest is the payload for "chat".
type ChatRequest struct {
	Message string `json:"message"`
}
