package relay

// Envelope wraps every outbound frame.
type Envelope struct {
	Type    string `json:"type"`    // e.g. "user-joined"
	Payload any    `json:"payload"` // typed body below
}

// ──────────────────────────── Outbound payloads ──────────────────────────────

// ErrorPayload is sent to the offending client on a rejected command.
type ErrorPayload struct {
	Message string `json:"message"`
}

// UserListPayload carries the full roster of a room, in join order.
type UserListPayload struct {
	Users []string `json:"users"`
}

// UserJoinedPayload announces a new room member to its peers.
type UserJoinedPayload struct {
	UserName string `json:"userName"`
}

// UserLeftPayload announces a departed room member to its peers.
type UserLeftPayload struct {
	UserName string `json:"userName"`
}

// SuccessPayload confirms a completed join to the requester.
type SuccessPayload struct {
	Message string `json:"message"`
}

// ChatPayload is the broadcast form of a chat message.
type ChatPayload struct {
	UserName string `json:"userName"`
	Message  string `json:"message"`
}
