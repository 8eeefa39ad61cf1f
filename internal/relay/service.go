package relay

import (
	"errors"
	"sync"

	"github.com/samber/lo"
)

var (
	// ErrNameTaken signals a join rejected because the display name is
	// already in use in the target room. The offending client has already
	// been sent an "error" envelope when this is returned.
	ErrNameTaken = errors.New("username already exists in the room")

	// ErrNotJoined signals a chat from a connection with no membership.
	// Such frames are dropped without any outbound reply.
	ErrNotJoined = errors.New("connection has not joined a room")
)

const (
	nameTakenMessage   = "Username already exists in the room."
	joinSuccessMessage = "Successfully joined the room!"
)

// Service interprets commands against the registry and fans out the
// resulting envelopes. Every check-then-act sequence, join uniqueness
// included, runs under one mutex so interleaved commands from different
// connections cannot observe half-applied state. The transport writes
// themselves happen after the lock is released.
type Service struct {
	mu  sync.Mutex
	reg *Registry
	bc  broadcaster
}

func NewService(reg *Registry) *Service {
	return &Service{reg: reg}
}

// Join admits conn to room under userName. A prior membership of the same
// connection is superseded; a duplicate name in the room rejects the join
// with an "error" envelope to the requester and leaves the registry
// untouched. On success the requester receives the roster then a success
// confirmation, and every other member a "user-joined" notice, in that order.
func (s *Service) Join(conn Conn, room, userName string) error {
	s.mu.Lock()
	if lo.Contains(s.reg.ListNames(room), userName) {
		s.mu.Unlock()
		s.bc.sendTo(conn, Envelope{Type: "error", Payload: ErrorPayload{Message: nameTakenMessage}})
		return ErrNameTaken
	}

	s.reg.Add(conn, room, userName)
	roster := s.reg.ListNames(room)
	members := s.reg.MembersOf(room)
	s.mu.Unlock()

	s.bc.sendTo(conn, Envelope{Type: "user-list", Payload: UserListPayload{Users: roster}})
	s.bc.broadcast(members, Envelope{Type: "user-joined", Payload: UserJoinedPayload{UserName: userName}}, conn)
	s.bc.sendTo(conn, Envelope{Type: "success", Payload: SuccessPayload{Message: joinSuccessMessage}})
	return nil
}

// Chat broadcasts message to every member of the sender's room, the sender
// included. An unjoined sender is dropped silently.
func (s *Service) Chat(conn Conn, message string) error {
	s.mu.Lock()
	m := s.reg.Find(conn)
	if m == nil {
		s.mu.Unlock()
		return ErrNotJoined
	}
	members := s.reg.MembersOf(m.Room)
	userName := m.DisplayName
	s.mu.Unlock()

	s.bc.broadcast(members, Envelope{Type: "chat", Payload: ChatPayload{UserName: userName, Message: message}}, nil)
	return nil
}

// Disconnect removes conn from the registry and tells the remaining room
// members it left. A connection that never joined produces no traffic;
// calling Disconnect twice is safe.
func (s *Service) Disconnect(conn Conn) {
	s.mu.Lock()
	removed := s.reg.Remove(conn)
	if removed == nil {
		s.mu.Unlock()
		return
	}
	members := s.reg.MembersOf(removed.Room)
	s.mu.Unlock()

	s.bc.broadcast(members, Envelope{Type: "user-left", Payload: UserLeftPayload{UserName: removed.DisplayName}}, nil)
}
