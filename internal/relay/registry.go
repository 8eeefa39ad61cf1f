package relay

import (
	"sync"

	"github.com/samber/lo"
)

// Conn is the transport handle the registry tracks. The registry never owns
// the underlying session; identity is reference equality of the handle.
type Conn interface {
	Send(payload []byte) error
}

// Membership binds one live connection to a room under a display name.
type Membership struct {
	Conn        Conn
	Room        string
	DisplayName string
}

// Registry is the authoritative connection → (room, name) mapping. It keeps
// two indexes so join, chat and disconnect never scan the full set: one keyed
// by connection, one keyed by room (insertion-ordered, so rosters are stable).
//
// Rooms are derived views: a room key exists exactly while it has members.
type Registry struct {
	mu     sync.RWMutex
	byConn map[Conn]*Membership
	byRoom map[string][]*Membership
}

func NewRegistry() *Registry {
	return &Registry{
		byConn: make(map[Conn]*Membership),
		byRoom: make(map[string][]*Membership),
	}
}

// Add inserts a Membership for conn, superseding any prior one the same
// connection held (a rejoin after refresh replaces, never duplicates).
// The caller must have checked name uniqueness in the room beforehand.
func (r *Registry) Add(conn Conn, room, displayName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeLocked(conn)

	m := &Membership{Conn: conn, Room: room, DisplayName: displayName}
	r.byConn[conn] = m
	r.byRoom[room] = append(r.byRoom[room], m)
}

// Remove deletes the Membership for conn and returns it, or nil when the
// connection was never joined. Removing twice is a no-op.
func (r *Registry) Remove(conn Conn) *Membership {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(conn)
}

func (r *Registry) removeLocked(conn Conn) *Membership {
	m, ok := r.byConn[conn]
	if !ok {
		return nil
	}
	delete(r.byConn, conn)

	members := r.byRoom[m.Room]
	members = lo.Without(members, m)
	if len(members) == 0 {
		delete(r.byRoom, m.Room)
	} else {
		r.byRoom[m.Room] = members
	}
	return m
}

// Find returns the Membership for conn, or nil.
func (r *Registry) Find(conn Conn) *Membership {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byConn[conn]
}

// ListNames returns the display names currently in room, in join order.
func (r *Registry) ListNames(room string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.byRoom[room], func(m *Membership, _ int) string {
		return m.DisplayName
	})
}

// MembersOf returns a snapshot of the connections currently in room.
func (r *Registry) MembersOf(room string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.byRoom[room], func(m *Membership, _ int) Conn {
		return m.Conn
	})
}

// Rooms returns a snapshot of room name → occupant count.
func (r *Registry) Rooms() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(r.byRoom))
	for room, members := range r.byRoom {
		out[room] = len(members)
	}
	return out
}
