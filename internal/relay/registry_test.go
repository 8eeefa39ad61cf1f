package relay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubConn struct {
	name string
	fail bool
}

func (c *stubConn) Send([]byte) error {
	if c.fail {
		return errors.New("broken pipe")
	}
	return nil
}

func TestRegistry_AddAndFind(t *testing.T) {
	reg := NewRegistry()
	c1 := &stubConn{name: "c1"}

	reg.Add(c1, "R", "alice")

	m := reg.Find(c1)
	require.NotNil(t, m)
	require.Equal(t, "R", m.Room)
	require.Equal(t, "alice", m.DisplayName)
}

func TestRegistry_FindUnjoinedIsNil(t *testing.T) {
	reg := NewRegistry()
	require.Nil(t, reg.Find(&stubConn{}))
}

func TestRegistry_ListNamesKeepsJoinOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&stubConn{name: "c1"}, "R", "alice")
	reg.Add(&stubConn{name: "c2"}, "R", "bob")
	reg.Add(&stubConn{name: "c3"}, "R", "carol")

	require.Equal(t, []string{"alice", "bob", "carol"}, reg.ListNames("R"))
}

func TestRegistry_ListNamesEmptyRoom(t *testing.T) {
	reg := NewRegistry()
	require.Empty(t, reg.ListNames("nowhere"))
}

func TestRegistry_RemoveReturnsMembership(t *testing.T) {
	reg := NewRegistry()
	c1 := &stubConn{name: "c1"}
	reg.Add(c1, "R", "alice")

	removed := reg.Remove(c1)
	require.NotNil(t, removed)
	require.Equal(t, "alice", removed.DisplayName)
	require.Nil(t, reg.Find(c1))

	// Second remove is a no-op.
	require.Nil(t, reg.Remove(c1))
}

func TestRegistry_AddSupersedesPriorMembership(t *testing.T) {
	reg := NewRegistry()
	c1 := &stubConn{name: "c1"}

	reg.Add(c1, "R", "alice")
	reg.Add(c1, "S", "alice2")

	m := reg.Find(c1)
	require.Equal(t, "S", m.Room)
	require.Equal(t, "alice2", m.DisplayName)

	// The old room lost its only member and disappeared.
	require.Empty(t, reg.ListNames("R"))
	require.NotContains(t, reg.Rooms(), "R")
	require.Equal(t, []string{"alice2"}, reg.ListNames("S"))
}

func TestRegistry_RejoinSameRoomReplacesName(t *testing.T) {
	reg := NewRegistry()
	c1 := &stubConn{name: "c1"}
	c2 := &stubConn{name: "c2"}

	reg.Add(c1, "R", "alice")
	reg.Add(c2, "R", "bob")
	reg.Add(c1, "R", "alice-renamed")

	// At most one membership per connection, re-appended at the tail.
	require.Equal(t, []string{"bob", "alice-renamed"}, reg.ListNames("R"))
	require.Len(t, reg.MembersOf("R"), 2)
}

func TestRegistry_MembersOf(t *testing.T) {
	reg := NewRegistry()
	c1 := &stubConn{name: "c1"}
	c2 := &stubConn{name: "c2"}
	c3 := &stubConn{name: "c3"}
	reg.Add(c1, "R", "alice")
	reg.Add(c2, "R", "bob")
	reg.Add(c3, "other", "carol")

	members := reg.MembersOf("R")
	require.Len(t, members, 2)
	require.Contains(t, members, Conn(c1))
	require.Contains(t, members, Conn(c2))
}

func TestRegistry_RoomsSnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&stubConn{name: "c1"}, "R", "alice")
	reg.Add(&stubConn{name: "c2"}, "R", "bob")
	reg.Add(&stubConn{name: "c3"}, "S", "carol")

	require.Equal(t, map[string]int{"R": 2, "S": 1}, reg.Rooms())
}
