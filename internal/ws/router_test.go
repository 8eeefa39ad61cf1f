package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouter_DispatchTypedPayload(t *testing.T) {
	r := NewRouter()

	var got JoinRequest
	Register(r, "join", func(_ *ConnContext, req JoinRequest) error {
		got = req
		return nil
	})

	env := Envelope{Type: "join", Payload: json.RawMessage(`{"roomId":"R","userName":"alice"}`)}
	require.NoError(t, r.dispatch(&ConnContext{}, env))
	require.Equal(t, JoinRequest{RoomID: "R", UserName: "alice"}, got)
}

func TestRouter_UnknownTypeRejected(t *testing.T) {
	r := NewRouter()
	Register(r, "join", func(_ *ConnContext, _ JoinRequest) error { return nil })

	err := r.dispatch(&ConnContext{}, Envelope{Type: "shout"})
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestRouter_MalformedPayloadRejected(t *testing.T) {
	r := NewRouter()
	called := false
	Register(r, "chat", func(_ *ConnContext, _ ChatRequest) error {
		called = true
		return nil
	})

	env := Envelope{Type: "chat", Payload: json.RawMessage(`{"message":42}`)}
	require.Error(t, r.dispatch(&ConnContext{}, env))
	require.False(t, called)
}

func TestRouter_EmptyPayloadYieldsZeroValue(t *testing.T) {
	r := NewRouter()
	Register(r, "chat", func(_ *ConnContext, req ChatRequest) error {
		require.Empty(t, req.Message)
		return nil
	})

	require.NoError(t, r.dispatch(&ConnContext{}, Envelope{Type: "chat"}))
}

func TestRouter_EmptyTypePanicsOnRegister(t *testing.T) {
	r := NewRouter()
	require.Panics(t, func() {
		Register(r, "", func(_ *ConnContext, _ ChatRequest) error { return nil })
	})
}
