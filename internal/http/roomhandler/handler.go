// Package roomhandler exposes a read-only REST view over the live relay
// registry. Rooms have no manageable lifecycle; these endpoints only
// observe what the websocket traffic created.
package roomhandler

import (
	"net/http"
	"sort"

	"roomrelay/internal/relay"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type Handler struct {
	reg *relay.Registry
}

func New(reg *relay.Registry) *Handler { return &Handler{reg: reg} }

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/rooms", h.list)
	r.GET("/rooms/:id/users", h.users)
}

// list returns every currently populated room with its occupant count,
// sorted by room name for a stable response.
func (h *Handler) list(c *gin.Context) {
	rooms := h.reg.Rooms()
	out := lo.MapToSlice(rooms, func(room string, occupants int) RoomSummary {
		return RoomSummary{Room: room, Occupants: occupants}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Room < out[j].Room })
	c.JSON(http.StatusOK, out)
}

// users returns the roster of one room in join order.
func (h *Handler) users(c *gin.Context) {
	room := c.Param("id")
	users := h.reg.ListNames(room)
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
		return
	}
	c.JSON(http.StatusOK, RoomUsersResponse{Room: room, Users: users})
}
