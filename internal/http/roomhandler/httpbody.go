package roomhandler

type RoomSummary struct {
	Room      string `json:"room"`
	Occupants int    `json:"occupants"`
}

type RoomUsersResponse struct {
	Room  string   `json:"room"`
	Users []string `json:"users"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
