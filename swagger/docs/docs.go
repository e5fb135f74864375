package docs

// swagger:response Error
type Error struct {
	// The failure body
	//in: body
	Body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
}
