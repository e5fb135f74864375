package chat

// swagger:parameters getChatMessages
type _ struct {
	// in: query
	// required: true
	ClubID string `json:"clubId"`
	// in: query
	Limit int `json:"limit"`
}

// swagger:parameters pollChatMessages
type _ struct {
	// in: query
	// required: true
	ClubID string `json:"clubId"`
	// in: query
	After int64 `json:"after"`
}

// swagger:parameters sendChatMessage
type _ struct {
	// Send message request body parameter
	// in: body
	// required: true
	Body SendMessageRequest
}

// swagger:parameters togglePin
type _ struct {
	// Toggle pin request body parameter
	// in: body
	// required: true
	Body TogglePinRequest
}

// swagger:parameters toggleReaction
type _ struct {
	// Toggle reaction request body parameter
	// in: body
	// required: true
	Body ToggleReactionRequest
}

// swagger:response Messages
type _ struct {
	//in: body
	Body struct {
		Messages []Message `json:"messages"`
	}
}

// swagger:response MessageResponse
type _ struct {
	//in: body
	Body struct {
		Success bool    `json:"success"`
		Message Message `json:"message"`
	}
}

// swagger:response PollResponse
type _ struct {
	//in: body
	Body struct {
		Messages        []Message `json:"messages"`
		LatestTimestamp int64     `json:"latestTimestamp"`
	}
}
