package chat

// Message is a single entry in a club's message log. Sender identity is a snapshot taken at send
// time, not a live join. Pin state and reactions are mutable annotations stored on the message
// itself.
// swagger:model
type Message struct {
	ID         string `json:"id"`
	ClubID     string `json:"clubId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar,omitempty"`
	Message    string `json:"message"`
	// Timestamp is epoch milliseconds assigned at send time. It doubles as the sort key and the
	// polling cursor.
	Timestamp int64 `json:"timestamp"`
	Pinned    bool  `json:"pinned,omitempty"`
	// Reactions maps an emoji to the ids of the users who reacted with it.
	Reactions map[string][]string `json:"reactions,omitempty"`
}
