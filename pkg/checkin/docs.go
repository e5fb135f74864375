package checkin

// swagger:parameters issueCheckinToken
type _ struct {
	// Issue token request body parameter
	// in: body
	// required: true
	Body IssueTokenRequest
}

// swagger:parameters validateCheckinToken
type _ struct {
	// Validate token request body parameter
	// in: body
	// required: true
	Body ValidateTokenRequest
}

// swagger:response TokenResponse
type _ struct {
	//in: body
	Body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
}

// swagger:response ValidationResponse
type _ struct {
	//in: body
	Body struct {
		Success bool   `json:"success"`
		EventID string `json:"eventId"`
	}
}
