package api

type ChatMessage struct {
	// Role is "user" or "model".
	Role string `json:"role"`
	Text string `json:"text"`
}

type SendMessageRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message"`
}

type SendMessageResponse struct {
	Reply string `json:"reply"`
}
