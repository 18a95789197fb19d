package models

// ChatRequest is the payload coming from the frontend into /api/agent/chat.
type ChatRequest struct {
	ConversationID string `json:"conversationId,omitempty"` // empty starts a new conversation
	UserID         string `json:"userId"`
	Message        string `json:"message"`
}

// ChatResponse is what the agent handler returns to the frontend.
type ChatResponse struct {
	ConversationID string `json:"conversationId"`
	Reply          string `json:"reply"`
}
