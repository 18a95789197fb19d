package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberflow/models"
	"barberflow/services/agent"
	"barberflow/services/booking"
	"barberflow/utils"
)

// AgentHandler fronts the conversational agent.
type AgentHandler struct {
	Agent *agent.Agent
}

// NewAgentHandler returns a handler over the given agent.
func NewAgentHandler(a *agent.Agent) *AgentHandler {
	return &AgentHandler{Agent: a}
}

// ChatHandler handles POST /api/agent/chat. An empty conversationId starts a
// new conversation; the response always carries the id to use on the next turn.
func (h *AgentHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}
	if req.UserID == "" || req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", "userId and message are required")
		return
	}

	resp, err := h.Agent.Chat(c.Request.Context(), req.ConversationID, req.UserID, req.Message)
	if err != nil {
		if booking.CodeOf(err) == booking.CodeConversationNotFound {
			utils.JSONError(c, http.StatusNotFound, "Conversation not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Chat failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
