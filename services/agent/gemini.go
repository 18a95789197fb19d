package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	conversationRepo "barberflow/database/repository/conversation"
	"barberflow/models"
	"barberflow/services/booking"
	"barberflow/utils"
)

// maxToolTurns bounds the tool-call loop for a single user turn.
const maxToolTurns = 8

const apologyReply = "Sorry, something went wrong while processing your request. Please try again."

// Agent drives the Gemini tool-calling loop over a conversation. It is built
// once at process start and injected; there is no per-request construction.
type Agent struct {
	model    *genai.GenerativeModel
	registry *Registry
	convRepo conversationRepo.ConversationRepository
}

// NewAgent creates the Gemini client, binds the tool registry's declarations
// and the system prompt to the model, and returns the ready agent.
func NewAgent(ctx context.Context, apiKey, modelName string, registry *Registry, convRepo conversationRepo.ConversationRepository) (*Agent, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.Tools = []*genai.Tool{{FunctionDeclarations: registry.Declarations()}}
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(SystemPrompt)}}

	return &Agent{
		model:    model,
		registry: registry,
		convRepo: convRepo,
	}, nil
}

// Chat processes one user turn: it loads or creates the conversation, replays
// its history into a chat session, runs the tool loop until the model yields
// text, persists both sides of the turn, and returns the reply. An upstream
// model failure surfaces as a generic apology; no tool result means no commit,
// so there are never partial booking side effects.
func (a *Agent) Chat(ctx context.Context, conversationID, userID, message string) (*models.ChatResponse, error) {
	logger := utils.GetLogger()
	now := time.Now()

	var conv *models.Conversation
	isNew := false
	if conversationID == "" {
		conv = &models.Conversation{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: now,
		}
		isNew = true
	} else {
		loaded, err := a.convRepo.GetByID(ctx, conversationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load conversation: %w", err)
		}
		if loaded == nil {
			return nil, booking.NewError(booking.CodeConversationNotFound, "conversation %q not found", conversationID)
		}
		conv = loaded
	}

	conv.Messages = append(conv.Messages, models.Message{
		Role:      models.RoleUser,
		Content:   message,
		Timestamp: now,
	})

	reply, err := a.run(ctx, conv, message, now)
	if err != nil {
		logger.Error("reasoning engine failure",
			zap.String("conversationID", conv.ID), zap.Error(err))
		reply = apologyReply
	}

	conv.Messages = append(conv.Messages, models.Message{
		Role:      models.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	})
	conv.UpdatedAt = time.Now()

	if isNew {
		err = a.convRepo.Create(ctx, conv)
	} else {
		err = a.convRepo.Update(ctx, conv)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %w", err)
	}

	return &models.ChatResponse{ConversationID: conv.ID, Reply: reply}, nil
}

// run replays history, sends the new message and loops on function calls.
func (a *Agent) run(ctx context.Context, conv *models.Conversation, message string, now time.Time) (string, error) {
	cs := a.model.StartChat()
	cs.History = historyFor(conv)

	// The context header is how tools receive the conversation id; the model
	// never asks the user for it.
	input := fmt.Sprintf("[context] conversationId: %s | now: %s\n\n%s",
		conv.ID, now.Format(time.RFC3339), message)

	resp, err := cs.SendMessage(ctx, genai.Text(input))
	if err != nil {
		return "", fmt.Errorf("gemini send error: %w", err)
	}

	for turn := 0; turn < maxToolTurns; turn++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			return textOf(resp), nil
		}

		parts := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			result := a.registry.Dispatch(ctx, call.Name, call.Args)
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: result,
			})
		}

		resp, err = cs.SendMessage(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("gemini tool-response error: %w", err)
		}
	}

	return "", fmt.Errorf("tool loop exceeded %d turns", maxToolTurns)
}

// historyFor converts stored messages (minus the just-appended user turn)
// into genai chat history. System messages are carried in the model's system
// instruction, not the history.
func historyFor(conv *models.Conversation) []*genai.Content {
	var history []*genai.Content
	msgs := conv.Messages
	if len(msgs) > 0 {
		msgs = msgs[:len(msgs)-1]
	}
	for _, m := range msgs {
		role := "user"
		switch m.Role {
		case models.RoleAssistant:
			role = "model"
		case models.RoleSystem:
			continue
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return history
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return calls
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if fc, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, fc)
		}
	}
	return calls
}

func textOf(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
