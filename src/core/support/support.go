// Package support implements the multilingual customer support chat. Common
// questions are answered from a canned catalogue; everything else goes to the
// LLM with a fallback apology when the model is unreachable.
package support

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/google/uuid"

	"claimsight/src/log"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// SupportedLanguages lists the languages the chat UI offers.
var SupportedLanguages = []string{"English", "Hindi"}

// ChatMessage is one message in a support conversation.
type ChatMessage struct {
	SessionID string    `json:"session_id"`
	MessageID string    `json:"message_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatHistory persists support conversations.
type ChatHistory interface {
	SaveMessage(ctx context.Context, msg *ChatMessage) error
	ListMessages(ctx context.Context, sessionID string) ([]ChatMessage, error)
}

// Provider generates assistant replies.
type Provider interface {
	Reasoning(ctx context.Context, system string, prompt string) (string, error)
}

const chatSystemPrompt = `You are a helpful and friendly customer support assistant for an insurance claims application.

Guidelines:
- Respond in the {{.Language}} language.
- Be helpful, polite, and professional but friendly.
- Keep responses concise and clear.
- If the user asks technical questions about the app, provide helpful guidance.
- If the issue is complex, suggest contacting a customer executive.
- Use appropriate emojis to make responses friendly.`

const fallbackReply = "I apologize, but I'm having trouble responding right now. Please try again or contact our customer executive."

var chatSystemTemplate = template.Must(template.New("chat_system").Parse(chatSystemPrompt))

// Service answers support chat requests.
type Service struct {
	provider Provider
	history  ChatHistory
	model    string
}

func NewService(provider Provider, history ChatHistory, model string) *Service {
	return &Service{
		provider: provider,
		history:  history,
		model:    model,
	}
}

// Chat answers one user message. The reply always succeeds from the caller's
// point of view: provider failures produce the fallback apology instead of an
// error, so the conversation never dead-ends.
func (s *Service) Chat(ctx context.Context, sessionID, message, language string) (*ChatMessage, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	language = normalizeLanguage(language)

	userMsg := &ChatMessage{
		SessionID: sessionID,
		MessageID: uuid.New().String(),
		Role:      RoleUser,
		Content:   message,
		CreatedAt: time.Now(),
	}
	if err := s.history.SaveMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	reply := s.reply(ctx, message, language)

	assistantMsg := &ChatMessage{
		SessionID: sessionID,
		MessageID: uuid.New().String(),
		Role:      RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}
	if err := s.history.SaveMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	return assistantMsg, nil
}

func (s *Service) reply(ctx context.Context, message, language string) string {
	if answer, ok := KeywordAnswer(message, language); ok {
		return answer
	}

	var system bytes.Buffer
	if err := chatSystemTemplate.Execute(&system, map[string]string{"Language": language}); err != nil {
		log.Error(err, "failed to render chat system prompt")
		return fallbackReply
	}

	reply, err := s.provider.Reasoning(ctx, system.String(), message)
	if err != nil {
		log.Error(err, "support chat provider failed")
		return fallbackReply
	}
	return reply
}

// History returns all messages of one session in chronological order.
func (s *Service) History(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	return s.history.ListMessages(ctx, sessionID)
}

func normalizeLanguage(language string) string {
	for _, l := range SupportedLanguages {
		if l == language {
			return l
		}
	}
	return "English"
}
