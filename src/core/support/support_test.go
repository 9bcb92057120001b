package support_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"claimsight/src/core/support"
)

type fakeProvider struct {
	reply string
	err   error
	calls int
}

func (f *fakeProvider) Reasoning(ctx context.Context, system string, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type memoryHistory struct {
	messages map[string][]support.ChatMessage
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{messages: make(map[string][]support.ChatMessage)}
}

func (m *memoryHistory) SaveMessage(ctx context.Context, msg *support.ChatMessage) error {
	m.messages[msg.SessionID] = append(m.messages[msg.SessionID], *msg)
	return nil
}

func (m *memoryHistory) ListMessages(ctx context.Context, sessionID string) ([]support.ChatMessage, error) {
	return m.messages[sessionID], nil
}

func TestChatUsesProviderReply(t *testing.T) {
	provider := &fakeProvider{reply: "You can upload PDF documents from the Documents tab."}
	history := newMemoryHistory()
	service := support.NewService(provider, history, "llama3")

	reply, err := service.Chat(context.Background(), "session-1", "How do I upload a document?", "English")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if reply.Role != support.RoleAssistant {
		t.Errorf("reply role = %s, want %s", reply.Role, support.RoleAssistant)
	}
	if reply.Content != provider.reply {
		t.Errorf("reply content = %q, want %q", reply.Content, provider.reply)
	}

	saved := history.messages["session-1"]
	if len(saved) != 2 {
		t.Fatalf("saved %d messages, want 2", len(saved))
	}
	if saved[0].Role != support.RoleUser || saved[1].Role != support.RoleAssistant {
		t.Errorf("saved roles = %s, %s", saved[0].Role, saved[1].Role)
	}
}

func TestChatFallsBackWhenProviderFails(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	service := support.NewService(provider, newMemoryHistory(), "llama3")

	reply, err := service.Chat(context.Background(), "session-1", "Why is my claim pending?", "English")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if !strings.Contains(reply.Content, "I apologize") {
		t.Errorf("expected apology fallback, got %q", reply.Content)
	}
}

func TestChatAnswersKeywordWithoutProvider(t *testing.T) {
	provider := &fakeProvider{reply: "should not be used"}
	service := support.NewService(provider, newMemoryHistory(), "llama3")

	reply, err := service.Chat(context.Background(), "", "Database Questions", "English")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for a keyword message, want 0", provider.calls)
	}
	if !strings.Contains(reply.Content, "database contains policy") {
		t.Errorf("unexpected keyword reply: %q", reply.Content)
	}
	if reply.SessionID == "" {
		t.Error("expected generated session id")
	}
}

func TestKeywordAnswer(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		language string
		matched  bool
		contains string
	}{
		{
			name:     "english catalogue answer",
			message:  "Voice Input Issues",
			language: "English",
			matched:  true,
			contains: "microphone permissions",
		},
		{
			name:     "hindi keyword maps to catalogue",
			message:  "डेटाबेस प्रश्न",
			language: "Hindi",
			matched:  true,
			contains: "डेटाबेस",
		},
		{
			name:     "known topic without dedicated answer",
			message:  "Getting Started",
			language: "English",
			matched:  true,
			contains: "happy to help you with Getting Started",
		},
		{
			name:     "free text does not match",
			message:  "my claim was rejected",
			language: "English",
			matched:  false,
		},
		{
			name:     "unknown language falls back to english",
			message:  "Voice Input Issues",
			language: "French",
			matched:  true,
			contains: "microphone permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := support.KeywordAnswer(tt.message, tt.language)
			if ok != tt.matched {
				t.Fatalf("KeywordAnswer() matched = %v, want %v", ok, tt.matched)
			}
			if tt.matched && !strings.Contains(answer, tt.contains) {
				t.Errorf("answer %q does not contain %q", answer, tt.contains)
			}
		})
	}
}

func TestSuggestions(t *testing.T) {
	english := support.Suggestions("English")
	if len(english) != 9 {
		t.Errorf("English suggestions = %d, want 9", len(english))
	}

	hindi := support.Suggestions("Hindi")
	if len(hindi) != len(english) {
		t.Errorf("Hindi suggestions = %d, want %d", len(hindi), len(english))
	}

	fallback := support.Suggestions("Klingon")
	if len(fallback) != len(english) {
		t.Errorf("fallback suggestions = %d, want %d", len(fallback), len(english))
	}
}
