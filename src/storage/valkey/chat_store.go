// Package valkey persists support chat history in a Valkey instance. Each
// message is a hash keyed chat:<session_id>:<message_id>.
package valkey

import (
	"context"
	"fmt"
	"sort"
	"time"

	vk "github.com/valkey-io/valkey-go"

	"claimsight/src/core/support"
)

const chatPrefix = "chat:"

type ChatStore struct {
	client vk.Client
}

// NewChatStore connects to Valkey at the given address (host:port).
func NewChatStore(address string) (*ChatStore, error) {
	client, err := vk.NewClient(vk.ClientOption{
		InitAddress: []string{address},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	return &ChatStore{client: client}, nil
}

func (s *ChatStore) Close() {
	s.client.Close()
}

func (s *ChatStore) SaveMessage(ctx context.Context, msg *support.ChatMessage) error {
	key := fmt.Sprintf("%s%s:%s", chatPrefix, msg.SessionID, msg.MessageID)

	cmd := s.client.B().Hset().Key(key).FieldValue().
		FieldValue("session_id", msg.SessionID).
		FieldValue("message_id", msg.MessageID).
		FieldValue("role", msg.Role).
		FieldValue("content", msg.Content).
		FieldValue("created_at", msg.CreatedAt.Format(time.RFC3339Nano)).
		Build()

	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// ListMessages returns all messages of a session in chronological order.
func (s *ChatStore) ListMessages(ctx context.Context, sessionID string) ([]support.ChatMessage, error) {
	pattern := fmt.Sprintf("%s%s:*", chatPrefix, sessionID)
	keys, err := s.client.Do(ctx, s.client.B().Keys().Pattern(pattern).Build()).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to list chat message keys: %w", err)
	}

	messages := make([]support.ChatMessage, 0, len(keys))
	for _, key := range keys {
		msg, err := s.getMessage(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get chat message %s: %w", key, err)
		}
		messages = append(messages, *msg)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	return messages, nil
}

// DeleteSession removes every message of a session.
func (s *ChatStore) DeleteSession(ctx context.Context, sessionID string) error {
	pattern := fmt.Sprintf("%s%s:*", chatPrefix, sessionID)
	keys, err := s.client.Do(ctx, s.client.B().Keys().Pattern(pattern).Build()).AsStrSlice()
	if err != nil {
		return fmt.Errorf("failed to list chat message keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Do(ctx, s.client.B().Del().Key(keys...).Build()).Error(); err != nil {
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}
	return nil
}

func (s *ChatStore) Ping(ctx context.Context) error {
	if err := s.client.Do(ctx, s.client.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("failed to reach valkey: %w", err)
	}
	return nil
}

func (s *ChatStore) getMessage(ctx context.Context, key string) (*support.ChatMessage, error) {
	fields, err := s.client.Do(ctx, s.client.B().Hgetall().Key(key).Build()).AsStrMap()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat message fields: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &support.ChatMessage{
		SessionID: fields["session_id"],
		MessageID: fields["message_id"],
		Role:      fields["role"],
		Content:   fields["content"],
		CreatedAt: createdAt,
	}, nil
}
