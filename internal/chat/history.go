package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	historyKeyPrefix = "chat:history:" // chat:history:{user_id}
	historyTTL       = 30 * 24 * time.Hour
	historyMaxLen    = 50
)

// HistoryStore keeps per-user chat transcripts in Redis. Transcripts
// are a convenience, not a system of record, so they expire.
type HistoryStore struct {
	client *redis.Client
}

func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{client: client}
}

func (s *HistoryStore) key(userID uint) string {
	return fmt.Sprintf("%s%d", historyKeyPrefix, userID)
}

// Append stores one message at the end of the user's transcript and
// refreshes the TTL. The message gets an id and timestamp if missing.
func (s *HistoryStore) Append(ctx context.Context, userID uint, msg Message) (Message, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return msg, fmt.Errorf("marshal chat message: %w", err)
	}

	key := s.key(userID)

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -historyMaxLen, -1)
	pipe.Expire(ctx, key, historyTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return msg, fmt.Errorf("append chat message: %w", err)
	}

	return msg, nil
}

// List returns the transcript in chronological order.
func (s *HistoryStore) List(ctx context.Context, userID uint) ([]Message, error) {
	raw, err := s.client.LRange(ctx, s.key(userID), 0, -1).Result()
	if err == redis.Nil {
		return []Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}

	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}
