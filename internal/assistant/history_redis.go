package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/insightsource/catalog/internal/platform/constants"
)

// RedisHistory keeps each transcript as a capped Redis list with a sliding TTL.
type RedisHistory struct {
	client   redis.Cmdable
	ttl      time.Duration
	maxTurns int64
}

func NewRedisHistory(client redis.Cmdable, ttl time.Duration, maxTurns int) *RedisHistory {
	return &RedisHistory{client: client, ttl: ttl, maxTurns: int64(maxTurns)}
}

func sessionKey(sessionID string) string {
	return constants.RedisPrefixAssistantSession + sessionID
}

// Load implements [HistoryStore]. An unknown or expired session has no turns.
func (history *RedisHistory) Load(ctx context.Context, sessionID string) ([]Turn, error) {
	raw, err := history.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("assistant: load history: %w", err)
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var turn Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, fmt.Errorf("assistant: decode history: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

// Append implements [HistoryStore]. Only the newest maxTurns entries are kept.
func (history *RedisHistory) Append(ctx context.Context, sessionID string, turns ...Turn) error {
	if len(turns) == 0 {
		return nil
	}

	values := make([]any, 0, len(turns))
	for _, turn := range turns {
		encoded, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("assistant: encode history: %w", err)
		}
		values = append(values, encoded)
	}

	key := sessionKey(sessionID)
	pipe := history.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -history.maxTurns, -1)
	pipe.Expire(ctx, key, history.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("assistant: append history: %w", err)
	}
	return nil
}
