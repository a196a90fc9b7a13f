// AngelaMos | 2026
// flags.go

package gate

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlagStore remembers which links a visitor session has already unlocked,
// so a reload inside the same session skips the form.
type FlagStore interface {
	IsUnlocked(ctx context.Context, sessionID, linkID string) (bool, error)
	MarkUnlocked(ctx context.Context, sessionID, linkID string) error
}

type redisFlags struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFlags(client *redis.Client, ttl time.Duration) FlagStore {
	return &redisFlags{client: client, ttl: ttl}
}

func flagKey(sessionID, linkID string) string {
	return "gate:unlocked:" + sessionID + ":" + linkID
}

func (f *redisFlags) IsUnlocked(
	ctx context.Context,
	sessionID, linkID string,
) (bool, error) {
	n, err := f.client.Exists(ctx, flagKey(sessionID, linkID)).Result()
	if err != nil {
		return false, fmt.Errorf("check unlock flag: %w", err)
	}

	return n > 0, nil
}

// MarkUnlocked sets the flag with a TTL as a backstop; the session cookie
// itself dies with the browser session, which is the real boundary.
func (f *redisFlags) MarkUnlocked(
	ctx context.Context,
	sessionID, linkID string,
) error {
	err := f.client.Set(ctx, flagKey(sessionID, linkID), "1", f.ttl).Err()
	if err != nil {
		return fmt.Errorf("set unlock flag: %w", err)
	}

	return nil
}
