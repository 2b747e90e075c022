package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRosterTTL = time.Hour

// Cache keeps competition rosters in Redis so widening the distractor pool
// costs one round trip instead of a cross-match scan per request.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ RosterCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultRosterTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(competitionID, seasonID int) string {
	return fmt.Sprintf("roster:%d:%d", competitionID, seasonID)
}

func (c *Cache) Get(ctx context.Context, competitionID, seasonID int) ([]string, error) {
	data, err := c.client.Get(ctx, c.key(competitionID, seasonID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var teams []string
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Cache) Set(ctx context.Context, competitionID, seasonID int, teams []string) error {
	data, err := json.Marshal(teams)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(competitionID, seasonID), data, c.ttl).Err()
}
