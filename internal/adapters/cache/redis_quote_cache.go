package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const defaultKeyPrefix = "route-cost:quote:"

// RedisQuoteCache stores computed quotes in Redis with a fixed TTL.
// A TTL of zero keeps entries until evicted.
type RedisQuoteCache struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

type cachedCandidate struct {
	Start string          `json:"start"`
	Cost  decimal.Decimal `json:"cost"`
}

type cachedQuote struct {
	Cost       decimal.Decimal   `json:"cost"`
	Start      string            `json:"start"`
	Candidates []cachedCandidate `json:"candidates"`
}

func NewRedisQuoteCache(client *redis.Client, ttl time.Duration) *RedisQuoteCache {
	return &RedisQuoteCache{Client: client, TTL: ttl, Prefix: defaultKeyPrefix}
}

// OpenRedisQuoteCache connects to the Redis server at url (redis://...) and
// verifies the connection.
func OpenRedisQuoteCache(ctx context.Context, url string, ttl time.Duration) (*RedisQuoteCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("open quote cache: parse url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open quote cache: ping: %w", err)
	}

	return NewRedisQuoteCache(client, ttl), nil
}

func (c *RedisQuoteCache) GetQuote(ctx context.Context, key string) (_ domain.RouteQuote, _ bool, err error) {
	defer obs.Time(ctx, "quote.cache.GetQuote")(&err)

	if c.Client == nil {
		return domain.RouteQuote{}, false, errors.New("quote cache: client is nil")
	}

	data, err := c.Client.Get(ctx, c.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.RouteQuote{}, false, nil
	}
	if err != nil {
		return domain.RouteQuote{}, false, fmt.Errorf("get quote %q: %w", key, err)
	}

	var cq cachedQuote
	if err := json.Unmarshal(data, &cq); err != nil {
		return domain.RouteQuote{}, false, fmt.Errorf("get quote %q: decode: %w", key, err)
	}

	q := domain.RouteQuote{
		Cost:       cq.Cost,
		Start:      domain.Location(cq.Start),
		Candidates: make([]domain.CandidateCost, 0, len(cq.Candidates)),
	}
	for _, cand := range cq.Candidates {
		q.Candidates = append(q.Candidates, domain.CandidateCost{Start: domain.Location(cand.Start), Cost: cand.Cost})
	}

	return q, true, nil
}

func (c *RedisQuoteCache) PutQuote(ctx context.Context, key string, q domain.RouteQuote) (err error) {
	defer obs.Time(ctx, "quote.cache.PutQuote")(&err)

	if c.Client == nil {
		return errors.New("quote cache: client is nil")
	}

	cq := cachedQuote{
		Cost:       q.Cost,
		Start:      string(q.Start),
		Candidates: make([]cachedCandidate, 0, len(q.Candidates)),
	}
	for _, cand := range q.Candidates {
		cq.Candidates = append(cq.Candidates, cachedCandidate{Start: string(cand.Start), Cost: cand.Cost})
	}

	data, err := json.Marshal(cq)
	if err != nil {
		return fmt.Errorf("put quote %q: encode: %w", key, err)
	}

	if err := c.Client.Set(ctx, c.Prefix+key, data, c.TTL).Err(); err != nil {
		return fmt.Errorf("put quote %q: %w", key, err)
	}
	return nil
}

func (c *RedisQuoteCache) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
