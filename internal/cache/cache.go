package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cardpay/backend/internal/domain"
	"go.uber.org/zap"
)

const keyPrefix = "op:"

// Cache memoizes terminal operation records in redis. Pending records are
// never cached: only a terminal record is immutable, so serving it from
// cache can't hand out stale state. A nil client disables the cache and
// every lookup degrades to a miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// NewClient connects to redis at addr. Connection failure is not fatal:
// the gateway runs without the result cache.
func NewClient(ctx context.Context, addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unavailable, running without result cache", zap.Error(err))
		return nil
	}
	return client
}

func (c *Cache) GetOperation(ctx context.Context, operationNo string) (*domain.Operation, error) {
	if c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, keyPrefix+operationNo).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var op domain.Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

func (c *Cache) SetOperation(ctx context.Context, op *domain.Operation) error {
	if c.client == nil || !op.Terminal() {
		return nil
	}
	data, err := json.Marshal(op)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+op.OperationNo, data, c.ttl).Err()
}
