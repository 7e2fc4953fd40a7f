package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache de respostas de disponibilidade. A chave embute uma versão por
// worker: invalidar é só incrementar a versão, sem varrer chaves.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

// New retorna nil quando não há Redis configurado; todos os métodos
// são seguros com receiver nil (cache desligado)
func New(addr string, ttl time.Duration) *Availability {
	if addr == "" {
		return nil
	}

	return &Availability{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (c *Availability) version(ctx context.Context, workerID uint) int64 {
	v, err := c.rdb.Get(ctx, fmt.Sprintf("avail:ver:%d", workerID)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (c *Availability) key(ctx context.Context, workerID uint, date string, serviceID uint, additionalID *uint) string {
	add := uint(0)
	if additionalID != nil {
		add = *additionalID
	}
	return fmt.Sprintf(
		"avail:%d:%d:%s:%d:%d",
		workerID, c.version(ctx, workerID), date, serviceID, add,
	)
}

func (c *Availability) Get(
	ctx context.Context,
	workerID uint,
	date string,
	serviceID uint,
	additionalID *uint,
) (string, bool) {

	if c == nil {
		return "", false
	}

	val, err := c.rdb.Get(ctx, c.key(ctx, workerID, date, serviceID, additionalID)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Availability) Set(
	ctx context.Context,
	workerID uint,
	date string,
	serviceID uint,
	additionalID *uint,
	payload string,
) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, c.key(ctx, workerID, date, serviceID, additionalID), payload, c.ttl)
}

// InvalidateWorker descarta tudo do worker (novo agendamento,
// cancelamento, horário ou bloqueio alterado)
func (c *Availability) InvalidateWorker(ctx context.Context, workerID uint) {
	if c == nil {
		return
	}
	c.rdb.Incr(ctx, fmt.Sprintf("avail:ver:%d", workerID))
}
