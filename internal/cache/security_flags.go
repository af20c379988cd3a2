package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SecurityFlags é a visão cacheada dos flags de segurança de um cliente,
// lida no caminho quente de criação de agendamentos.
type SecurityFlags struct {
	ClientID           uint       `json:"client_id"`
	IsFlagged          bool       `json:"is_flagged"`
	FalseVouchersCount int        `json:"false_vouchers_count"`
	Blacklisted        bool       `json:"blacklisted"`
	LastRejectionDate  *time.Time `json:"last_rejection_date"`
	IsUnwelcome        bool       `json:"is_unwelcome"`
}

type SecurityFlagsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewSecurityFlagsCache(client *redis.Client, ttl time.Duration) *SecurityFlagsCache {
	return &SecurityFlagsCache{client: client, ttl: ttl}
}

func key(clientID uint) string {
	return fmt.Sprintf("security_flags:%d", clientID)
}

// Get devolve (nil, nil) em cache miss.
func (c *SecurityFlagsCache) Get(ctx context.Context, clientID uint) (*SecurityFlags, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	val, err := c.client.Get(ctx, key(clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get security flags from redis: %w", err)
	}

	var flags SecurityFlags
	if err := json.Unmarshal([]byte(val), &flags); err != nil {
		return nil, fmt.Errorf("unmarshal security flags: %w", err)
	}

	return &flags, nil
}

func (c *SecurityFlagsCache) Set(ctx context.Context, flags *SecurityFlags) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("marshal security flags: %w", err)
	}

	if err := c.client.Set(ctx, key(flags.ClientID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set security flags in redis: %w", err)
	}

	return nil
}

// Invalidate remove a entrada após qualquer escrita no ledger.
func (c *SecurityFlagsCache) Invalidate(ctx context.Context, clientID uint) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, key(clientID)).Err(); err != nil {
		return fmt.Errorf("invalidate security flags in redis: %w", err)
	}
	return nil
}
