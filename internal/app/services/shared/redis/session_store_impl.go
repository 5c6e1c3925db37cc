package redis

import (
	"context"
	"fmt"
	"time"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type sessionStore struct {
	client     *redis.Client
	sessionTTL time.Duration
	lockTTL    time.Duration
}

func NewSessionStore(client *redis.Client, sessionTTL, lockTTL time.Duration) contracts.SessionStore {
	return &sessionStore{
		client:     client,
		sessionTTL: sessionTTL,
		lockTTL:    lockTTL,
	}
}

func (r *sessionStore) SaveSession(ctx context.Context, sessionID string, payload interface{}) error {
	jsonValue, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	key := fmt.Sprintf(constvars.RedisKeyWorkflowSession, sessionID)
	err = r.client.Set(ctx, key, jsonValue, r.sessionTTL).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *sessionStore) GetSession(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constvars.RedisKeyWorkflowSession, sessionID)
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *sessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeyWorkflowSession, sessionID)
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *sessionStore) TryAcquireLock(ctx context.Context, key string) (bool, error) {
	acquired, err := r.client.SetNX(ctx, key, "1", r.lockTTL).Result()
	if err != nil {
		return false, exceptions.ErrRedisAcquireLock(err)
	}
	return acquired, nil
}

func (r *sessionStore) ReleaseLock(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
