package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisStore persiste les valeurs en JSON dans Redis. Pas de TTL : le panier et
// la wishlist vivent jusqu'à leur vidage explicite. Pas de coordination entre
// écrivains concurrents — le dernier qui écrit gagne, limitation assumée.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Read(ctx context.Context, key string, dest any) {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil || data == "" {
		return // clé absente ⇒ valeur par défaut
	}
	// donnée corrompue ⇒ valeur par défaut, jamais d'erreur remontée
	_ = json.Unmarshal([]byte(data), dest)
}

func (s *RedisStore) Write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
