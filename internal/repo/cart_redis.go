package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/redis/go-redis/v9"
)

type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore хранит корзину пользователя одним JSON-значением с TTL,
// продлеваемым при каждом сохранении.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *redisCartStore {
	return &redisCartStore{client: client, ttl: ttl}
}

type cartDocument struct {
	Items []entities.CartLine `json:"items"`
}

// GetCart возвращает пустую корзину, если ее еще нет.
func (s *redisCartStore) GetCart(ctx context.Context, userID string) (entities.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Cart{UserID: userID, Items: []entities.CartLine{}}, nil
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("redis get cart: %w", err)
	}

	var doc cartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return entities.Cart{}, fmt.Errorf("unmarshal cart: %w", err)
	}
	if doc.Items == nil {
		doc.Items = []entities.CartLine{}
	}
	return entities.Cart{UserID: userID, Items: doc.Items}, nil
}

func (s *redisCartStore) SaveCart(ctx context.Context, cart entities.Cart) error {
	items := cart.Items
	if items == nil {
		items = []entities.CartLine{}
	}
	data, err := json.Marshal(cartDocument{Items: items})
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

func cartKey(userID string) string {
	return "cart:" + userID
}
