package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "amenity:user:"

// CachedClient кэш справочника пользователей в Redis на случай недоступности UserService
// Имя и квартира копируются в бронирование, поэтому сначала всегда спрашиваем UserService,
// а сохранённая копия отдаётся только когда он не отвечает
type CachedClient struct {
	next UserGetter
	rdb  redis.Cmdable
	ttl  time.Duration
	log  Logger
}

// NewCachedClient оборачивает источник пользователей кэшем
func NewCachedClient(next UserGetter, rdb redis.Cmdable, ttl time.Duration, log Logger) *CachedClient {
	return &CachedClient{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log,
	}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, userID)
}

// GetUser возвращает актуального пользователя из UserService и обновляет кэш
// При недоступности UserService отдаёт последнюю сохранённую копию
func (c *CachedClient) GetUser(ctx context.Context, userID int64) (*User, error) {
	key := cacheKey(userID)

	user, err := c.next.GetUser(ctx, userID)
	if err == nil {
		c.store(ctx, key, user)
		return user, nil
	}

	if errors.Is(err, ErrUserNotFound) {
		if delErr := c.rdb.Del(ctx, key).Err(); delErr != nil {
			c.log.Warn("GetUser: redis del %s failed: %v", key, delErr)
		}
		return nil, err
	}

	cached, ok := c.load(ctx, key)
	if !ok {
		return nil, err
	}
	c.log.Warn("GetUser: user service failed (%v), serving cached user=%d", err, userID)
	return cached, nil
}

func (c *CachedClient) load(ctx context.Context, key string) (*User, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("GetUser: redis get %s failed: %v", key, err)
		}
		return nil, false
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		c.log.Warn("GetUser: corrupted cache entry %s", key)
		return nil, false
	}
	return &user, true
}

func (c *CachedClient) store(ctx context.Context, key string, user *User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("GetUser: redis set %s failed: %v", key, err)
	}
}
