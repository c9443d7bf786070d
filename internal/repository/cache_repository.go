package repository

import (
	"context"
	"encoding/json"
	"errors"
	"filelink/config"
	"filelink/internal/model"
	"filelink/internal/util"
	"fmt"
	"github.com/redis/go-redis/v9"
	"log"
	"time"
)

var errShareInvalidated = errors.New("ссылка инвалидирована")

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

// SetShare : кэширует ссылку, прочитанную из БД. Пока стоит метка инвалидации
// (или она появилась во время WATCH), запись пропускается
func (r *CacheRepository) SetShare(ctx context.Context, share *model.Share) error {
	data, err := json.Marshal(share)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации ссылки", err)
	}

	key := r.key(share.Slug)
	invalidatedKey := r.invalidatedKey(share.Slug)

	err = r.client.Client.Watch(ctx, func(tx *redis.Tx) error {
		invalidated, err := tx.Exists(ctx, invalidatedKey).Result()
		if err != nil {
			return err
		}
		if invalidated > 0 {
			return errShareInvalidated
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}, invalidatedKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errShareInvalidated), errors.Is(err, redis.TxFailedErr):
		log.Printf("[CacheRepo] ссылка %s недавно изменена, кэш не заполняется", share.Slug)
		return nil
	default:
		return util.LogError("[CacheRepo] ошибка сохранения в Redis", err)
	}
}

// GetShare : nil, nil если ссылки нет в кэше
func (r *CacheRepository) GetShare(ctx context.Context, slug string) (*model.Share, error) {
	val, err := r.client.Client.Get(ctx, r.key(slug)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] ошибка получения ссылки из Redis", err)
	}

	var share model.Share
	if err := json.Unmarshal([]byte(val), &share); err != nil {
		return nil, util.LogError("[CacheRepo] ошибка десериализации ссылки из кэша", err)
	}
	return &share, nil
}

// DeleteShare : удаляет ссылку из кэша и ставит метку инвалидации на время TTL кэша
func (r *CacheRepository) DeleteShare(ctx context.Context, slug string) error {
	_, err := r.client.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.invalidatedKey(slug), 1, r.ttl)
		pipe.Del(ctx, r.key(slug))
		return nil
	})
	if err != nil {
		return util.LogError("[CacheRepo] ошибка удаления ссылки из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(slug string) string {
	return fmt.Sprintf("share:%s", slug)
}

func (r *CacheRepository) invalidatedKey(slug string) string {
	return fmt.Sprintf("share:invalidated:%s", slug)
}
