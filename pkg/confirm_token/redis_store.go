package confirm_token

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// consumeScript 原子地读取并删除令牌
// 返回1表示令牌存在且已被消费，返回0表示不存在或已过期
var consumeScript = redis.NewScript(
	`local v = redis.call('GET', KEYS[1])
	if v then
		redis.call('DEL', KEYS[1])
		return 1
	end
	return 0`,
)

// RedisStore 基于Redis的确认令牌存储，过期由Redis的TTL负责
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore 创建基于Redis的确认令牌存储
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Issue 保存令牌，ttl 后自动失效
func (s *RedisStore) Issue(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.keyPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("保存确认令牌失败: %w", err)
	}
	return nil
}

// Consume 消费令牌，每个令牌只能成功消费一次
func (s *RedisStore) Consume(ctx context.Context, token string) (bool, error) {
	result, err := consumeScript.Run(ctx, s.client, []string{s.keyPrefix + token}).Int()
	if err != nil {
		return false, fmt.Errorf("执行Lua脚本失败: %w", err)
	}
	return result == 1, nil
}
