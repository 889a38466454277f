// Package confirm_token 提供一次性、限时的确认令牌，
// 用于清空数据这类不可撤销操作的二次确认。
package confirm_token

import (
	"context"
	"sync"
	"time"
)

// Store 确认令牌存储
type Store interface {
	// Issue 保存令牌，ttl 后失效
	Issue(ctx context.Context, token string, ttl time.Duration) error
	// Consume 消费令牌，令牌存在且未过期时返回 true，之后令牌失效
	Consume(ctx context.Context, token string) (bool, error)
}

// MemoryStore 进程内的确认令牌存储，未配置Redis时使用
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

// NewMemoryStore 创建进程内确认令牌存储
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock 使用指定时钟创建存储
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]time.Time),
		now:    now,
	}
}

// Issue 保存令牌
func (s *MemoryStore) Issue(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// 顺便清理过期令牌
	for t, expiresAt := range s.tokens {
		if !now.Before(expiresAt) {
			delete(s.tokens, t)
		}
	}
	s.tokens[token] = now.Add(ttl)
	return nil
}

// Consume 消费令牌
func (s *MemoryStore) Consume(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	delete(s.tokens, token)
	return s.now().Before(expiresAt), nil
}
