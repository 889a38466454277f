package service

import (
	"context"
	"fmt"
	"time"

	"rec-go/internal/dto"
	"rec-go/pkg/confirm_token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ClearService 清空全部数据，需要先申请确认令牌再确认
type ClearService struct {
	records *RecordService
	tokens  confirm_token.Store
	ttl     time.Duration
	now     func() time.Time
	logger  *logrus.Logger
}

// NewClearService 创建清空数据服务
func NewClearService(records *RecordService, tokens confirm_token.Store, ttl time.Duration, logger *logrus.Logger) *ClearService {
	return &ClearService{
		records: records,
		tokens:  tokens,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// RequestClear 签发一次性确认令牌
func (s *ClearService) RequestClear(ctx context.Context) (*dto.ClearRequestResponse, error) {
	token := uuid.NewString()
	if err := s.tokens.Issue(ctx, token, s.ttl); err != nil {
		return nil, fmt.Errorf("签发确认令牌失败: %w", err)
	}

	s.logger.WithField("ttl", s.ttl.String()).Info("已签发清空数据确认令牌")
	return &dto.ClearRequestResponse{
		Token:     token,
		ExpiresAt: s.now().Add(s.ttl),
	}, nil
}

// ConfirmClear 消费令牌后清空数据，令牌无效时不删除任何数据
func (s *ClearService) ConfirmClear(ctx context.Context, token string) error {
	if token == "" {
		return ErrConfirmationInvalid
	}

	ok, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return fmt.Errorf("校验确认令牌失败: %w", err)
	}
	if !ok {
		return ErrConfirmationInvalid
	}

	return s.records.ClearAllData()
}
