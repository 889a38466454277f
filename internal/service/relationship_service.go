package service

import (
	"fmt"

	"rec-go/internal/models"
	"rec-go/internal/repository"

	"github.com/sirupsen/logrus"
)

// RelationshipService 关系标记服务
type RelationshipService struct {
	recordRepo *repository.RecordRepository
	logger     *logrus.Logger
}

// NewRelationshipService 创建关系标记服务
func NewRelationshipService(recordRepo *repository.RecordRepository, logger *logrus.Logger) *RelationshipService {
	return &RelationshipService{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// SetStatus 设置记录的关系状态，任意状态之间都可以切换
func (s *RelationshipService) SetStatus(recordID uint, status models.RelationshipStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	affected, err := s.recordRepo.UpdateStatus(recordID, status)
	if err != nil {
		return fmt.Errorf("更新关系状态失败: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", ErrRecordNotFound, recordID)
	}

	statusChanges.WithLabelValues(string(status)).Inc()
	s.logger.WithFields(logrus.Fields{
		"record_id": recordID,
		"status":    status,
	}).Info("关系状态已更新")
	return nil
}

// ListByStatus 获取指定状态的全部记录
func (s *RelationshipService) ListByStatus(status models.RelationshipStatus) ([]models.Record, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	records, err := s.recordRepo.ListByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("获取记录失败: %w", err)
	}
	return records, nil
}

// RevertToRegular 恢复为普通状态
func (s *RelationshipService) RevertToRegular(recordID uint) error {
	return s.SetStatus(recordID, models.StatusRegular)
}
