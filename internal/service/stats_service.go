package service

import (
	"fmt"

	"rec-go/internal/dto"
	"rec-go/internal/models"
	"rec-go/internal/repository"
)

// StatsService 统计服务，只读
type StatsService struct {
	recordRepo *repository.RecordRepository
}

// NewStatsService 创建统计服务
func NewStatsService(recordRepo *repository.RecordRepository) *StatsService {
	return &StatsService{recordRepo: recordRepo}
}

// OccupationStats 职业分布，batchID 为 nil 时统计全部批次
func (s *StatsService) OccupationStats(batchID *uint) ([]models.OccupationCount, error) {
	stats, err := s.recordRepo.OccupationStats(batchID)
	if err != nil {
		return nil, fmt.Errorf("统计职业失败: %w", err)
	}
	return stats, nil
}

// RelationshipStats 各关系状态的记录数
func (s *StatsService) RelationshipStats() ([]models.StatusCount, error) {
	stats, err := s.recordRepo.StatusStats()
	if err != nil {
		return nil, fmt.Errorf("统计关系状态失败: %w", err)
	}
	return stats, nil
}

// BatchRelationshipStats 按批次统计各关系状态的记录数
func (s *StatsService) BatchRelationshipStats() ([]models.BatchStatusCount, error) {
	stats, err := s.recordRepo.BatchStatusStats()
	if err != nil {
		return nil, fmt.Errorf("按批次统计关系状态失败: %w", err)
	}
	return stats, nil
}

// RelationshipSummary 汇总关系统计，四种状态都有值
func (s *StatsService) RelationshipSummary() (*dto.RelationshipStatsResponse, error) {
	stats, err := s.RelationshipStats()
	if err != nil {
		return nil, err
	}
	return &dto.RelationshipStatsResponse{
		Stats:   stats,
		Summary: SummarizeRelationships(stats),
	}, nil
}

// FriendEnemyRatios 按批次统计并计算朋友/敌人比例
func (s *StatsService) FriendEnemyRatios() (*dto.BatchRelationshipStatsResponse, error) {
	stats, err := s.BatchRelationshipStats()
	if err != nil {
		return nil, err
	}
	return &dto.BatchRelationshipStatsResponse{
		Stats:  stats,
		Ratios: ComputeFriendEnemyRatios(stats),
	}, nil
}

// SummarizeRelationships 计算总数和每种状态的数量
func SummarizeRelationships(stats []models.StatusCount) dto.RelationshipSummary {
	summary := dto.RelationshipSummary{
		Counts: make(map[models.RelationshipStatus]int64, len(models.AllStatuses)),
	}
	for _, st := range models.AllStatuses {
		summary.Counts[st] = 0
	}
	for _, sc := range stats {
		summary.Counts[sc.RelationshipStatus] += sc.Count
		summary.Total += sc.Count
	}
	return summary
}

// ComputeFriendEnemyRatios 只包含至少有一个朋友的批次
// 没有敌人时比例为 nil，表示无穷大
func ComputeFriendEnemyRatios(stats []models.BatchStatusCount) []dto.FriendEnemyRatio {
	ratios := []dto.FriendEnemyRatio{}
	index := make(map[uint]int)
	for _, sc := range stats {
		i, ok := index[sc.BatchID]
		if !ok {
			i = len(ratios)
			index[sc.BatchID] = i
			ratios = append(ratios, dto.FriendEnemyRatio{
				BatchID:   sc.BatchID,
				BatchName: sc.BatchName,
			})
		}
		switch sc.RelationshipStatus {
		case models.StatusFriend:
			ratios[i].Friends += sc.Count
		case models.StatusEnemy:
			ratios[i].Enemies += sc.Count
		}
	}

	result := []dto.FriendEnemyRatio{}
	for _, r := range ratios {
		if r.Friends == 0 {
			continue
		}
		if r.Enemies > 0 {
			ratio := float64(r.Friends) / float64(r.Enemies)
			r.Ratio = &ratio
		}
		result = append(result, r)
	}
	return result
}
