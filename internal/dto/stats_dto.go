package dto

import "rec-go/internal/models"

// RelationshipSummary 关系状态汇总，四种状态都会出现
type RelationshipSummary struct {
	Total  int64                               `json:"total"`
	Counts map[models.RelationshipStatus]int64 `json:"counts"`
}

// RelationshipStatsResponse 关系统计响应
type RelationshipStatsResponse struct {
	Stats   []models.StatusCount `json:"stats"`
	Summary RelationshipSummary  `json:"summary"`
}

// FriendEnemyRatio 批次的朋友/敌人比例
type FriendEnemyRatio struct {
	BatchID   uint   `json:"batch_id"`
	BatchName string `json:"batch_name"`
	Friends   int64  `json:"friends"`
	Enemies   int64  `json:"enemies"`
	// 没有敌人时为 null，表示无穷大
	Ratio *float64 `json:"ratio"`
}

// BatchRelationshipStatsResponse 批次关系统计响应
type BatchRelationshipStatsResponse struct {
	Stats  []models.BatchStatusCount `json:"stats"`
	Ratios []FriendEnemyRatio        `json:"ratios"`
}
