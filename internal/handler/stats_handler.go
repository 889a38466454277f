package handler

import (
	"rec-go/internal/service"
	"rec-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsHandler 统计处理器
type StatsHandler struct {
	statsService *service.StatsService
	logger       *logrus.Logger
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(statsService *service.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// OccupationStats 职业分布，可按 batch_id 过滤
func (h *StatsHandler) OccupationStats(c *gin.Context) {
	batchID, ok := parseOptionalBatchID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.OccupationStats(batchID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, stats)
}

// RelationshipStats 关系状态统计
func (h *StatsHandler) RelationshipStats(c *gin.Context) {
	resp, err := h.statsService.RelationshipSummary()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, resp)
}

// BatchRelationshipStats 按批次的关系状态统计
func (h *StatsHandler) BatchRelationshipStats(c *gin.Context) {
	resp, err := h.statsService.FriendEnemyRatios()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, resp)
}
