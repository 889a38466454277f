package handler

import (
	"rec-go/internal/dto"
	"rec-go/internal/models"
	"rec-go/internal/service"
	"rec-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RelationshipHandler 关系标记处理器
type RelationshipHandler struct {
	relationshipService *service.RelationshipService
	logger              *logrus.Logger
}

// NewRelationshipHandler 创建关系标记处理器
func NewRelationshipHandler(relationshipService *service.RelationshipService, logger *logrus.Logger) *RelationshipHandler {
	return &RelationshipHandler{
		relationshipService: relationshipService,
		logger:              logger,
	}
}

// SetStatus 设置记录的关系状态
func (h *RelationshipHandler) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.relationshipService.SetStatus(id, req.Status); err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessWithMessage(c, "关系状态已更新", gin.H{"id": id, "relationship_status": req.Status})
}

// Revert 恢复为普通状态
func (h *RelationshipHandler) Revert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.relationshipService.RevertToRegular(id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessWithMessage(c, "已恢复为普通状态", gin.H{"id": id, "relationship_status": models.StatusRegular})
}

// ListByStatus 获取指定关系状态的记录
func (h *RelationshipHandler) ListByStatus(c *gin.Context) {
	status := models.RelationshipStatus(c.Param("status"))

	records, err := h.relationshipService.ListByStatus(status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, dto.NewRecordListResponse(records))
}
