package handler

import (
	"rec-go/internal/dto"
	"rec-go/internal/service"
	"rec-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SearchHandler 搜索处理器
type SearchHandler struct {
	searchService *service.SearchService
	logger        *logrus.Logger
}

// NewSearchHandler 创建搜索处理器
func NewSearchHandler(searchService *service.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search 简单搜索 ?q=
func (h *SearchHandler) Search(c *gin.Context) {
	records, err := h.searchService.SearchSimple(c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, dto.NewRecordListResponse(records))
}

// SearchAdvanced 多字段搜索
func (h *SearchHandler) SearchAdvanced(c *gin.Context) {
	var req dto.AdvancedSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	records, err := h.searchService.SearchAdvanced(req.Criteria)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, dto.NewRecordListResponse(records))
}
