package handler

import (
	"rec-go/internal/dto"
	"rec-go/internal/service"
	"rec-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BatchHandler 批次处理器
type BatchHandler struct {
	recordService *service.RecordService
	logger        *logrus.Logger
}

// NewBatchHandler 创建批次处理器
func NewBatchHandler(recordService *service.RecordService, logger *logrus.Logger) *BatchHandler {
	return &BatchHandler{
		recordService: recordService,
		logger:        logger,
	}
}

// ListBatches 获取全部批次
func (h *BatchHandler) ListBatches(c *gin.Context) {
	batches, err := h.recordService.GetAllBatches()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, batches)
}

// CreateBatch 创建批次
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	id, err := h.recordService.CreateBatch(req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessWithMessage(c, "批次已创建", dto.CreateBatchResponse{ID: id})
}

// GetBatchRecords 获取批次的记录
func (h *BatchHandler) GetBatchRecords(c *gin.Context) {
	batchID, ok := parseIDParam(c, "batch_id")
	if !ok {
		return
	}

	records, err := h.recordService.GetBatchRecords(&batchID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, dto.NewRecordListResponse(records))
}

// GetBatchFiles 获取批次中的文件名
func (h *BatchHandler) GetBatchFiles(c *gin.Context) {
	batchID, ok := parseIDParam(c, "batch_id")
	if !ok {
		return
	}

	files, err := h.recordService.GetBatchFiles(batchID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, files)
}

// GetFileRecords 获取批次中某个文件的记录
func (h *BatchHandler) GetFileRecords(c *gin.Context) {
	batchID, ok := parseIDParam(c, "batch_id")
	if !ok {
		return
	}
	fileName := c.Query("file_name")
	if fileName == "" {
		utils.BadRequest(c, "缺少file_name参数")
		return
	}

	records, err := h.recordService.GetFileRecords(batchID, fileName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, dto.NewRecordListResponse(records))
}
