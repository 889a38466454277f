package handler

import (
	"fmt"
	"time"

	"rec-go/internal/dto"
	"rec-go/internal/service"
	"rec-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RecordHandler 记录处理器
type RecordHandler struct {
	recordService *service.RecordService
	logger        *logrus.Logger
}

// NewRecordHandler 创建记录处理器
func NewRecordHandler(recordService *service.RecordService, logger *logrus.Logger) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		logger:        logger,
	}
}

// ListRecords 获取记录，可按 batch_id 过滤
func (h *RecordHandler) ListRecords(c *gin.Context) {
	batchID, ok := parseOptionalBatchID(c)
	if !ok {
		return
	}

	records, err := h.recordService.GetBatchRecords(batchID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, dto.NewRecordListResponse(records))
}

// AddRecord 添加记录
func (h *RecordHandler) AddRecord(c *gin.Context) {
	var req dto.AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	record, err := h.recordService.AddRecord(req.BatchID, req.FileName, req.Fields)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessWithMessage(c, "记录已添加", record)
}

// GetRecord 获取单条记录
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.recordService.GetRecord(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, record)
}

// UpdateRecord 整行更新记录
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.recordService.UpdateRecord(id, req.Fields, req.RelationshipStatus); err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessWithMessage(c, "记录已更新", gin.H{"success": true})
}

// BulkEdit 提交表格编辑结果，只写回有变化的行
func (h *RecordHandler) BulkEdit(c *gin.Context) {
	var req dto.BulkEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	result, err := h.recordService.ApplyBulkEdit(req.Original, req.Edited)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessWithMessage(c, fmt.Sprintf("已更新%d条记录", result.Applied), result)
}

// ExportRecords 导出记录为CSV
func (h *RecordHandler) ExportRecords(c *gin.Context) {
	batchID, ok := parseOptionalBatchID(c)
	if !ok {
		return
	}

	data, err := h.recordService.ExportCSV(batchID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("records_%s.csv", time.Now().Format("20060102_150405"))
	if batchID != nil {
		filename = fmt.Sprintf("batch_%d_%s.csv", *batchID, time.Now().Format("20060102_150405"))
	}
	utils.Attachment(c, filename, "text/csv; charset=utf-8", data)
}
