package dto

import (
	"time"

	"rec-go/internal/models"
)

// CreateBatchRequest 创建批次请求
type CreateBatchRequest struct {
	Name string `json:"name" binding:"required,max=255" validate:"required,max=255"`
}

// CreateBatchResponse 创建批次响应
type CreateBatchResponse struct {
	ID uint `json:"id"`
}

// AddRecordRequest 添加记录请求
type AddRecordRequest struct {
	BatchID  uint              `json:"batch_id" binding:"required"`
	FileName string            `json:"file_name" binding:"max=255"`
	Fields   map[string]string `json:"fields"`
}

// UpdateRecordRequest 更新记录请求（整行覆盖）
type UpdateRecordRequest struct {
	Fields             map[string]string          `json:"fields"`
	RelationshipStatus *models.RelationshipStatus `json:"relationship_status" binding:"omitempty,relationship_status"`
}

// RecordRow 表格中的一行，用于批量编辑对比
type RecordRow struct {
	ID                 uint                      `json:"id" binding:"required"`
	Fields             map[string]string         `json:"fields"`
	RelationshipStatus models.RelationshipStatus `json:"relationship_status"`
}

// NewRecordRow 由记录生成表格行
func NewRecordRow(r *models.Record) RecordRow {
	fields := make(map[string]string, len(models.RecordFields))
	for _, f := range models.RecordFields {
		fields[f] = r.FieldValue(f)
	}
	return RecordRow{
		ID:                 r.ID,
		Fields:             fields,
		RelationshipStatus: r.RelationshipStatus,
	}
}

// BulkEditRequest 批量编辑请求
type BulkEditRequest struct {
	Original []RecordRow `json:"original" binding:"required,dive"`
	Edited   []RecordRow `json:"edited" binding:"required,dive"`
}

// BulkEditResult 批量编辑结果
type BulkEditResult struct {
	Changed    int    `json:"changed"`
	Applied    int    `json:"applied"`
	AppliedIDs []uint `json:"applied_ids"`
}

// SetStatusRequest 设置关系状态请求
type SetStatusRequest struct {
	Status models.RelationshipStatus `json:"status" binding:"required,relationship_status"`
}

// AdvancedSearchRequest 高级搜索请求
type AdvancedSearchRequest struct {
	Criteria map[string]string `json:"criteria"`
}

// RecordListResponse 记录列表响应
type RecordListResponse struct {
	Records []models.Record `json:"records"`
	Total   int             `json:"total"`
}

// NewRecordListResponse 创建记录列表响应
func NewRecordListResponse(records []models.Record) RecordListResponse {
	return RecordListResponse{Records: records, Total: len(records)}
}

// ClearRequestResponse 清空数据确认令牌
type ClearRequestResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ClearConfirmRequest 确认清空数据请求
type ClearConfirmRequest struct {
	Token string `json:"token" binding:"required"`
}

// UploadedFile 上传文件的导入结果
type UploadedFile struct {
	FileName string `json:"file_name"`
	Records  int    `json:"records"`
}

// UploadResponse 上传响应
type UploadResponse struct {
	BatchID   uint           `json:"batch_id"`
	BatchName string         `json:"batch_name"`
	Files     []UploadedFile `json:"files"`
	Total     int            `json:"total"`
}
