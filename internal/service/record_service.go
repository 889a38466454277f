package service

import (
	"errors"
	"fmt"
	"strings"

	"rec-go/internal/dto"
	"rec-go/internal/models"
	"rec-go/internal/repository"
	"rec-go/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordService 批次与记录服务
type RecordService struct {
	batchRepo  *repository.BatchRepository
	recordRepo *repository.RecordRepository
	logger     *logrus.Logger
}

// NewRecordService 创建记录服务
func NewRecordService(batchRepo *repository.BatchRepository, recordRepo *repository.RecordRepository, logger *logrus.Logger) *RecordService {
	return &RecordService{
		batchRepo:  batchRepo,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// EnsureSchema 创建表结构，可重复执行
func (s *RecordService) EnsureSchema() error {
	if err := s.recordRepo.Migrate(); err != nil {
		return fmt.Errorf("创建表结构失败: %w", err)
	}
	return nil
}

// CreateBatch 创建批次，名称可以重复
func (s *RecordService) CreateBatch(name string) (uint, error) {
	req := dto.CreateBatchRequest{Name: strings.TrimSpace(name)}
	if err := utils.ValidateStruct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	batch := &models.Batch{Name: req.Name}
	if err := s.batchRepo.Create(batch); err != nil {
		return 0, fmt.Errorf("创建批次失败: %w", err)
	}
	return batch.ID, nil
}

// ImportBatch 创建批次并写入全部记录，要么全部成功要么什么都不写
func (s *RecordService) ImportBatch(name string, records []models.Record) (uint, error) {
	req := dto.CreateBatchRequest{Name: strings.TrimSpace(name)}
	if err := utils.ValidateStruct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	for i := range records {
		records[i].RelationshipStatus = models.StatusRegular
	}

	batch := &models.Batch{Name: req.Name}
	if err := s.batchRepo.CreateWithRecords(batch, records); err != nil {
		return 0, fmt.Errorf("导入批次失败: %w", err)
	}
	return batch.ID, nil
}

// AddRecord 向批次添加一条记录，未提供的字段保存为 NULL
func (s *RecordService) AddRecord(batchID uint, fileName string, fields map[string]string) (*models.Record, error) {
	if err := checkFieldNames(fields); err != nil {
		return nil, err
	}
	if _, err := s.getBatch(batchID); err != nil {
		return nil, err
	}

	record := &models.Record{
		BatchID:            batchID,
		FileName:           fileName,
		RelationshipStatus: models.StatusRegular,
	}
	record.SetFields(fields)

	if err := s.recordRepo.Create(record); err != nil {
		return nil, fmt.Errorf("添加记录失败: %w", err)
	}
	return record, nil
}

// UpdateRecord 整行覆盖记录的字段，未提供的字段写为空字符串
// status 不为 nil 时在同一条语句中更新关系状态
func (s *RecordService) UpdateRecord(id uint, fields map[string]string, status *models.RelationshipStatus) error {
	if err := checkFieldNames(fields); err != nil {
		return err
	}

	values := make(map[string]interface{}, len(models.RecordFields)+1)
	for _, f := range models.RecordFields {
		values[f] = fields[f]
	}
	if status != nil {
		if !status.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
		}
		values["relationship_status"] = *status
	}

	affected, err := s.recordRepo.UpdateColumns(id, values)
	if err != nil {
		return fmt.Errorf("更新记录失败: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", ErrRecordNotFound, id)
	}
	return nil
}

// GetRecord 获取单条记录
func (s *RecordService) GetRecord(id uint) (*models.Record, error) {
	record, err := s.recordRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("获取记录失败: %w", err)
	}
	return record, nil
}

// GetAllBatches 获取全部批次，最新的在前
func (s *RecordService) GetAllBatches() ([]models.Batch, error) {
	batches, err := s.batchRepo.List()
	if err != nil {
		return nil, fmt.Errorf("获取批次列表失败: %w", err)
	}
	return batches, nil
}

// GetBatchRecords 获取批次的记录，batchID 为 nil 时返回全部
func (s *RecordService) GetBatchRecords(batchID *uint) ([]models.Record, error) {
	records, err := s.recordRepo.ListByBatch(batchID)
	if err != nil {
		return nil, fmt.Errorf("获取记录失败: %w", err)
	}
	return records, nil
}

// GetBatchFiles 获取批次中的文件名
func (s *RecordService) GetBatchFiles(batchID uint) ([]string, error) {
	files, err := s.recordRepo.ListFiles(batchID)
	if err != nil {
		return nil, fmt.Errorf("获取文件列表失败: %w", err)
	}
	return files, nil
}

// GetFileRecords 获取批次中某个文件的记录
func (s *RecordService) GetFileRecords(batchID uint, fileName string) ([]models.Record, error) {
	records, err := s.recordRepo.ListByFile(batchID, fileName)
	if err != nil {
		return nil, fmt.Errorf("获取文件记录失败: %w", err)
	}
	return records, nil
}

// ClearAllData 删除全部批次和记录，调用方负责确认
func (s *RecordService) ClearAllData() error {
	if err := s.recordRepo.ClearAll(); err != nil {
		return fmt.Errorf("清空数据失败: %w", err)
	}
	clearAllTotal.Inc()
	s.logger.Info("已清空全部批次和记录")
	return nil
}

// ApplyBulkEdit 把表格编辑结果写回数据库，只更新有变化的行
// 遇到第一个错误即停止，已写入的行不会回滚
func (s *RecordService) ApplyBulkEdit(original, edited []dto.RecordRow) (*dto.BulkEditResult, error) {
	changed := DiffRecords(original, edited)
	result := &dto.BulkEditResult{
		Changed:    len(changed),
		AppliedIDs: []uint{},
	}

	for _, row := range changed {
		var status *models.RelationshipStatus
		if row.RelationshipStatus != "" {
			st := row.RelationshipStatus
			status = &st
		}
		if err := s.UpdateRecord(row.ID, row.Fields, status); err != nil {
			return result, fmt.Errorf("已更新%d条，记录 %d 更新失败: %w", result.Applied, row.ID, err)
		}
		result.Applied++
		result.AppliedIDs = append(result.AppliedIDs, row.ID)
	}

	s.logger.WithFields(logrus.Fields{
		"changed": result.Changed,
		"applied": result.Applied,
	}).Info("批量编辑完成")
	return result, nil
}

// ExportCSV 导出记录为CSV，batchID 为 nil 时导出全部
func (s *RecordService) ExportCSV(batchID *uint) ([]byte, error) {
	records, err := s.GetBatchRecords(batchID)
	if err != nil {
		return nil, err
	}
	return utils.ConvertRecordsToCSV(records)
}

func (s *RecordService) getBatch(id uint) (*models.Batch, error) {
	batch, err := s.batchRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrBatchNotFound, id)
		}
		return nil, fmt.Errorf("获取批次失败: %w", err)
	}
	return batch, nil
}

// checkFieldNames 字段名必须是记录字段之一
func checkFieldNames(fields map[string]string) error {
	for name := range fields {
		if !models.IsRecordField(name) {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	return nil
}
