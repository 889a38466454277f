package repository

import (
	"rec-go/internal/models"

	"gorm.io/gorm"
)

// BatchRepository 批次数据访问层
type BatchRepository struct {
	db *gorm.DB
}

// NewBatchRepository 创建批次Repository
func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// Create 创建批次
func (r *BatchRepository) Create(batch *models.Batch) error {
	return r.db.Create(batch).Error
}

// CreateWithRecords 在一个事务中创建批次并写入记录，任一步失败都整体回滚
func (r *BatchRepository) CreateWithRecords(batch *models.Batch, records []models.Record) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batch).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		for i := range records {
			records[i].BatchID = batch.ID
		}
		return tx.CreateInBatches(records, 500).Error
	})
}

// GetByID 根据ID获取批次
func (r *BatchRepository) GetByID(id uint) (*models.Batch, error) {
	var batch models.Batch
	err := r.db.First(&batch, id).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// List 获取全部批次（最新的在前）
func (r *BatchRepository) List() ([]models.Batch, error) {
	batches := []models.Batch{}
	err := r.db.Order("created_at DESC").Order("id DESC").Find(&batches).Error
	return batches, err
}
