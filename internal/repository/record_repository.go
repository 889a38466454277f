package repository

import (
	"rec-go/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordRepository 人员记录数据访问层
type RecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository 创建记录Repository
func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// QuoteIdent 给列名加双引号，postgres和sqlite通用
func QuoteIdent(name string) string {
	return `"` + name + `"`
}

// enriched 联表带出批次名
func (r *RecordRepository) enriched() *gorm.DB {
	return r.db.Model(&models.Record{}).
		Select("records.*, batches.name AS batch_name").
		Joins("JOIN batches ON batches.id = records.batch_id")
}

// newestFirst 按创建时间倒序，id 区分同一时刻
func newestFirst(q *gorm.DB) *gorm.DB {
	return q.Order("records.created_at DESC").Order("records.id DESC")
}

// Create 创建记录
func (r *RecordRepository) Create(record *models.Record) error {
	return r.db.Create(record).Error
}

// GetByID 根据ID获取记录
func (r *RecordRepository) GetByID(id uint) (*models.Record, error) {
	var record models.Record
	err := r.enriched().Where("records.id = ?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateColumns 覆盖写入指定列，返回匹配的行数
func (r *RecordRepository) UpdateColumns(id uint, values map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Record{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}

// UpdateStatus 更新关系状态，返回匹配的行数
func (r *RecordRepository) UpdateStatus(id uint, status models.RelationshipStatus) (int64, error) {
	result := r.db.Model(&models.Record{}).Where("id = ?", id).Update("relationship_status", status)
	return result.RowsAffected, result.Error
}

// ListByBatch 获取批次的记录，batchID 为 nil 时返回全部记录
func (r *RecordRepository) ListByBatch(batchID *uint) ([]models.Record, error) {
	records := []models.Record{}
	query := r.enriched()
	if batchID != nil {
		query = query.Where("records.batch_id = ?", *batchID)
	}
	err := newestFirst(query).Find(&records).Error
	return records, err
}

// ListByFile 获取批次内某个文件的记录
func (r *RecordRepository) ListByFile(batchID uint, fileName string) ([]models.Record, error) {
	records := []models.Record{}
	err := newestFirst(r.enriched().
		Where("records.batch_id = ? AND records.file_name = ?", batchID, fileName)).
		Find(&records).Error
	return records, err
}

// ListFiles 获取批次内的文件名（去重，按字母排序）
func (r *RecordRepository) ListFiles(batchID uint) ([]string, error) {
	files := []string{}
	err := r.db.Model(&models.Record{}).
		Where("batch_id = ?", batchID).
		Distinct().
		Order("file_name").
		Pluck("file_name", &files).Error
	return files, err
}

// ListByStatus 获取指定关系状态的全部记录
func (r *RecordRepository) ListByStatus(status models.RelationshipStatus) ([]models.Record, error) {
	records := []models.Record{}
	err := newestFirst(r.enriched().
		Where("records.relationship_status = ?", status)).
		Find(&records).Error
	return records, err
}

// Search 按条件查询记录，cond 为 nil 时返回全部记录
func (r *RecordRepository) Search(cond clause.Expression) ([]models.Record, error) {
	records := []models.Record{}
	query := r.enriched()
	if cond != nil {
		query = query.Where(cond)
	}
	err := newestFirst(query).Find(&records).Error
	return records, err
}

// ClearAll 清空全部批次和记录
func (r *RecordRepository) ClearAll() error {
	if models.IsPostgres(r.db) {
		return r.db.Exec("TRUNCATE TABLE records, batches CASCADE").Error
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM records").Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM batches").Error
	})
}

// OccupationStats 按职业统计记录数，batchID 为 nil 时统计全部
func (r *RecordRepository) OccupationStats(batchID *uint) ([]models.OccupationCount, error) {
	stats := []models.OccupationCount{}
	column := QuoteIdent(models.FieldOccupation)
	query := r.db.Model(&models.Record{}).
		Select(column + " AS occupation, COUNT(*) AS count")
	if batchID != nil {
		query = query.Where("batch_id = ?", *batchID)
	}
	err := query.Group(column).Order("count DESC").Scan(&stats).Error
	return stats, err
}

// StatusStats 按关系状态统计记录数
func (r *RecordRepository) StatusStats() ([]models.StatusCount, error) {
	stats := []models.StatusCount{}
	err := r.db.Model(&models.Record{}).
		Select("relationship_status, COUNT(*) AS count").
		Group("relationship_status").
		Order("count DESC").
		Scan(&stats).Error
	return stats, err
}

// BatchStatusStats 按批次和关系状态统计记录数
func (r *RecordRepository) BatchStatusStats() ([]models.BatchStatusCount, error) {
	stats := []models.BatchStatusCount{}
	err := r.db.Model(&models.Record{}).
		Select("batches.id AS batch_id, batches.name AS batch_name, records.relationship_status, COUNT(*) AS count").
		Joins("JOIN batches ON batches.id = records.batch_id").
		Group("batches.id, batches.name, records.relationship_status").
		Order("batches.name, batches.id, records.relationship_status").
		Scan(&stats).Error
	return stats, err
}

// LikeOperator 不区分大小写的子串匹配运算符
// sqlite 的 LIKE 本身对 ASCII 不区分大小写
func (r *RecordRepository) LikeOperator() string {
	if models.IsPostgres(r.db) {
		return "ILIKE"
	}
	return "LIKE"
}

// Migrate 创建或更新表结构
func (r *RecordRepository) Migrate() error {
	return models.AutoMigrate(r.db)
}
