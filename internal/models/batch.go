package models

import (
	"time"
)

// Batch 上传批次模型
type Batch struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// 关联，删除批次时级联删除记录
	Records []Record `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"records,omitempty"`
}

// TableName 指定表名
func (Batch) TableName() string {
	return "batches"
}
