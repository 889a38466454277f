package models

import (
	"time"
)

// 记录字段名（同时是数据库列名和接口中的键）
const (
	FieldSerialNo    = "ক্রমিক_নং"
	FieldName        = "নাম"
	FieldVoterNo     = "ভোটার_নং"
	FieldFatherName  = "পিতার_নাম"
	FieldMotherName  = "মাতার_নাম"
	FieldOccupation  = "পেশা"
	FieldDateOfBirth = "জন্ম_তারিখ"
	FieldAddress     = "ঠিকানা"
)

// RecordFields 记录的全部文本字段，顺序即导出顺序
var RecordFields = []string{
	FieldSerialNo,
	FieldName,
	FieldVoterNo,
	FieldFatherName,
	FieldMotherName,
	FieldOccupation,
	FieldDateOfBirth,
	FieldAddress,
}

// IsRecordField 判断是否为记录字段
func IsRecordField(name string) bool {
	for _, f := range RecordFields {
		if f == name {
			return true
		}
	}
	return false
}

// RelationshipStatus 记录的关系状态
type RelationshipStatus string

const (
	StatusRegular   RelationshipStatus = "Regular"
	StatusFriend    RelationshipStatus = "Friend"
	StatusEnemy     RelationshipStatus = "Enemy"
	StatusConnected RelationshipStatus = "Connected"
)

// AllStatuses 全部关系状态
var AllStatuses = []RelationshipStatus{StatusRegular, StatusFriend, StatusEnemy, StatusConnected}

// Valid 是否为合法状态
func (s RelationshipStatus) Valid() bool {
	switch s {
	case StatusRegular, StatusFriend, StatusEnemy, StatusConnected:
		return true
	}
	return false
}

// Record 人员记录模型
type Record struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	BatchID     uint    `gorm:"not null;index" json:"batch_id"`
	FileName    string  `gorm:"size:255;not null;default:''" json:"file_name"`
	SerialNo    *string `gorm:"column:ক্রমিক_নং;size:50" json:"ক্রমিক_নং"`
	Name        *string `gorm:"column:নাম;type:text" json:"নাম"`
	VoterNo     *string `gorm:"column:ভোটার_নং;size:100" json:"ভোটার_নং"`
	FatherName  *string `gorm:"column:পিতার_নাম;type:text" json:"পিতার_নাম"`
	MotherName  *string `gorm:"column:মাতার_নাম;type:text" json:"মাতার_নাম"`
	Occupation  *string `gorm:"column:পেশা;type:text" json:"পেশা"`
	DateOfBirth *string `gorm:"column:জন্ম_তারিখ;size:100" json:"জন্ম_তারিখ"`
	Address     *string `gorm:"column:ঠিকানা;type:text" json:"ঠিকানা"`

	RelationshipStatus RelationshipStatus `gorm:"size:20;not null;default:'Regular';index" json:"relationship_status"`
	CreatedAt          time.Time          `gorm:"index" json:"created_at"`

	// 只读，查询时由 batches.name 联表填充
	BatchName string `gorm:"->;-:migration;column:batch_name" json:"batch_name"`
}

// TableName 指定表名
func (Record) TableName() string {
	return "records"
}

// FieldValue 按字段名取值，NULL 返回空字符串
func (r *Record) FieldValue(name string) string {
	var v *string
	switch name {
	case FieldSerialNo:
		v = r.SerialNo
	case FieldName:
		v = r.Name
	case FieldVoterNo:
		v = r.VoterNo
	case FieldFatherName:
		v = r.FatherName
	case FieldMotherName:
		v = r.MotherName
	case FieldOccupation:
		v = r.Occupation
	case FieldDateOfBirth:
		v = r.DateOfBirth
	case FieldAddress:
		v = r.Address
	}
	if v == nil {
		return ""
	}
	return *v
}

// SetFields 按字段名赋值，缺失的字段保持 NULL
func (r *Record) SetFields(fields map[string]string) {
	get := func(name string) *string {
		if v, ok := fields[name]; ok {
			return &v
		}
		return nil
	}
	r.SerialNo = get(FieldSerialNo)
	r.Name = get(FieldName)
	r.VoterNo = get(FieldVoterNo)
	r.FatherName = get(FieldFatherName)
	r.MotherName = get(FieldMotherName)
	r.Occupation = get(FieldOccupation)
	r.DateOfBirth = get(FieldDateOfBirth)
	r.Address = get(FieldAddress)
}
