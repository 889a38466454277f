package service

import (
	"rec-go/internal/dto"
	"rec-go/internal/models"
)

// DiffRecords 对比表格编辑前后的行，返回需要写回的行
// 以 id 对应；原始数据中没有的 id 忽略；结果保持编辑后的顺序
// 编辑行未给出关系状态时沿用原值
func DiffRecords(original, edited []dto.RecordRow) []dto.RecordRow {
	byID := make(map[uint]dto.RecordRow, len(original))
	for _, row := range original {
		byID[row.ID] = row
	}

	changed := []dto.RecordRow{}
	for _, row := range edited {
		before, ok := byID[row.ID]
		if !ok {
			continue
		}
		if row.RelationshipStatus == "" {
			row.RelationshipStatus = before.RelationshipStatus
		}
		if rowChanged(before, row) {
			changed = append(changed, row)
		}
	}
	return changed
}

// rowChanged 缺失的字段按空字符串比较
func rowChanged(before, after dto.RecordRow) bool {
	if before.RelationshipStatus != after.RelationshipStatus {
		return true
	}
	for _, f := range models.RecordFields {
		if before.Fields[f] != after.Fields[f] {
			return true
		}
	}
	return false
}
