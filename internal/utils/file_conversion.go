package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"rec-go/internal/models"
)

// exportExtraHeaders 导出时附加在字段后的列
var exportExtraHeaders = []string{"batch_name", "file_name", "relationship_status", "created_at"}

// ConvertRecordsToCSV 将记录导出为CSV
// 带BOM，表格软件才能正确识别UTF-8编码的孟加拉文
func ConvertRecordsToCSV(records []models.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	writer := csv.NewWriter(&buf)

	headers := append([]string{"id"}, models.RecordFields...)
	headers = append(headers, exportExtraHeaders...)
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("写入CSV标题失败: %w", err)
	}

	for i := range records {
		r := &records[i]
		row := make([]string, 0, len(headers))
		row = append(row, fmt.Sprintf("%d", r.ID))
		for _, f := range models.RecordFields {
			row = append(row, r.FieldValue(f))
		}
		row = append(row,
			r.BatchName,
			r.FileName,
			string(r.RelationshipStatus),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		)
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("写入CSV数据失败: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV写入失败: %w", err)
	}

	return buf.Bytes(), nil
}
