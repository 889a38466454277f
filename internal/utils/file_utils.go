package utils

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

const utf8BOM = "\xEF\xBB\xBF"

// Row 解析后的一行数据，键为规范化后的列名
type Row map[string]string

// NormalizeHeader 规范化列名: 去掉BOM和首尾空白，空格替换为下划线
// "ক্রমিক নং" -> "ক্রমিক_নং"
func NormalizeHeader(header string) string {
	header = strings.TrimPrefix(header, utf8BOM)
	return strings.Join(strings.Fields(header), "_")
}

// DetectContentType 根据文件名和内容检测类型
func DetectContentType(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return "text/csv"
	case ".jsonl":
		return "application/x-jsonlines"
	case ".json":
		return "application/json"
	}

	trimmed := strings.TrimSpace(strings.TrimPrefix(string(data), utf8BOM))
	if strings.HasPrefix(trimmed, "[") {
		return "application/json"
	}
	if strings.HasPrefix(trimmed, "{") {
		return "application/x-jsonlines"
	}
	return "text/csv"
}

// ParseRows 按内容类型解析上传文件
func ParseRows(filename string, data []byte) ([]Row, error) {
	switch DetectContentType(filename, data) {
	case "application/json":
		return ParseJSONArray(data)
	case "application/x-jsonlines":
		return ParseJSONL(data)
	default:
		return ParseCSV(data)
	}
}

// ParseCSV 解析CSV格式，第一行是标题
func ParseCSV(data []byte) ([]Row, error) {
	text := strings.TrimPrefix(string(data), utf8BOM)
	reader := csv.NewReader(strings.NewReader(text))
	// 允许行的列数不一致
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取CSV表头失败: %w", err)
	}
	for i, h := range headers {
		headers[i] = NormalizeHeader(h)
	}

	rows := []Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取CSV行失败: %w", err)
		}

		row := make(Row, len(headers))
		blank := true
		for j, value := range record {
			if j >= len(headers) {
				break
			}
			value = strings.TrimSpace(value)
			if value != "" {
				blank = false
			}
			row[headers[j]] = value
		}
		// 跳过空行
		if blank {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ParseJSONL 解析JSONL格式
func ParseJSONL(data []byte) ([]Row, error) {
	rows := []Row{}
	lines := strings.Split(strings.TrimPrefix(string(data), utf8BOM), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item map[string]interface{}
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			return nil, fmt.Errorf("第%d行解析失败: %w", i+1, err)
		}
		rows = append(rows, toRow(item))
	}
	return rows, nil
}

// ParseJSONArray 解析JSON数组格式
func ParseJSONArray(data []byte) ([]Row, error) {
	var items []map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, []byte(utf8BOM))))
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("解析JSON失败: %w", err)
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, toRow(item))
	}
	return rows, nil
}

// toRow 把JSON对象转换为行，非字符串值按文本保存
func toRow(item map[string]interface{}) Row {
	row := make(Row, len(item))
	for key, value := range item {
		if value == nil {
			continue
		}
		var text string
		switch v := value.(type) {
		case string:
			text = v
		case float64:
			text = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			text = fmt.Sprintf("%v", v)
		}
		row[NormalizeHeader(key)] = strings.TrimSpace(text)
	}
	return row
}
