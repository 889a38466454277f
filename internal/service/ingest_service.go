package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"rec-go/internal/dto"
	"rec-go/internal/models"
	"rec-go/internal/utils"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// UploadFile 上传的单个文件
type UploadFile struct {
	Name    string
	Content []byte
}

// IngestService 上传文件导入服务
type IngestService struct {
	records *RecordService
	logger  *logrus.Logger
}

// NewIngestService 创建导入服务
func NewIngestService(records *RecordService, logger *logrus.Logger) *IngestService {
	return &IngestService{
		records: records,
		logger:  logger,
	}
}

// parsedFile 解析后待写入的文件
type parsedFile struct {
	name string
	rows []map[string]string
}

// Ingest 创建一个批次并导入全部文件
// 先并发解析所有文件，再在一个事务中写入批次和记录，任何一步失败都不会留下数据
func (s *IngestService) Ingest(ctx context.Context, batchName string, files []UploadFile) (*dto.UploadResponse, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: 没有上传文件", ErrValidation)
	}

	parsed, err := parseFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	batchName = strings.TrimSpace(batchName)
	uploaded := make([]dto.UploadedFile, 0, len(parsed))
	var records []models.Record
	for _, pf := range parsed {
		for _, fields := range pf.rows {
			record := models.Record{FileName: pf.name}
			record.SetFields(fields)
			records = append(records, record)
		}
		uploaded = append(uploaded, dto.UploadedFile{FileName: pf.name, Records: len(pf.rows)})
	}

	batchID, err := s.records.ImportBatch(batchName, records)
	if err != nil {
		return nil, err
	}

	resp := &dto.UploadResponse{
		BatchID:   batchID,
		BatchName: batchName,
		Files:     uploaded,
		Total:     len(records),
	}

	recordsIngested.Add(float64(resp.Total))
	s.logger.WithFields(logrus.Fields{
		"batch_id": batchID,
		"files":    len(parsed),
		"records":  resp.Total,
	}).Infof("文件导入完成，共%s条记录", humanize.Comma(int64(resp.Total)))
	return resp, nil
}

// parseFiles 并发解析上传文件，结果保持上传顺序
func parseFiles(ctx context.Context, files []UploadFile) ([]parsedFile, error) {
	parsed := make([]parsedFile, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := utils.ParseRows(f.Name, f.Content)
			if err != nil {
				return fmt.Errorf("%w: 解析文件 %s 失败: %v", ErrValidation, f.Name, err)
			}
			parsed[i] = parsedFile{
				name: filepath.Base(f.Name),
				rows: toRecordFields(rows),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parsed, nil
}

// toRecordFields 只保留记录字段，空值不写入（保存为 NULL）
func toRecordFields(rows []utils.Row) []map[string]string {
	result := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		fields := make(map[string]string, len(models.RecordFields))
		for _, f := range models.RecordFields {
			if v := row[f]; v != "" {
				fields[f] = v
			}
		}
		result = append(result, fields)
	}
	return result
}
