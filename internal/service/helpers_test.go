package service

import (
	"testing"

	"rec-go/internal/models"
	"rec-go/internal/repository"
	"rec-go/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServices struct {
	records       *RecordService
	search        *SearchService
	relationships *RelationshipService
	stats         *StatsService
	recordRepo    *repository.RecordRepository
	db            *gorm.DB
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := testutil.NewTestDB(t)
	logger := testutil.NewTestLogger()
	batchRepo := repository.NewBatchRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	return &testServices{
		records:       NewRecordService(batchRepo, recordRepo, logger),
		search:        NewSearchService(recordRepo, logger),
		relationships: NewRelationshipService(recordRepo, logger),
		stats:         NewStatsService(recordRepo),
		recordRepo:    recordRepo,
		db:            db,
	}
}

func (s *testServices) mustBatch(t *testing.T, name string) uint {
	t.Helper()
	id, err := s.records.CreateBatch(name)
	require.NoError(t, err)
	return id
}

func (s *testServices) mustRecord(t *testing.T, batchID uint, fileName string, fields map[string]string) *models.Record {
	t.Helper()
	record, err := s.records.AddRecord(batchID, fileName, fields)
	require.NoError(t, err)
	return record
}

func recordIDs(records []models.Record) []uint {
	ids := make([]uint, len(records))
	for i := range records {
		ids[i] = records[i].ID
	}
	return ids
}
