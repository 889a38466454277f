package service

import (
	"testing"

	"rec-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAdvanced_And(t *testing.T) {
	s := newTestServices(t)
	batchID := s.mustBatch(t, "b")

	match := s.mustRecord(t, batchID, "", map[string]string{
		models.FieldName:    "রহিম উদ্দিন",
		models.FieldAddress: "ঢাকা",
	})
	s.mustRecord(t, batchID, "", map[string]string{
		models.FieldName:    "রহিম",
		models.FieldAddress: "খুলনা",
	})
	s.mustRecord(t, batchID, "", map[string]string{
		models.FieldName:    "করিম",
		models.FieldAddress: "ঢাকা",
	})

	records, err := s.search.SearchAdvanced(map[string]string{
		models.FieldName:    "রহিম",
		models.FieldAddress: "ঢাকা",
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{match.ID}, recordIDs(records))
	assert.Equal(t, "b", records[0].BatchName)
}

func TestSearchAdvanced_EmptyCriteriaReturnsAll(t *testing.T) {
	s := newTestServices(t)
	batchID := s.mustBatch(t, "b")
	s.mustRecord(t, batchID, "", map[string]string{models.FieldName: "এক"})
	s.mustRecord(t, batchID, "", map[string]string{models.FieldName: "দুই"})

	records, err := s.search.SearchAdvanced(map[string]string{})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// 空白值不参与过滤
	records, err = s.search.SearchAdvanced(map[string]string{models.FieldName: "  "})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSearchAdvanced_UnknownField(t *testing.T) {
	s := newTestServices(t)

	_, err := s.search.SearchAdvanced(map[string]string{"name; DROP TABLE records": "x"})
	assert.ErrorIs(t, err, ErrUnknownField)

	// ভোটার_নং 不在可搜索字段中，即使值为空也拒绝
	_, err = s.search.SearchAdvanced(map[string]string{models.FieldVoterNo: ""})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSearchAdvanced_CaseInsensitive(t *testing.T) {
	s := newTestServices(t)
	batchID := s.mustBatch(t, "b")
	r := s.mustRecord(t, batchID, "", map[string]string{models.FieldAddress: "Mirpur, Dhaka"})

	records, err := s.search.SearchAdvanced(map[string]string{models.FieldAddress: "dhaka"})
	require.NoError(t, err)
	assert.Equal(t, []uint{r.ID}, recordIDs(records))
}

func TestSearch_WildcardsMatchLiterally(t *testing.T) {
	s := newTestServices(t)
	batchID := s.mustBatch(t, "b")
	percent := s.mustRecord(t, batchID, "", map[string]string{models.FieldAddress: "100% road"})
	s.mustRecord(t, batchID, "", map[string]string{models.FieldAddress: "1000 road"})
	underscore := s.mustRecord(t, batchID, "", map[string]string{models.FieldAddress: "a_b"})
	s.mustRecord(t, batchID, "", map[string]string{models.FieldAddress: "axb"})

	records, err := s.search.SearchAdvanced(map[string]string{models.FieldAddress: "0%"})
	require.NoError(t, err)
	assert.Equal(t, []uint{percent.ID}, recordIDs(records))

	records, err = s.search.SearchSimple("a_b")
	require.NoError(t, err)
	assert.Equal(t, []uint{underscore.ID}, recordIDs(records))
}

func TestSearchSimple_Or(t *testing.T) {
	s := newTestServices(t)
	batchID := s.mustBatch(t, "b")

	byName := s.mustRecord(t, batchID, "", map[string]string{models.FieldName: "আলম"})
	byFather := s.mustRecord(t, batchID, "", map[string]string{models.FieldFatherName: "মো. আলম"})
	byAddress := s.mustRecord(t, batchID, "", map[string]string{models.FieldAddress: "আলমনগর"})
	// পেশা 不在简单搜索字段中
	s.mustRecord(t, batchID, "", map[string]string{models.FieldOccupation: "আলম"})

	records, err := s.search.SearchSimple("আলম")
	require.NoError(t, err)
	assert.Equal(t, []uint{byAddress.ID, byFather.ID, byName.ID}, recordIDs(records))

	// OR 搜索结果包含同一词的单字段 AND 搜索结果
	advanced, err := s.search.SearchAdvanced(map[string]string{models.FieldName: "আলম"})
	require.NoError(t, err)
	assert.Subset(t, recordIDs(records), recordIDs(advanced))
}

func TestSearchSimple_EmptyTermReturnsAll(t *testing.T) {
	s := newTestServices(t)
	batchID := s.mustBatch(t, "b")
	s.mustRecord(t, batchID, "", nil)
	s.mustRecord(t, batchID, "", nil)

	records, err := s.search.SearchSimple(" ")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSubstringMatch(t *testing.T) {
	assert.Nil(t, substringMatch("LIKE", nil, matchAll))
	assert.NotNil(t, substringMatch("LIKE", []fieldMatch{{field: models.FieldName, value: "x"}}, matchAny))
	assert.Equal(t, `50\%\_\\`, likeEscaper.Replace(`50%_\`))
}
