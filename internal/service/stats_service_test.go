package service

import (
	"testing"

	"rec-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupationStats(t *testing.T) {
	s := newTestServices(t)
	batchID := s.mustBatch(t, "b")
	other := s.mustBatch(t, "other")
	for _, occ := range []string{"চাকরি", "চাকরি", "ব্যবসা"} {
		s.mustRecord(t, batchID, "", map[string]string{models.FieldOccupation: occ})
	}
	s.mustRecord(t, other, "", map[string]string{models.FieldOccupation: "কৃষক"})

	stats, err := s.stats.OccupationStats(&batchID)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.NotNil(t, stats[0].Occupation)
	assert.Equal(t, "চাকরি", *stats[0].Occupation)
	assert.EqualValues(t, 2, stats[0].Count)
	require.NotNil(t, stats[1].Occupation)
	assert.Equal(t, "ব্যবসা", *stats[1].Occupation)
	assert.EqualValues(t, 1, stats[1].Count)

	all, err := s.stats.OccupationStats(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOccupationStats_NullGroup(t *testing.T) {
	s := newTestServices(t)
	batchID := s.mustBatch(t, "b")
	s.mustRecord(t, batchID, "", nil)
	s.mustRecord(t, batchID, "", nil)
	s.mustRecord(t, batchID, "", map[string]string{models.FieldOccupation: "চাকরি"})

	stats, err := s.stats.OccupationStats(nil)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Nil(t, stats[0].Occupation)
	assert.EqualValues(t, 2, stats[0].Count)
}

func TestStats_Empty(t *testing.T) {
	s := newTestServices(t)

	occ, err := s.stats.OccupationStats(nil)
	require.NoError(t, err)
	assert.Empty(t, occ)

	rel, err := s.stats.RelationshipSummary()
	require.NoError(t, err)
	assert.Empty(t, rel.Stats)
	assert.EqualValues(t, 0, rel.Summary.Total)
	assert.Len(t, rel.Summary.Counts, 4)

	batch, err := s.stats.FriendEnemyRatios()
	require.NoError(t, err)
	assert.Empty(t, batch.Stats)
	assert.Empty(t, batch.Ratios)
}

func TestRelationshipStats(t *testing.T) {
	s := newTestServices(t)
	alpha := s.mustBatch(t, "alpha")
	beta := s.mustBatch(t, "beta")

	set := func(batchID uint, status models.RelationshipStatus) {
		r := s.mustRecord(t, batchID, "", nil)
		require.NoError(t, s.relationships.SetStatus(r.ID, status))
	}
	set(alpha, models.StatusFriend)
	set(alpha, models.StatusFriend)
	set(alpha, models.StatusEnemy)
	set(beta, models.StatusFriend)
	set(beta, models.StatusRegular)

	rel, err := s.stats.RelationshipSummary()
	require.NoError(t, err)
	require.NotEmpty(t, rel.Stats)
	assert.Equal(t, models.StatusFriend, rel.Stats[0].RelationshipStatus)
	assert.EqualValues(t, 3, rel.Stats[0].Count)
	assert.EqualValues(t, 5, rel.Summary.Total)
	assert.EqualValues(t, 1, rel.Summary.Counts[models.StatusEnemy])
	assert.EqualValues(t, 0, rel.Summary.Counts[models.StatusConnected])

	batch, err := s.stats.FriendEnemyRatios()
	require.NoError(t, err)
	require.Len(t, batch.Stats, 4)
	assert.Equal(t, "alpha", batch.Stats[0].BatchName)
	assert.Equal(t, models.StatusEnemy, batch.Stats[0].RelationshipStatus)
	assert.Equal(t, models.StatusFriend, batch.Stats[1].RelationshipStatus)
	assert.Equal(t, "beta", batch.Stats[2].BatchName)

	require.Len(t, batch.Ratios, 2)
	require.NotNil(t, batch.Ratios[0].Ratio)
	assert.InDelta(t, 2.0, *batch.Ratios[0].Ratio, 1e-9)
	assert.Equal(t, "beta", batch.Ratios[1].BatchName)
	assert.Nil(t, batch.Ratios[1].Ratio, "no enemies means unbounded ratio")
}

func TestComputeFriendEnemyRatios_SkipsBatchesWithoutFriends(t *testing.T) {
	ratios := ComputeFriendEnemyRatios([]models.BatchStatusCount{
		{BatchID: 1, BatchName: "a", RelationshipStatus: models.StatusEnemy, Count: 3},
		{BatchID: 2, BatchName: "b", RelationshipStatus: models.StatusFriend, Count: 1},
		{BatchID: 2, BatchName: "b", RelationshipStatus: models.StatusEnemy, Count: 4},
	})

	require.Len(t, ratios, 1)
	assert.Equal(t, uint(2), ratios[0].BatchID)
	require.NotNil(t, ratios[0].Ratio)
	assert.InDelta(t, 0.25, *ratios[0].Ratio, 1e-9)
}
