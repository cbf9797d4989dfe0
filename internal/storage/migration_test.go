package storage

import (
	"testing"
	"time"

	"formpick/internal/models"
	"formpick/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_SeedsFreshProfile(t *testing.T) {
	store := NewMemoryStore()
	clock := testutil.NewFixedClock("2024-06-01")
	logger := &testutil.MockLogger{}

	require.NoError(t, NewMigrator(logger, clock).Run(store))

	members := Read(store, MembersV2.Key(), []models.MemberV2{})
	require.Len(t, members, 3)
	assert.Equal(t, "m_001", members[0].ID)
	assert.Equal(t, "김OO", members[0].Name)
	for _, m := range members {
		assert.Equal(t, 0, m.RemainingPT)
		assert.Equal(t, "", m.ExpiryDate)
		assert.Empty(t, m.History)
		assert.Equal(t, clock.Now(), m.CreatedAt)
	}
	assert.Equal(t, 1, logger.Count("info"))
}

func TestMigrator_CopiesV1Members(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, Write(store, MembersV1.Key(), []models.Member{
		{ID: "m_100", Name: "최OO", Phone: "010-1234-5678", Memo: "무릎 수술 이력"},
	}))

	require.NoError(t, NewMigrator(&testutil.MockLogger{}, testutil.NewFixedClock("2024-06-01")).Run(store))

	members := Read(store, MembersV2.Key(), []models.MemberV2{})
	require.Len(t, members, 1)
	assert.Equal(t, "m_100", members[0].ID)
	assert.Equal(t, "010-1234-5678", members[0].Phone)

	_, ok := store.Get(MembersV1.Key())
	assert.True(t, ok)
}

func TestMigrator_Idempotent(t *testing.T) {
	store := NewMemoryStore()
	clock := testutil.NewFixedClock("2024-06-01")
	logger := &testutil.MockLogger{}
	m := NewMigrator(logger, clock)

	require.NoError(t, m.Run(store))
	first, _ := store.Get(MembersV2.Key())
	rev := store.Revision()

	clock.Advance(24 * time.Hour)
	require.NoError(t, m.Run(store))
	second, _ := store.Get(MembersV2.Key())

	assert.Equal(t, first, second)
	assert.Equal(t, rev, store.Revision())
	assert.Equal(t, 1, logger.Count("debug"))
}

func TestMigrator_MalformedV2IsReseeded(t *testing.T) {
	store := NewMemoryStore()
	store.Put(MembersV2.Key(), []byte(`{oops`))

	require.NoError(t, NewMigrator(&testutil.MockLogger{}, testutil.NewFixedClock("2024-06-01")).Run(store))
	assert.Len(t, Read(store, MembersV2.Key(), []models.MemberV2{}), 3)
}
