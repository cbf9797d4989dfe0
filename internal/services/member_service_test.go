package services

import (
	"testing"

	"formpick/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberService_ListSeeded(t *testing.T) {
	env := newTestEnv(t)
	members := env.members.List()
	require.Len(t, members, 3)
	assert.Equal(t, "김OO", members[0].Name)
}

func TestMemberService_AddAndSearch(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.members.Add("  ", "010")
	assert.ErrorIs(t, err, models.ErrNameRequired)

	m, err := env.members.Add(" 최OO ", "010-1111-2222")
	require.NoError(t, err)
	assert.Equal(t, "최OO", m.Name)
	assert.Equal(t, m.ID, env.members.List()[0].ID)
	assert.Equal(t, 4, env.metrics.RecordsByCollection["members"])

	assert.Len(t, env.members.Search("최"), 1)
	assert.Len(t, env.members.Search("1111"), 1)
	assert.Len(t, env.members.Search("010-0000"), 3)
	assert.Len(t, env.members.Search(""), 4)
	assert.Empty(t, env.members.Search("없는사람"))
}

func TestMemberService_Get(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.members.Get("")
	assert.ErrorIs(t, err, models.ErrMemberRequired)
	_, err = env.members.Get("m_999")
	assert.ErrorIs(t, err, models.ErrMemberNotFound)

	m, err := env.members.Get("m_002")
	require.NoError(t, err)
	assert.Equal(t, "이OO", m.Name)
}

func TestMemberService_RemoveDoesNotCascade(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.schedule.CreateEvent(CreateEventInput{MemberID: "m_001", DateISO: "2024-06-01", Time: "10:00"})
	require.NoError(t, err)

	require.NoError(t, env.members.Remove("m_001"))
	assert.ErrorIs(t, env.members.Remove("m_001"), models.ErrMemberNotFound)
	assert.Len(t, env.members.List(), 2)
	assert.Len(t, env.schedule.Events(), 1)
}

func TestMemberService_PurchaseDeductRefund(t *testing.T) {
	env := newTestEnv(t)

	m, err := env.members.RegisterPurchase("m_001", 10, "")
	require.NoError(t, err)
	assert.Equal(t, 10, m.RemainingPT)
	require.Len(t, m.History, 1)
	assert.Equal(t, models.PassPurchase, m.History[0].Type)
	assert.Equal(t, "PT 10회 구매", m.History[0].Memo)
	assert.Equal(t, 10, m.History[0].Amount)

	m, err = env.members.Deduct("m_001", 1, "ev_1", "")
	require.NoError(t, err)
	assert.Equal(t, 9, m.RemainingPT)
	assert.Equal(t, -1, m.History[0].Amount)
	assert.Equal(t, "ev_1", m.History[0].Ref)

	_, err = env.members.Deduct("m_001", 10, "", "")
	assert.ErrorIs(t, err, models.ErrInsufficientPT)

	m, err = env.members.Refund("m_001", 4, "잔여 환불")
	require.NoError(t, err)
	assert.Equal(t, 5, m.RemainingPT)
	assert.Equal(t, models.PassRefund, m.History[0].Type)
	require.Len(t, m.History, 3)

	_, err = env.members.RegisterPurchase("m_001", 0, "")
	assert.ErrorIs(t, err, models.ErrInvalidCount)
	_, err = env.members.RegisterPurchase("m_404", 1, "")
	assert.ErrorIs(t, err, models.ErrMemberNotFound)
}

func TestMemberService_HistoryExplainsBalance(t *testing.T) {
	env := newTestEnv(t)
	_, _ = env.members.RegisterPurchase("m_002", 20, "")
	_, _ = env.members.Deduct("m_002", 3, "", "")
	_, _ = env.members.ManualEdit("m_002", 12, "2024-12-31")
	_, _ = env.members.Refund("m_002", 2, "")

	m, err := env.members.Get("m_002")
	require.NoError(t, err)
	sum := 0
	for _, h := range m.History {
		sum += h.Amount
	}
	assert.Equal(t, m.RemainingPT, sum)
}

func TestMemberService_ManualEdit(t *testing.T) {
	env := newTestEnv(t)

	m, err := env.members.ManualEdit("m_001", 0, "")
	require.NoError(t, err)
	assert.Empty(t, m.History)

	m, err = env.members.ManualEdit("m_001", 5, "2024-09-01")
	require.NoError(t, err)
	require.Len(t, m.History, 1)
	assert.Equal(t, models.PassManualEdit, m.History[0].Type)
	assert.Equal(t, 5, m.History[0].Amount)
	assert.Equal(t, "관리자 수동 수정 (만료일: 없음 → 2024-09-01)", m.History[0].Memo)

	m, err = env.members.ManualEdit("m_001", 5, "")
	require.NoError(t, err)
	require.Len(t, m.History, 2)
	assert.Equal(t, 0, m.History[0].Amount)
	assert.Equal(t, "관리자 수동 수정 (만료일: 2024-09-01 → 없음)", m.History[0].Memo)

	_, err = env.members.ManualEdit("m_001", -1, "")
	assert.ErrorIs(t, err, models.ErrInvalidCount)
	_, err = env.members.ManualEdit("m_001", 1, "2024/09/01")
	assert.ErrorIs(t, err, models.ErrInvalidDate)
}
