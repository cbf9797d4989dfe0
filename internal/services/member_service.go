package services

import (
	"fmt"
	"formpick/internal/models"
	"formpick/internal/providers"
	"formpick/internal/storage"
	"strings"
	"sync"
	"time"
)

type MemberServiceInterface interface {
	List() []models.MemberV2
	Search(query string) []models.MemberV2
	Get(id string) (models.MemberV2, error)
	Add(name, phone string) (models.MemberV2, error)
	Remove(id string) error
	RegisterPurchase(id string, count int, memo string) (models.MemberV2, error)
	Deduct(id string, count int, ref, memo string) (models.MemberV2, error)
	Refund(id string, count int, memo string) (models.MemberV2, error)
	ManualEdit(id string, remaining int, expiryDate string) (models.MemberV2, error)
}

// MemberService owns the v2 roster. Balance changes always go together with
// a history entry.
type MemberService struct {
	mu      sync.Mutex
	store   storage.RecordStore
	clock   providers.Clock
	ids     providers.IDGenerator
	metrics providers.MetricsProviderInterface
}

func NewMemberService(store storage.RecordStore, clock providers.Clock, ids providers.IDGenerator, metrics providers.MetricsProviderInterface) *MemberService {
	return &MemberService{store: store, clock: clock, ids: ids, metrics: metrics}
}

func (ms *MemberService) load() []models.MemberV2 {
	return storage.Read(ms.store, storage.MembersV2.Key(), []models.MemberV2{})
}

func (ms *MemberService) save(members []models.MemberV2) error {
	if err := storage.Write(ms.store, storage.MembersV2.Key(), members); err != nil {
		return err
	}
	ms.metrics.SetRecordsTotal(storage.MembersV2.Name, len(members))
	return nil
}

func (ms *MemberService) List() []models.MemberV2 {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.load()
}

// Search matches the query against name or phone. An empty query lists all.
func (ms *MemberService) Search(query string) []models.MemberV2 {
	members := ms.List()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return members
	}
	out := make([]models.MemberV2, 0)
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(m.Phone, q) {
			out = append(out, m)
		}
	}
	return out
}

func (ms *MemberService) Get(id string) (models.MemberV2, error) {
	if id == "" {
		return models.MemberV2{}, models.ErrMemberRequired
	}
	for _, m := range ms.List() {
		if m.ID == id {
			return m, nil
		}
	}
	return models.MemberV2{}, models.ErrMemberNotFound
}

// Add puts a new member at the top of the roster.
func (ms *MemberService) Add(name, phone string) (models.MemberV2, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.MemberV2{}, models.ErrNameRequired
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.clock.Now()
	member := models.MemberV2{
		ID:        ms.ids.NewID("m"),
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		History:   []models.PassHistoryItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	members := append([]models.MemberV2{member}, ms.load()...)
	if err := ms.save(members); err != nil {
		return models.MemberV2{}, err
	}
	return member, nil
}

// Remove drops the member from the roster. Schedule events and workout logs
// that reference the member are left as they are.
func (ms *MemberService) Remove(id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	members := ms.load()
	idx := indexOfMember(members, id)
	if idx < 0 {
		return models.ErrMemberNotFound
	}
	members = append(members[:idx:idx], members[idx+1:]...)
	return ms.save(members)
}

func (ms *MemberService) RegisterPurchase(id string, count int, memo string) (models.MemberV2, error) {
	if count <= 0 {
		return models.MemberV2{}, models.ErrInvalidCount
	}
	if strings.TrimSpace(memo) == "" {
		memo = fmt.Sprintf("PT %d회 구매", count)
	}
	return ms.adjust(id, func(m *models.MemberV2) (*models.PassHistoryItem, error) {
		m.RemainingPT += count
		return &models.PassHistoryItem{Type: models.PassPurchase, Amount: count, Memo: memo}, nil
	})
}

// Deduct consumes sessions, e.g. when a class is completed. ref usually
// carries the schedule event id.
func (ms *MemberService) Deduct(id string, count int, ref, memo string) (models.MemberV2, error) {
	if count <= 0 {
		return models.MemberV2{}, models.ErrInvalidCount
	}
	if strings.TrimSpace(memo) == "" {
		memo = fmt.Sprintf("PT %d회 차감", count)
	}
	return ms.adjust(id, func(m *models.MemberV2) (*models.PassHistoryItem, error) {
		if m.RemainingPT < count {
			return nil, models.ErrInsufficientPT
		}
		m.RemainingPT -= count
		return &models.PassHistoryItem{Type: models.PassDeduction, Amount: -count, Memo: memo, Ref: ref}, nil
	})
}

func (ms *MemberService) Refund(id string, count int, memo string) (models.MemberV2, error) {
	if count <= 0 {
		return models.MemberV2{}, models.ErrInvalidCount
	}
	if strings.TrimSpace(memo) == "" {
		memo = fmt.Sprintf("PT %d회 환불", count)
	}
	return ms.adjust(id, func(m *models.MemberV2) (*models.PassHistoryItem, error) {
		if m.RemainingPT < count {
			return nil, models.ErrInsufficientPT
		}
		m.RemainingPT -= count
		return &models.PassHistoryItem{Type: models.PassRefund, Amount: -count, Memo: memo}, nil
	})
}

// ManualEdit overwrites balance and expiry. A history entry is added only
// when one of them actually changed.
func (ms *MemberService) ManualEdit(id string, remaining int, expiryDate string) (models.MemberV2, error) {
	if remaining < 0 {
		return models.MemberV2{}, models.ErrInvalidCount
	}
	expiryDate = strings.TrimSpace(expiryDate)
	if expiryDate != "" {
		if _, err := time.Parse(providers.DateLayout, expiryDate); err != nil {
			return models.MemberV2{}, models.ErrInvalidDate
		}
	}
	return ms.adjust(id, func(m *models.MemberV2) (*models.PassHistoryItem, error) {
		diff := remaining - m.RemainingPT
		if diff == 0 && expiryDate == m.ExpiryDate {
			return nil, nil
		}
		item := &models.PassHistoryItem{
			Type:   models.PassManualEdit,
			Amount: diff,
			Memo:   fmt.Sprintf("관리자 수동 수정 (만료일: %s → %s)", orNone(m.ExpiryDate), orNone(expiryDate)),
		}
		m.RemainingPT = remaining
		m.ExpiryDate = expiryDate
		return item, nil
	})
}

// adjust runs fn on one member under the lock and records the history item
// it returns. A nil item means nothing changed and nothing is written.
func (ms *MemberService) adjust(id string, fn func(m *models.MemberV2) (*models.PassHistoryItem, error)) (models.MemberV2, error) {
	if id == "" {
		return models.MemberV2{}, models.ErrMemberRequired
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	members := ms.load()
	idx := indexOfMember(members, id)
	if idx < 0 {
		return models.MemberV2{}, models.ErrMemberNotFound
	}
	m := members[idx]
	item, err := fn(&m)
	if err != nil {
		return models.MemberV2{}, err
	}
	if item == nil {
		return members[idx], nil
	}

	now := ms.clock.Now()
	item.ID = ms.ids.NewID("his")
	item.CreatedAt = now
	m.History = append([]models.PassHistoryItem{*item}, m.History...)
	m.UpdatedAt = now
	members[idx] = m

	if err := ms.save(members); err != nil {
		return models.MemberV2{}, err
	}
	return m, nil
}

func indexOfMember(members []models.MemberV2, id string) int {
	for i := range members {
		if members[i].ID == id {
			return i
		}
	}
	return -1
}

func orNone(s string) string {
	if s == "" {
		return "없음"
	}
	return s
}
