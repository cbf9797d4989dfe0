package services

import (
	"fmt"
	"formpick/internal/calendar"
	"formpick/internal/models"
	"formpick/internal/providers"
	"formpick/internal/storage"
	"formpick/internal/structures"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	titleRequested = "수업 신청"
	titleChanged   = "수업 변경"
	titleCanceled  = "수업 취소"
)

type CreateEventInput struct {
	MemberID    string             `json:"memberId"`
	DateISO     string             `json:"dateISO"`
	Time        string             `json:"time"`
	DurationMin int                `json:"durationMin"`
	Status      models.EventStatus `json:"status"`
	Note        string             `json:"note"`
}

// EditEventInput replaces the editable fields of an event, the way the
// edit form submits all of them at once.
type EditEventInput = CreateEventInput

// MonthView is the calendar screen of one month.
type MonthView struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Cells  []calendar.Cell `json:"cells"`
	Counts map[string]int  `json:"counts"`
	Total  int             `json:"total"`
}

type ScheduleServiceInterface interface {
	CreateEvent(in CreateEventInput) (models.ScheduleEvent, error)
	EditEvent(id string, in EditEventInput) (models.ScheduleEvent, error)
	CancelEvent(id string) (models.ScheduleEvent, error)
	Events() []models.ScheduleEvent
	CountsByDate() map[string]int
	MonthTotal(year int, month time.Month) int
	DayEvents(dateISO string) []models.ScheduleEvent
	TodayEvents() []models.ScheduleEvent
	MonthView(year int, month time.Month) MonthView
	Changes(limit int) []models.ChangeItem
	Notifications(limit int) []models.NotificationItem
	UnreadCount() int
	MarkNotificationRead(id string) error
	MarkAllNotificationsRead() error
}

// ScheduleService books classes. Every booking, time change and
// cancellation leaves a change item and a notification behind.
type ScheduleService struct {
	mu              sync.Mutex
	store           storage.RecordStore
	members         MemberServiceInterface
	clock           providers.Clock
	ids             providers.IDGenerator
	logger          providers.Logger
	metrics         providers.MetricsProviderInterface
	defaultDuration int
}

func NewScheduleService(
	store storage.RecordStore,
	members MemberServiceInterface,
	clock providers.Clock,
	ids providers.IDGenerator,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	conf *structures.Config,
) *ScheduleService {
	duration := conf.Studio.DefaultDuration
	if duration <= 0 {
		duration = 50
	}
	return &ScheduleService{
		store:           store,
		members:         members,
		clock:           clock,
		ids:             ids,
		logger:          logger,
		metrics:         metrics,
		defaultDuration: duration,
	}
}

func (s *ScheduleService) events() []models.ScheduleEvent {
	return storage.Read(s.store, storage.ScheduleEvents.Key(), []models.ScheduleEvent{})
}

func (s *ScheduleService) changes() []models.ChangeItem {
	return storage.Read(s.store, storage.AdminChanges.Key(), []models.ChangeItem{})
}

func (s *ScheduleService) notifications() []models.NotificationItem {
	return storage.Read(s.store, storage.Notifications.Key(), []models.NotificationItem{})
}

// validate checks the booking form and resolves the member. skipID excludes
// the event being edited from the duplicate check.
func (s *ScheduleService) validate(in *CreateEventInput, events []models.ScheduleEvent, skipID string) (models.MemberV2, error) {
	if in.MemberID == "" {
		return models.MemberV2{}, models.ErrMemberRequired
	}
	member, err := s.members.Get(in.MemberID)
	if err != nil {
		return models.MemberV2{}, err
	}
	in.Time = strings.TrimSpace(in.Time)
	if in.Time == "" {
		return models.MemberV2{}, models.ErrTimeRequired
	}
	t, err := time.Parse("15:04", in.Time)
	if err != nil {
		return models.MemberV2{}, models.ErrInvalidTime
	}
	// "9:00" parses too; store the padded form so slots compare as strings.
	in.Time = t.Format("15:04")
	if _, err := time.Parse(providers.DateLayout, in.DateISO); err != nil {
		return models.MemberV2{}, models.ErrInvalidDate
	}
	if in.Status == "" {
		in.Status = models.StatusRequested
	}
	if !in.Status.Valid() {
		return models.MemberV2{}, models.ErrInvalidStatus
	}
	if in.DurationMin <= 0 {
		in.DurationMin = s.defaultDuration
	}
	in.Note = strings.TrimSpace(in.Note)

	for i := range events {
		ev := &events[i]
		if ev.ID != skipID && ev.Active() && ev.MemberID == in.MemberID && ev.DateISO == in.DateISO && ev.Time == in.Time {
			return models.MemberV2{}, models.ErrDuplicateBooking
		}
	}
	return member, nil
}

func (s *ScheduleService) CreateEvent(in CreateEventInput) (models.ScheduleEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.events()
	member, err := s.validate(&in, events, "")
	if err != nil {
		return models.ScheduleEvent{}, err
	}

	now := s.clock.Now()
	ev := models.ScheduleEvent{
		ID:          s.ids.NewID("ev"),
		MemberID:    member.ID,
		MemberName:  member.Name,
		DateISO:     in.DateISO,
		Time:        in.Time,
		DurationMin: in.DurationMin,
		Status:      in.Status,
		Note:        in.Note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	events = append([]models.ScheduleEvent{ev}, events...)
	if err := s.saveEvents(events); err != nil {
		return models.ScheduleEvent{}, err
	}

	s.record(models.ChangeRequested, ev.MemberName, ev.DateISO, ev.Time, "", "",
		titleRequested,
		fmt.Sprintf("%s 회원님이 %s %s 수업을 신청했습니다.", ev.MemberName, calendar.FormatKorean(ev.DateISO), ev.Time))
	return ev, nil
}

// EditEvent rewrites an event. Only a date or time change is audited;
// status and note edits are saved silently.
func (s *ScheduleService) EditEvent(id string, in EditEventInput) (models.ScheduleEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.events()
	idx := indexOfEvent(events, id)
	if idx < 0 {
		return models.ScheduleEvent{}, models.ErrEventNotFound
	}
	member, err := s.validate(&in, events, id)
	if err != nil {
		return models.ScheduleEvent{}, err
	}

	before := events[idx]
	ev := before
	ev.MemberID = member.ID
	ev.MemberName = member.Name
	ev.DateISO = in.DateISO
	ev.Time = in.Time
	ev.DurationMin = in.DurationMin
	ev.Status = in.Status
	ev.Note = in.Note
	ev.UpdatedAt = s.clock.Now()
	events[idx] = ev
	if err := s.saveEvents(events); err != nil {
		return models.ScheduleEvent{}, err
	}

	if before.DateISO != ev.DateISO || before.Time != ev.Time {
		s.record(models.ChangeChanged, ev.MemberName, ev.DateISO, ev.Time, before.Time, ev.Time,
			titleChanged,
			fmt.Sprintf("%s 회원님의 수업이 변경되었습니다. (%s %s → %s %s)",
				ev.MemberName,
				calendar.FormatKorean(before.DateISO), before.Time,
				calendar.FormatKorean(ev.DateISO), ev.Time))
	}
	return ev, nil
}

// CancelEvent is a soft delete. Canceling twice records twice.
func (s *ScheduleService) CancelEvent(id string) (models.ScheduleEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.events()
	idx := indexOfEvent(events, id)
	if idx < 0 {
		return models.ScheduleEvent{}, models.ErrEventNotFound
	}
	ev := events[idx]
	ev.Status = models.StatusCanceled
	ev.UpdatedAt = s.clock.Now()
	events[idx] = ev
	if err := s.saveEvents(events); err != nil {
		return models.ScheduleEvent{}, err
	}

	s.record(models.ChangeCanceled, ev.MemberName, ev.DateISO, ev.Time, "", "",
		titleCanceled,
		fmt.Sprintf("%s 회원님의 %s %s 수업이 취소되었습니다.", ev.MemberName, calendar.FormatKorean(ev.DateISO), ev.Time))
	return ev, nil
}

func (s *ScheduleService) saveEvents(events []models.ScheduleEvent) error {
	if err := storage.Write(s.store, storage.ScheduleEvents.Key(), events); err != nil {
		return err
	}
	s.metrics.SetRecordsTotal(storage.ScheduleEvents.Name, len(events))
	return nil
}

// record prepends the change item and the notification of one action.
// The event itself is already saved, so failures here are only logged.
func (s *ScheduleService) record(typ models.ChangeType, memberName, dateISO, slot, before, after, title, body string) {
	now := s.clock.Now()
	change := models.ChangeItem{
		ID:         s.ids.NewID("chg"),
		CreatedAt:  now,
		MemberName: memberName,
		Type:       typ,
		Before:     before,
		After:      after,
		DateISO:    dateISO,
		Time:       slot,
		Status:     models.ChangePending,
	}
	changes := append([]models.ChangeItem{change}, s.changes()...)
	if err := storage.Write(s.store, storage.AdminChanges.Key(), changes); err != nil {
		s.logger.Errorf(providers.TypeStore, "Unable to record %s change: %s", typ, err)
	}
	s.metrics.SetRecordsTotal(storage.AdminChanges.Name, len(changes))

	note := models.NotificationItem{
		ID:        s.ids.NewID("noti"),
		CreatedAt: now,
		Title:     title,
		Body:      body,
	}
	notes := append([]models.NotificationItem{note}, s.notifications()...)
	if err := storage.Write(s.store, storage.Notifications.Key(), notes); err != nil {
		s.logger.Errorf(providers.TypeStore, "Unable to record notification %q: %s", title, err)
	}
	s.metrics.SetRecordsTotal(storage.Notifications.Name, len(notes))
}

func (s *ScheduleService) Events() []models.ScheduleEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events()
}

// CountsByDate feeds the calendar badges; canceled events do not count.
func (s *ScheduleService) CountsByDate() map[string]int {
	counts := make(map[string]int)
	for _, ev := range s.Events() {
		if ev.Active() {
			counts[ev.DateISO]++
		}
	}
	return counts
}

func (s *ScheduleService) MonthTotal(year int, month time.Month) int {
	total := 0
	for _, ev := range s.Events() {
		if ev.Active() && calendar.InMonth(ev.DateISO, year, month) {
			total++
		}
	}
	return total
}

// DayEvents lists every event of the day, canceled ones included, by time.
func (s *ScheduleService) DayEvents(dateISO string) []models.ScheduleEvent {
	out := make([]models.ScheduleEvent, 0)
	for _, ev := range s.Events() {
		if ev.DateISO == dateISO {
			out = append(out, ev)
		}
	}
	sortByTime(out)
	return out
}

func (s *ScheduleService) TodayEvents() []models.ScheduleEvent {
	today := s.clock.Today()
	out := make([]models.ScheduleEvent, 0)
	for _, ev := range s.Events() {
		if ev.DateISO == today && ev.Active() {
			out = append(out, ev)
		}
	}
	sortByTime(out)
	return out
}

func (s *ScheduleService) MonthView(year int, month time.Month) MonthView {
	all := s.CountsByDate()
	counts := make(map[string]int)
	total := 0
	for date, n := range all {
		if calendar.InMonth(date, year, month) {
			counts[date] = n
			total += n
		}
	}
	return MonthView{
		Year:   year,
		Month:  int(month),
		Cells:  calendar.MonthGrid(year, month),
		Counts: counts,
		Total:  total,
	}
}

// Changes returns the newest change items first; limit <= 0 returns all.
func (s *ScheduleService) Changes(limit int) []models.ChangeItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return head(s.changes(), limit)
}

func (s *ScheduleService) Notifications(limit int) []models.NotificationItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return head(s.notifications(), limit)
}

func (s *ScheduleService) UnreadCount() int {
	n := 0
	for _, item := range s.Notifications(0) {
		if !item.Read {
			n++
		}
	}
	return n
}

func (s *ScheduleService) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.notifications()
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Read = true
			return storage.Write(s.store, storage.Notifications.Key(), notes)
		}
	}
	return models.ErrNotificationNotFound
}

func (s *ScheduleService) MarkAllNotificationsRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.notifications()
	for i := range notes {
		notes[i].Read = true
	}
	return storage.Write(s.store, storage.Notifications.Key(), notes)
}

func indexOfEvent(events []models.ScheduleEvent, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}

func sortByTime(events []models.ScheduleEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
}

func head[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
