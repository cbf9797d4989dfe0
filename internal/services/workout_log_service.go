package services

import (
	"context"
	"formpick/internal/models"
	"formpick/internal/providers"
	"formpick/internal/storage"
	"formpick/internal/structures"
	"formpick/internal/workout"
	"sync"
	"time"
)

const defaultRecentLimit = 30

type WorkoutLogServiceInterface interface {
	LoadOrCreate(memberID, dateISO string) (models.WorkoutLog, error)
	AddExercise(memberID, dateISO, machine string) (models.WorkoutLog, error)
	RemoveExercise(memberID, dateISO, exID string) (models.WorkoutLog, error)
	UpdateExercise(memberID, dateISO, exID string, patch workout.ExercisePatch) (models.WorkoutLog, error)
	AddSet(memberID, dateISO, exID string) (models.WorkoutLog, error)
	RemoveSet(memberID, dateISO, exID, setID string) (models.WorkoutLog, error)
	UpdateSet(memberID, dateISO, exID, setID string, patch workout.SetPatch) (models.WorkoutLog, error)
	UpdateHeader(memberID, dateISO string, patch workout.HeaderPatch) (models.WorkoutLog, error)
	Clear(memberID, dateISO string) (models.WorkoutLog, error)
	Summary(memberID, dateISO string, opts workout.SummaryOptions) (string, error)
	Share(ctx context.Context, memberID, dateISO string, opts workout.SummaryOptions, clipboard Clipboard) (string, error)
	RecentLogs(limit int) []models.RecentLogItem
	MemberLogs(memberID string) []models.RecentLogItem
}

// WorkoutLogService keeps one log per (member, date). Every mutation is
// saved right away and bumps the member/date to the top of the recent
// index.
type WorkoutLogService struct {
	mu          sync.Mutex
	store       storage.RecordStore
	members     MemberServiceInterface
	machines    MachineServiceInterface
	editor      *workout.Editor
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	recentLimit int
}

func NewWorkoutLogService(
	store storage.RecordStore,
	members MemberServiceInterface,
	machines MachineServiceInterface,
	clock providers.Clock,
	ids providers.IDGenerator,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	conf *structures.Config,
) *WorkoutLogService {
	limit := conf.Studio.RecentLogLimit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return &WorkoutLogService{
		store:       store,
		members:     members,
		machines:    machines,
		editor:      workout.NewEditor(clock, ids),
		logger:      logger,
		metrics:     metrics,
		recentLimit: limit,
	}
}

// load returns the stored log re-stamped with the member's current name,
// or a fresh log. Logs of removed members keep their stored name; only a
// fresh log needs the member on the roster.
func (s *WorkoutLogService) load(memberID, dateISO string) (models.WorkoutLog, error) {
	if memberID == "" {
		return models.WorkoutLog{}, models.ErrMemberRequired
	}
	if _, err := time.Parse(providers.DateLayout, dateISO); err != nil {
		return models.WorkoutLog{}, models.ErrInvalidDate
	}

	log, ok := storage.Lookup[models.WorkoutLog](s.store, storage.WorkoutLogKey(memberID, dateISO))
	if !ok {
		member, err := s.members.Get(memberID)
		if err != nil {
			return models.WorkoutLog{}, err
		}
		return s.editor.NewLog(memberID, member.Name, dateISO), nil
	}
	if member, err := s.members.Get(memberID); err == nil {
		log.MemberName = member.Name
	}
	log.MemberID = memberID
	log.DateISO = dateISO
	if log.Exercises == nil {
		log.Exercises = []models.ExerciseRow{}
	}
	return log, nil
}

func (s *WorkoutLogService) LoadOrCreate(memberID, dateISO string) (models.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(memberID, dateISO)
}

// mutate loads the log, applies fn and autosaves the result. A notice from
// fn leaves the store untouched.
func (s *WorkoutLogService) mutate(memberID, dateISO string, fn func(log *models.WorkoutLog) error) (models.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.load(memberID, dateISO)
	if err != nil {
		return models.WorkoutLog{}, err
	}
	if err := fn(&log); err != nil {
		return models.WorkoutLog{}, err
	}
	if err := s.save(log); err != nil {
		return models.WorkoutLog{}, err
	}
	return log, nil
}

func (s *WorkoutLogService) save(log models.WorkoutLog) error {
	if err := storage.Write(s.store, storage.WorkoutLogKey(log.MemberID, log.DateISO), log); err != nil {
		return err
	}
	s.upsertRecent(models.RecentLogItem{
		ID:         models.LogID(log.MemberID, log.DateISO),
		MemberName: log.MemberName,
		DateISO:    log.DateISO,
		UpdatedAt:  log.UpdatedAt,
	})
	return nil
}

func (s *WorkoutLogService) upsertRecent(item models.RecentLogItem) {
	prev := storage.Read(s.store, storage.LogIndex.Key(), []models.RecentLogItem{})
	next := make([]models.RecentLogItem, 0, len(prev)+1)
	next = append(next, item)
	for _, p := range prev {
		if p.ID != item.ID {
			next = append(next, p)
		}
	}
	next = head(next, s.recentLimit)
	if err := storage.Write(s.store, storage.LogIndex.Key(), next); err != nil {
		s.logger.Errorf(providers.TypeStore, "Unable to update recent log index: %s", err)
		return
	}
	s.metrics.SetRecordsTotal(storage.LogIndex.Name, len(next))
}

// AddExercise adds a row for machine, or for the studio's first machine
// when machine is empty.
func (s *WorkoutLogService) AddExercise(memberID, dateISO, machine string) (models.WorkoutLog, error) {
	if machine == "" {
		machine = s.machines.Default()
	}
	return s.mutate(memberID, dateISO, func(log *models.WorkoutLog) error {
		_, err := s.editor.AddExercise(log, machine)
		return err
	})
}

func (s *WorkoutLogService) RemoveExercise(memberID, dateISO, exID string) (models.WorkoutLog, error) {
	return s.mutate(memberID, dateISO, func(log *models.WorkoutLog) error {
		return s.editor.RemoveExercise(log, exID)
	})
}

func (s *WorkoutLogService) UpdateExercise(memberID, dateISO, exID string, patch workout.ExercisePatch) (models.WorkoutLog, error) {
	return s.mutate(memberID, dateISO, func(log *models.WorkoutLog) error {
		return s.editor.UpdateExercise(log, exID, patch)
	})
}

func (s *WorkoutLogService) AddSet(memberID, dateISO, exID string) (models.WorkoutLog, error) {
	return s.mutate(memberID, dateISO, func(log *models.WorkoutLog) error {
		_, err := s.editor.AddSet(log, exID)
		return err
	})
}

func (s *WorkoutLogService) RemoveSet(memberID, dateISO, exID, setID string) (models.WorkoutLog, error) {
	return s.mutate(memberID, dateISO, func(log *models.WorkoutLog) error {
		return s.editor.RemoveSet(log, exID, setID)
	})
}

func (s *WorkoutLogService) UpdateSet(memberID, dateISO, exID, setID string, patch workout.SetPatch) (models.WorkoutLog, error) {
	return s.mutate(memberID, dateISO, func(log *models.WorkoutLog) error {
		return s.editor.UpdateSet(log, exID, setID, patch)
	})
}

func (s *WorkoutLogService) UpdateHeader(memberID, dateISO string, patch workout.HeaderPatch) (models.WorkoutLog, error) {
	return s.mutate(memberID, dateISO, func(log *models.WorkoutLog) error {
		return s.editor.UpdateHeader(log, patch)
	})
}

// Clear deletes the stored log of the day and returns an empty one. The
// recent index keeps its entry.
func (s *WorkoutLogService) Clear(memberID, dateISO string) (models.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.load(memberID, dateISO)
	if err != nil {
		return models.WorkoutLog{}, err
	}
	s.store.Remove(storage.WorkoutLogKey(memberID, dateISO))
	return s.editor.NewLog(memberID, log.MemberName, dateISO), nil
}

func (s *WorkoutLogService) Summary(memberID, dateISO string, opts workout.SummaryOptions) (string, error) {
	log, err := s.LoadOrCreate(memberID, dateISO)
	if err != nil {
		return "", err
	}
	return workout.Summary(log, opts), nil
}

// Share builds the summary and hands it to the clipboard. A clipboard
// failure surfaces as a notice.
func (s *WorkoutLogService) Share(ctx context.Context, memberID, dateISO string, opts workout.SummaryOptions, clipboard Clipboard) (string, error) {
	text, err := s.Summary(memberID, dateISO, opts)
	if err != nil {
		return "", err
	}
	if err := clipboard.WriteText(ctx, text); err != nil {
		s.logger.Warnf(providers.TypeApp, "Clipboard write failed: %s", err)
		return "", models.ErrClipboard
	}
	return text, nil
}

// RecentLogs returns the recent index, newest first; limit <= 0 returns all.
func (s *WorkoutLogService) RecentLogs(limit int) []models.RecentLogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return head(storage.Read(s.store, storage.LogIndex.Key(), []models.RecentLogItem{}), limit)
}

// MemberLogs lists every stored log of one member, oldest date first.
func (s *WorkoutLogService) MemberLogs(memberID string) []models.RecentLogItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RecentLogItem, 0)
	for _, key := range s.store.Keys(storage.WorkoutLogPrefix(memberID)) {
		log, ok := storage.Lookup[models.WorkoutLog](s.store, key)
		if !ok {
			continue
		}
		m, d, _ := storage.ParseWorkoutLogKey(key)
		out = append(out, models.RecentLogItem{
			ID:         models.LogID(m, d),
			MemberName: log.MemberName,
			DateISO:    d,
			UpdatedAt:  log.UpdatedAt,
		})
	}
	return out
}
