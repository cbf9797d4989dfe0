package storage

import (
	"fmt"
	"formpick/internal/providers"
	"formpick/internal/storage/interfaces"
	"formpick/internal/structures"
	"sync"

	"github.com/roylee0704/gron"
)

// Scheduler owns the snapshot lifecycle: restore and migrate on startup,
// periodic flushes while running, a final persist on shutdown.
type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	store    *PersistentStore
	migrator *Migrator
	cron     *gron.Cron
	opsMu    sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Persistence.SaveInterval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if !s.store.Dirty() {
			return
		}
		err := s.store.Flush()
		if err != nil {
			s.logger.Errorf(providers.TypeStore, "Error while persisting profile: %s", err)
			return
		}
		s.logger.Infof(providers.TypeStore, "Persisted profile to file %s", s.config.Persistence.FilePath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if err := s.store.Load(); err != nil {
		moved, qerr := s.store.Quarantine()
		if qerr != nil {
			return fmt.Errorf("load snapshot: %w (move aside: %v)", err, qerr)
		}
		s.logger.Warnf(providers.TypeStore, "Unreadable snapshot moved to %s, starting fresh: %s", moved, err)
	}
	return s.migrator.Run(s.store)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeStore, "Persisting profile to file...")
	err := s.store.Flush()
	if err != nil {
		s.logger.Errorf(providers.TypeStore, "Error while persisting profile: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store *PersistentStore, migrator *Migrator) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		store:    store,
		migrator: migrator,
	}
}
