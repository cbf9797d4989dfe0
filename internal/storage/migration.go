package storage

import (
	"fmt"
	"formpick/internal/models"
	"formpick/internal/providers"
)

// Migration upgrades one collection layout. Applied reports whether the
// target is already populated, which makes every migration safe to re-run.
type Migration struct {
	Name    string
	Applied func(store RecordStore) bool
	Apply   func(store RecordStore) error
}

type Migrator struct {
	logger     providers.Logger
	migrations []Migration
}

func NewMigrator(logger providers.Logger, clock providers.Clock) *Migrator {
	return &Migrator{
		logger: logger,
		migrations: []Migration{
			membersV1ToV2(clock),
		},
	}
}

// Run applies every pending migration in registration order.
func (m *Migrator) Run(store RecordStore) error {
	for _, mig := range m.migrations {
		if mig.Applied(store) {
			m.logger.Debugf(providers.TypeStore, "Migration %s already applied", mig.Name)
			continue
		}
		if err := mig.Apply(store); err != nil {
			return fmt.Errorf("migration %s: %w", mig.Name, err)
		}
		m.logger.Infof(providers.TypeStore, "Migration %s applied", mig.Name)
	}
	return nil
}

// membersV1ToV2 seeds the v2 roster from the v1 member list, or from the
// seed members when the profile is fresh. Pass balance and history start
// empty; the v1 collection is left untouched.
func membersV1ToV2(clock providers.Clock) Migration {
	return Migration{
		Name: "members-v1-to-v2",
		Applied: func(store RecordStore) bool {
			return len(Read(store, MembersV2.Key(), []models.MemberV2{})) > 0
		},
		Apply: func(store RecordStore) error {
			v1 := Read(store, MembersV1.Key(), []models.Member{})
			if len(v1) == 0 {
				v1 = models.SeedMembers
			}
			now := clock.Now()
			v2 := make([]models.MemberV2, 0, len(v1))
			for _, m := range v1 {
				v2 = append(v2, models.MemberV2{
					ID:          m.ID,
					Name:        m.Name,
					Phone:       m.Phone,
					RemainingPT: 0,
					ExpiryDate:  "",
					History:     []models.PassHistoryItem{},
					CreatedAt:   now,
					UpdatedAt:   now,
				})
			}
			return Write(store, MembersV2.Key(), v2)
		},
	}
}
