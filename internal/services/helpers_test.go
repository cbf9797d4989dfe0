package services

import (
	"testing"

	"formpick/internal/storage"
	"formpick/internal/structures"
	"formpick/internal/testutil"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store    *storage.MemoryStore
	clock    *testutil.FixedClock
	ids      *testutil.SeqIDs
	logger   *testutil.MockLogger
	metrics  *testutil.MockMetrics
	conf     *structures.Config
	members  *MemberService
	machines *MachineService
	schedule *ScheduleService
	logs     *WorkoutLogService
}

func testConf() *structures.Config {
	return &structures.Config{
		Studio: structures.StudioConfig{
			RecentLogLimit:  30,
			DefaultDuration: 50,
			MinPhotos:       3,
			Machines:        []string{"레그프레스", "덤벨", "바벨"},
		},
	}
}

// newTestEnv builds the services over a migrated in-memory profile with the
// three seed members.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:   storage.NewMemoryStore(),
		clock:   testutil.NewFixedClock("2024-06-01"),
		ids:     &testutil.SeqIDs{},
		logger:  &testutil.MockLogger{},
		metrics: &testutil.MockMetrics{},
		conf:    testConf(),
	}
	require.NoError(t, storage.NewMigrator(env.logger, env.clock).Run(env.store))

	env.members = NewMemberService(env.store, env.clock, env.ids, env.metrics)
	env.machines = NewMachineService(env.store, env.conf)
	env.schedule = NewScheduleService(env.store, env.members, env.clock, env.ids, env.logger, env.metrics, env.conf)
	env.logs = NewWorkoutLogService(env.store, env.members, env.machines, env.clock, env.ids, env.logger, env.metrics, env.conf)
	return env
}
