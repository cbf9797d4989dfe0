package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"formpick/internal/services"
	"formpick/internal/storage"
	"formpick/internal/structures"
	"formpick/internal/testutil"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	store    *storage.MemoryStore
	clock    *testutil.FixedClock
	logger   *testutil.MockLogger
	metrics  *testutil.MockMetrics
	cache    *testutil.MockCache
	rs       *Responder
	members  *services.MemberService
	machines *services.MachineService
	schedule *services.ScheduleService
	logs     *services.WorkoutLogService
}

// newTestApp wires real services over a migrated in-memory profile.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	conf := &structures.Config{
		Studio: structures.StudioConfig{
			RecentLogLimit:  30,
			DefaultDuration: 50,
			MinPhotos:       3,
			Machines:        []string{"레그프레스", "덤벨", "바벨"},
		},
	}
	app := &testApp{
		store:   storage.NewMemoryStore(),
		clock:   testutil.NewFixedClock("2024-06-01"),
		logger:  &testutil.MockLogger{},
		metrics: &testutil.MockMetrics{},
		cache:   testutil.NewMockCache(),
	}
	ids := &testutil.SeqIDs{}
	require.NoError(t, storage.NewMigrator(app.logger, app.clock).Run(app.store))

	app.rs = NewResponder(app.logger, app.cache, app.metrics, app.store)
	app.members = services.NewMemberService(app.store, app.clock, ids, app.metrics)
	app.machines = services.NewMachineService(app.store, conf)
	app.schedule = services.NewScheduleService(app.store, app.members, app.clock, ids, app.logger, app.metrics, conf)
	app.logs = services.NewWorkoutLogService(app.store, app.members, app.machines, app.clock, ids, app.logger, app.metrics, conf)
	return app
}

// call runs a handler with the given path values, e.g. "id", "m_001".
func call(h http.HandlerFunc, method, target, body string, pathValues ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
