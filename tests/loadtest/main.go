package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numDays      = 28
)

var (
	memberIDs = []string{"m_001", "m_002", "m_003"}
	slots     = []string{"07:00", "09:00", "12:00", "18:00", "19:00", "20:00", "21:00"}
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== Formpick Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Members: %d | Days: %d | Slots: %d\n\n", len(memberIDs), numDays, len(slots))

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: bookings and workout logs
	fmt.Println("\n--- Phase 1: Seeding data (POST events, exercises) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.5 {
			return doCreateEvent(rng)
		}
		return doAddExercise(rng)
	})

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (50% write, 50% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.25:
			return doCreateEvent(rng)
		case r < 0.50:
			return doAddExercise(rng)
		case r < 0.65:
			return doGetDashboard()
		case r < 0.80:
			return doGetCalendar(rng)
		case r < 0.90:
			return doGetDay(rng)
		default:
			return doGetSummary(rng)
		}
	})

	// Phase 3: Read-heavy load
	fmt.Println("\n--- Phase 3: Read-heavy load (10% write, 90% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doCreateEvent(rng)
		case r < 0.40:
			return doGetDashboard()
		case r < 0.60:
			return doGetCalendar(rng)
		case r < 0.80:
			return doGetDay(rng)
		case r < 0.90:
			return doGetMembers()
		default:
			return doGetSummary(rng)
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func randomDate(rng *rand.Rand) string {
	return fmt.Sprintf("2024-06-%02d", rng.Intn(numDays)+1)
}

// do sends one request. Notices (422) are expected under random input and
// do not count as errors.
func do(label, method, url string, body any, ok ...int) result {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return result{label, 0, 0, true}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{label, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	failed := true
	for _, code := range ok {
		if resp.StatusCode == code {
			failed = false
		}
	}
	return result{label, resp.StatusCode, lat, failed}
}

func doCreateEvent(rng *rand.Rand) result {
	body := map[string]any{
		"memberId": memberIDs[rng.Intn(len(memberIDs))],
		"dateISO":  randomDate(rng),
		"time":     slots[rng.Intn(len(slots))],
	}
	return do("POST /api/events", http.MethodPost, baseURL+"/api/events", body, 201, 422)
}

func doAddExercise(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/api/logs/%s/%s/exercises", baseURL, memberIDs[rng.Intn(len(memberIDs))], randomDate(rng))
	return do("POST exercises", http.MethodPost, url, map[string]any{}, 201, 422)
}

func doGetDashboard() result {
	return do("GET /api/dashboard", http.MethodGet, baseURL+"/api/dashboard", nil, 200)
}

func doGetCalendar(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/api/calendar?year=2024&month=%d", baseURL, rng.Intn(12)+1)
	return do("GET /api/calendar", http.MethodGet, url, nil, 200)
}

func doGetDay(rng *rand.Rand) result {
	return do("GET /api/events?date", http.MethodGet, baseURL+"/api/events?date="+randomDate(rng), nil, 200)
}

func doGetMembers() result {
	return do("GET /api/members", http.MethodGet, baseURL+"/api/members", nil, 200)
}

func doGetSummary(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/api/logs/%s/%s/summary", baseURL, memberIDs[rng.Intn(len(memberIDs))], randomDate(rng))
	return do("GET summary", http.MethodGet, url, nil, 200)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
