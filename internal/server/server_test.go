package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/brk3/quit/internal/config"
	"github.com/brk3/quit/internal/storage"
	"github.com/brk3/quit/internal/tracker"
	"github.com/brk3/quit/pkg/habit"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(st *tracker.Store) http.Handler {
	s := New(config.Default(), st).WithClock(func() time.Time { return testNow })
	return s.Router()
}

func mockRequest(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func TestListHabits_Empty(t *testing.T) {
	h := newTestServer(tracker.Open(storage.NewMemory()))
	rr := mockRequest(h, http.MethodGet, "/habits/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var resp HabitListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(resp.Habits) != 0 || resp.TotalDays != 0 {
		t.Fatalf("got %+v want empty", resp)
	}
}

func TestTrackHabit_Valid(t *testing.T) {
	st := tracker.Open(storage.NewMemory())
	h := newTestServer(st)

	rr := mockRequest(h, http.MethodPost, "/habits/", TrackHabitRequest{Name: "Smoking", QuitDate: "2024-06-05"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("got %d want 201: %s", rr.Code, rr.Body.String())
	}
	var p habit.Progress
	if err := json.Unmarshal(rr.Body.Bytes(), &p); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if p.Habit.ID == "" || p.Habit.Icon != "🚬" {
		t.Fatalf("expected id and catalog icon, got %+v", p.Habit)
	}
	if p.Elapsed.Days != 10 || p.Message != "ONE WEEK DOWN. YOU'RE REWIRING." {
		t.Fatalf("unexpected progress %+v", p)
	}

	rr = mockRequest(h, http.MethodGet, "/habits/"+p.Habit.ID, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var got HabitGetResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if got.Progress.Habit != p.Habit {
		t.Fatalf("got %+v want %+v", got.Progress.Habit, p.Habit)
	}
}

func TestTrackHabit_DefaultsToToday(t *testing.T) {
	st := tracker.Open(storage.NewMemory())
	h := newTestServer(st)

	rr := mockRequest(h, http.MethodPost, "/habits/", TrackHabitRequest{Name: "Knitting", Icon: "🧶"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("got %d want 201: %s", rr.Code, rr.Body.String())
	}
	if got := st.List()[0].QuitDate.String(); got != "2024-06-15" {
		t.Fatalf("quit date = %s want 2024-06-15", got)
	}
}

func TestTrackHabit_BadRequests(t *testing.T) {
	cases := map[string]any{
		"empty name":  TrackHabitRequest{Name: "", QuitDate: "2024-06-01"},
		"future date": TrackHabitRequest{Name: "Sugar", QuitDate: "2024-06-16"},
		"bad date":    TrackHabitRequest{Name: "Sugar", QuitDate: "June 1st"},
		"long name":   TrackHabitRequest{Name: strings.Repeat("x", 40)},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			st := tracker.Open(storage.NewMemory())
			rr := mockRequest(newTestServer(st), http.MethodPost, "/habits/", body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("got %d want 400", rr.Code)
			}
			if st.Len() != 0 {
				t.Fatal("nothing should be stored")
			}
		})
	}
}

func TestTrackHabit_InvalidJSON(t *testing.T) {
	h := newTestServer(tracker.Open(storage.NewMemory()))
	req := httptest.NewRequest(http.MethodPost, "/habits/", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d want 400", rr.Code)
	}
}

func TestListHabits_TotalDays(t *testing.T) {
	st := tracker.Open(storage.NewMemory())
	for _, d := range []string{"2024-06-12", "2024-06-05", "2024-06-15"} {
		qd, _ := habit.ParseDate(d)
		if _, err := st.Add("Habit", "", qd); err != nil {
			t.Fatal(err)
		}
	}

	rr := mockRequest(newTestServer(st), http.MethodGet, "/habits/", nil)
	var resp HabitListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.TotalDays != 13 {
		t.Fatalf("total days = %d want 13", resp.TotalDays)
	}
	if len(resp.Habits) != 3 || resp.Habits[1].Elapsed.Days != 10 {
		t.Fatalf("unexpected habits %+v", resp.Habits)
	}
}

func TestGetHabit_NotFound(t *testing.T) {
	rr := mockRequest(newTestServer(tracker.Open(storage.NewMemory())), http.MethodGet, "/habits/nope", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d want 404", rr.Code)
	}
}

func TestDeleteHabit(t *testing.T) {
	kv := storage.NewMemory()
	st := tracker.Open(kv)
	h := newTestServer(st)
	qd, _ := habit.ParseDate("2024-06-01")
	a, _ := st.Add("Vaping", "💨", qd)

	rr := mockRequest(h, http.MethodDelete, "/habits/"+a.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("got %d want 204", rr.Code)
	}
	if st.Len() != 0 {
		t.Fatal("habit not removed")
	}

	writes := kv.Writes
	rr = mockRequest(h, http.MethodDelete, "/habits/"+a.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("second delete: got %d want 204", rr.Code)
	}
	if kv.Writes != writes {
		t.Fatal("deleting an unknown id must not rewrite storage")
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestDeleteHabit_ConcurrentCountsOnce(t *testing.T) {
	st := tracker.Open(storage.NewMemory())
	h := newTestServer(st)
	qd, _ := habit.ParseDate("2024-06-01")
	a, _ := st.Add("Gaming", "🎮", qd)

	before := counterValue(t, habitsRemovedTotal)

	var wg sync.WaitGroup
	codes := make([]int, 8)
	for i := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = mockRequest(h, http.MethodDelete, "/habits/"+a.ID, nil).Code
		}()
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusNoContent {
			t.Errorf("request %d: got %d want 204", i, code)
		}
	}
	if got := counterValue(t, habitsRemovedTotal) - before; got != 1 {
		t.Fatalf("removed counter moved by %v, want 1", got)
	}
}

func TestOptions(t *testing.T) {
	rr := mockRequest(newTestServer(tracker.Open(storage.NewMemory())), http.MethodGet, "/options", nil)
	var resp OptionListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(resp.Options) != len(habit.Options) {
		t.Fatalf("got %d options", len(resp.Options))
	}
}

func TestVersionEndpointFormat(t *testing.T) {
	rr := mockRequest(newTestServer(tracker.Open(storage.NewMemory())), http.MethodGet, "/version", nil)
	if !strings.Contains(rr.Body.String(), "version") {
		t.Error("Expected version info in response")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(tracker.Open(storage.NewMemory()))
	mockRequest(h, http.MethodGet, "/habits/", nil)

	rr := mockRequest(h, http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, name := range []string{"quit_http_requests_total", "quit_active_habits"} {
		if !strings.Contains(body, name) {
			t.Errorf("metric %s missing", name)
		}
	}
}
