package apiclient

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brk3/quit/internal/config"
	"github.com/brk3/quit/internal/server"
	"github.com/brk3/quit/internal/storage"
	"github.com/brk3/quit/internal/tracker"
	"github.com/brk3/quit/pkg/habit"
	"github.com/brk3/quit/pkg/versioninfo"
)

func newTestAPI(t *testing.T) (*Client, *tracker.Store) {
	t.Helper()
	st := tracker.Open(storage.NewMemory())
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(server.New(config.Default(), st).WithClock(func() time.Time { return now }).Router())
	t.Cleanup(srv.Close)
	return New(srv.URL + "/"), st
}

func TestListHabits(t *testing.T) {
	c, st := newTestAPI(t)
	qd, _ := habit.ParseDate("2024-05-16")
	a, err := st.Add("Alcohol", "🍺", qd)
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.ListHabits(context.Background())
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(got) != 1 || got[0].Habit != a || got[0].Elapsed.Days != 30 {
		t.Fatalf("got %+v", got)
	}
}

func TestGetHabit(t *testing.T) {
	c, st := newTestAPI(t)
	qd, _ := habit.ParseDate("2024-06-14")
	a, _ := st.Add("Sugar", "🍭", qd)

	got, err := c.GetHabit(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Habit != a || got.Elapsed.Days != 1 {
		t.Fatalf("got %+v", got)
	}

	if _, err := c.GetHabit(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown habit")
	}
}

func TestVersion(t *testing.T) {
	c, _ := newTestAPI(t)
	v, err := c.Version(context.Background())
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v.Version != versioninfo.Version {
		t.Fatalf("got %q want %q", v.Version, versioninfo.Version)
	}
}
