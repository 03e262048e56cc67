package nudge

import (
	"context"
	"time"

	"github.com/brk3/quit/internal/tracker"
	"github.com/brk3/quit/pkg/habit"
)

type Querier interface {
	ListHabits(ctx context.Context) ([]habit.Progress, error)
}

type Notifier interface {
	SendMilestones(reached []Reached) error
}

// LocalQuerier reads progress straight from the local store.
type LocalQuerier struct {
	Store *tracker.Store
	Now   func() time.Time
}

func (q LocalQuerier) ListHabits(_ context.Context) ([]habit.Progress, error) {
	now := time.Now
	if q.Now != nil {
		now = q.Now
	}
	return q.Store.Progress(now()), nil
}
