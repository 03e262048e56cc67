package nudge

import (
	"context"

	"github.com/brk3/quit/pkg/habit"
)

type mockClient struct {
	progress []habit.Progress
	err      error
}

func (f *mockClient) ListHabits(ctx context.Context) ([]habit.Progress, error) {
	return f.progress, f.err
}
