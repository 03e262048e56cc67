package nudge

import (
	"context"
	"fmt"

	"github.com/brk3/quit/internal/elapsed"
	"github.com/brk3/quit/internal/logger"
)

// Reached is a habit whose day count crossed into a new tier today.
type Reached struct {
	HabitID string
	Name    string
	Icon    string
	Days    int
	Message string
}

// MilestonesReached lists habits whose elapsed day count is exactly the
// first day of a tier.
func MilestonesReached(ctx context.Context, q Querier) ([]Reached, error) {
	progress, err := q.ListHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	var out []Reached
	for _, p := range progress {
		m, ok := elapsed.MilestoneAt(p.Elapsed.TotalDays)
		if !ok {
			continue
		}
		out = append(out, Reached{
			HabitID: p.Habit.ID,
			Name:    p.Habit.Name,
			Icon:    p.Habit.Icon,
			Days:    p.Elapsed.TotalDays,
			Message: m.Message,
		})
	}
	return out, nil
}

// Nudge sends one notification covering every milestone reached today. It
// returns how many habits were included.
func Nudge(ctx context.Context, q Querier, n Notifier) (int, error) {
	reached, err := MilestonesReached(ctx, q)
	if err != nil {
		return 0, err
	}
	if len(reached) == 0 {
		logger.Info("No milestones reached today")
		return 0, nil
	}
	if err := n.SendMilestones(reached); err != nil {
		logger.Error("Failed to send milestone nudge", "count", len(reached), "error", err)
		return 0, fmt.Errorf("send nudge: %w", err)
	}
	logger.Info("Sent milestone nudge", "count", len(reached))
	return len(reached), nil
}
