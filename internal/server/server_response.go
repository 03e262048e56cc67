package server

import (
	"github.com/brk3/quit/pkg/habit"
)

type HabitListResponse struct {
	Habits    []habit.Progress `json:"habits"`
	TotalDays int              `json:"total_days"`
}

type HabitGetResponse struct {
	HabitID  string         `json:"habit_id"`
	Progress habit.Progress `json:"progress"`
}

type OptionListResponse struct {
	Options []habit.Option `json:"options"`
}

// TrackHabitRequest is the body of POST /habits. QuitDate defaults to today.
type TrackHabitRequest struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	QuitDate string `json:"quitDate"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
