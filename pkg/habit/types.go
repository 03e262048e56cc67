package habit

import (
	"time"
)

// TrackedHabit is one quit date the user is tracking. Records are never
// edited after creation.
type TrackedHabit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	QuitDate Date   `json:"quitDate"`
	Icon     string `json:"icon"`
}

// Elapsed is the decomposed time since a quit date.
type Elapsed struct {
	Days      int `json:"days"`
	Hours     int `json:"hours"`
	Minutes   int `json:"minutes"`
	Seconds   int `json:"seconds"`
	TotalDays int `json:"total_days"`
}

// Progress is the derived, never persisted view of a habit at a point in time.
type Progress struct {
	Habit   TrackedHabit `json:"habit"`
	Elapsed Elapsed      `json:"elapsed"`
	Message string       `json:"message"`
	AsOf    time.Time    `json:"as_of"`
}
