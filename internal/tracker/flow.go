package tracker

import (
	"errors"
	"strings"
	"time"

	"github.com/brk3/quit/pkg/habit"
)

var (
	ErrFutureDate   = errors.New("quit date cannot be in the future")
	ErrNoSelection  = errors.New("no habit type selected")
	ErrNotSelecting = errors.New("not choosing a habit type")
)

// FlowState is one of Idle, SelectingType or ConfirmingDate.
type FlowState interface {
	flowState()
}

type Idle struct{}

type SelectingType struct{}

// ConfirmingDate holds the chosen habit type until a date is confirmed.
type ConfirmingDate struct {
	Name string
	Icon string
}

func (Idle) flowState()           {}
func (SelectingType) flowState()  {}
func (ConfirmingDate) flowState() {}

// AddFlow walks the user from choosing a habit type to confirming its quit
// date. Nothing is written until Confirm succeeds.
type AddFlow struct {
	store *Store
	now   func() time.Time
	state FlowState
}

func NewAddFlow(store *Store, now func() time.Time) *AddFlow {
	if now == nil {
		now = time.Now
	}
	return &AddFlow{store: store, now: now, state: Idle{}}
}

func (f *AddFlow) State() FlowState {
	return f.state
}

// Today is the latest date Confirm accepts.
func (f *AddFlow) Today() habit.Date {
	return habit.DateOf(f.now())
}

// Begin opens type selection, dropping any pending choice.
func (f *AddFlow) Begin() {
	f.state = SelectingType{}
}

func (f *AddFlow) Select(name, icon string) error {
	if _, ok := f.state.(SelectingType); !ok {
		return ErrNotSelecting
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	f.state = ConfirmingDate{Name: name, Icon: icon}
	return nil
}

// SelectOption selects a catalog entry.
func (f *AddFlow) SelectOption(o habit.Option) error {
	return f.Select(o.Name, o.Icon)
}

// Confirm adds the pending habit with quit date d. A failed Confirm keeps
// the pending choice so the date can be corrected.
func (f *AddFlow) Confirm(d habit.Date) (habit.TrackedHabit, error) {
	pending, ok := f.state.(ConfirmingDate)
	if !ok {
		return habit.TrackedHabit{}, ErrNoSelection
	}
	if d.IsZero() {
		return habit.TrackedHabit{}, ErrInvalidDate
	}
	if d.After(f.Today()) {
		return habit.TrackedHabit{}, ErrFutureDate
	}

	h, err := f.store.Add(pending.Name, pending.Icon, d)
	if err != nil {
		return habit.TrackedHabit{}, err
	}
	f.state = Idle{}
	return h, nil
}

// Cancel discards any pending choice.
func (f *AddFlow) Cancel() {
	f.state = Idle{}
}
