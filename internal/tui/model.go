// Package tui is the live terminal view: one card per habit, each refreshed
// by its own timer.
package tui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/brk3/quit/internal/elapsed"
	"github.com/brk3/quit/internal/ticker"
	"github.com/brk3/quit/internal/tracker"
	"github.com/brk3/quit/pkg/habit"
)

type mode int

const (
	modeList mode = iota
	modeSelectType
	modeConfirmDate
	modeConfirmDelete
)

// refreshMsg is sent by a card's timer.
type refreshMsg struct {
	id  string
	now time.Time
}

type addFormModel struct {
	Option int
	Date   string
}

type Model struct {
	store   *tracker.Store
	flow    *tracker.AddFlow
	sched   *ticker.Scheduler
	refresh chan refreshMsg
	now     func() time.Time

	keys KeyMap
	help help.Model

	habits  []habit.TrackedHabit
	elapsed map[string]habit.Elapsed
	cursor  int
	mode    mode
	form    *huh.Form
	addForm *addFormModel
	err     error
	width   int

	closeOnce sync.Once
}

func New(store *tracker.Store, interval time.Duration, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}
	m := &Model{
		store:   store,
		flow:    tracker.NewAddFlow(store, now),
		sched:   ticker.New(interval),
		refresh: make(chan refreshMsg, 16),
		now:     now,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		elapsed: map[string]habit.Elapsed{},
	}
	at := now()
	for _, h := range store.List() {
		m.habits = append(m.habits, h)
		m.elapsed[h.ID] = elapsed.ForHabit(h, at)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	for _, h := range m.habits {
		m.startTimer(h.ID)
	}
	return m.waitForRefresh()
}

func (m *Model) startTimer(id string) {
	ch := m.refresh
	m.sched.Start(id, func(now time.Time) {
		select {
		case ch <- refreshMsg{id: id, now: now}:
		default:
			// the view is behind; the next tick catches up
		}
	})
}

func (m *Model) waitForRefresh() tea.Cmd {
	ch := m.refresh
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Close stops every card timer. Safe to call more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.sched.Stop()
		close(m.refresh)
	})
}

// Run shows the live view until the user quits or ctx is done.
func Run(ctx context.Context, store *tracker.Store, interval time.Duration) error {
	m := New(store, interval, time.Now)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
