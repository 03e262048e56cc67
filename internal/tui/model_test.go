package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brk3/quit/internal/storage"
	"github.com/brk3/quit/internal/tracker"
	"github.com/brk3/quit/pkg/habit"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, daysAgo ...int) (*Model, *tracker.Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	st := tracker.Open(kv)
	for _, d := range daysAgo {
		_, err := st.Add("Smoking", "🚬", habit.DateOf(testNow.AddDate(0, 0, -d)))
		require.NoError(t, err)
	}
	// a long interval keeps timers registered without firing during the test
	m := New(st, time.Hour, clock)
	m.Init()
	t.Cleanup(m.Close)
	return m, st, kv
}

func TestInit_StartsTimerPerHabit(t *testing.T) {
	m, st, _ := newTestModel(t, 3, 10)
	assert.Equal(t, 2, m.sched.Len())
	for _, h := range st.List() {
		assert.True(t, m.sched.Running(h.ID))
	}
}

func TestDelete_CancelsTimer(t *testing.T) {
	m, st, _ := newTestModel(t, 3, 10)
	victim := st.List()[0]

	m.Update(keyPress("d"))
	assert.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), "DELETE SMOKING? y/n")

	m.Update(keyPress("y"))
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 1, st.Len())
	assert.False(t, m.sched.Running(victim.ID))
	assert.Equal(t, 1, m.sched.Len())
}

func TestDelete_Declined(t *testing.T) {
	m, st, kv := newTestModel(t, 3)
	writes := kv.Writes

	m.Update(keyPress("d"))
	m.Update(keyPress("n"))
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, writes, kv.Writes)
	assert.Equal(t, 1, m.sched.Len())
}

func TestRefresh_UpdatesElapsed(t *testing.T) {
	m, st, _ := newTestModel(t, 3)
	h := st.List()[0]

	m.Update(refreshMsg{id: h.ID, now: testNow.Add(90 * time.Minute)})
	e := m.elapsed[h.ID]
	assert.Equal(t, 3, e.Days)
	assert.Equal(t, 13, e.Hours)
	assert.Equal(t, 30, e.Minutes)
}

func TestRefresh_IgnoredAfterDelete(t *testing.T) {
	m, st, _ := newTestModel(t, 3)
	h := st.List()[0]

	m.Update(keyPress("d"))
	m.Update(keyPress("y"))
	m.Update(refreshMsg{id: h.ID, now: testNow})
	_, shown := m.elapsed[h.ID]
	assert.False(t, shown)
}

func TestAdd_CancelLeavesStoreUntouched(t *testing.T) {
	m, st, kv := newTestModel(t)

	m.Update(keyPress("a"))
	assert.Equal(t, modeSelectType, m.mode)
	assert.Equal(t, tracker.SelectingType{}, m.flow.State())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, tracker.Idle{}, m.flow.State())
	assert.Zero(t, st.Len())
	assert.Zero(t, kv.Writes)
}

func TestAdd_SelectThenConfirm(t *testing.T) {
	m, st, _ := newTestModel(t)

	m.Update(keyPress("a"))
	m.selectOption(8) // Gaming
	assert.Equal(t, modeConfirmDate, m.mode)
	assert.Equal(t, tracker.ConfirmingDate{Name: "Gaming", Icon: "🎮"}, m.flow.State())
	assert.Equal(t, "2024-06-15", m.addForm.Date, "date defaults to today")

	m.confirmDate("2024-06-01")
	require.Equal(t, 1, st.Len())
	h := st.List()[0]
	assert.Equal(t, "Gaming", h.Name)
	assert.True(t, m.sched.Running(h.ID))
	assert.Equal(t, 14, m.elapsed[h.ID].Days)
	assert.Equal(t, modeList, m.mode)
}

func TestAdd_FutureDateRejected(t *testing.T) {
	m, st, _ := newTestModel(t)

	m.Update(keyPress("a"))
	m.selectOption(0)
	m.confirmDate("2024-07-01")
	assert.Zero(t, st.Len())
	assert.ErrorIs(t, m.err, tracker.ErrFutureDate)
	assert.Equal(t, tracker.Idle{}, m.flow.State())
	assert.Zero(t, m.sched.Len())
}

func TestView_EmptyState(t *testing.T) {
	m, _, _ := newTestModel(t)
	v := m.View()
	assert.Contains(t, v, "Today is Day One.")
	assert.NotContains(t, v, "TOTAL DAYS RECLAIMED")
}

func TestView_Cards(t *testing.T) {
	m, _, _ := newTestModel(t, 3, 10, 0)
	v := m.View()
	assert.Contains(t, v, "TOTAL DAYS RECLAIMED")
	assert.Contains(t, v, "13")
	assert.Contains(t, v, "EVERY HOUR IS A VICTORY.")
	assert.Contains(t, v, "DAY ZERO. THE WAR BEGINS.")
	assert.Equal(t, 3, strings.Count(v, "SMOKING"))
}

func TestQuit_StopsTimers(t *testing.T) {
	m, _, _ := newTestModel(t, 1, 2)
	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.sched.Len())
}
