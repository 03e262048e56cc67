package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/brk3/quit/internal/elapsed"
	"github.com/brk3/quit/internal/logger"
	"github.com/brk3/quit/pkg/habit"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		m.applyRefresh(msg)
		return m, m.waitForRefresh()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	switch m.mode {
	case modeSelectType, modeConfirmDate:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m.updateList(msg)
}

func (m *Model) applyRefresh(msg refreshMsg) {
	// a tick can still be queued for a card that was just deleted
	if _, shown := m.elapsed[msg.id]; !shown {
		return
	}
	h, ok := m.store.Get(msg.id)
	if !ok {
		return
	}
	m.elapsed[msg.id] = elapsed.ForHabit(h, msg.now)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m.quit()
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Add):
		return m, m.beginAdd()
	case key.Matches(km, m.keys.Delete):
		if len(m.habits) > 0 {
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

func (m *Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Yes):
		m.removeSelected()
		m.mode = modeList
	case key.Matches(km, m.keys.No):
		m.mode = modeList
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		m.cancelAdd()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.mode == modeSelectType {
			return m, m.selectOption(m.addForm.Option)
		}
		m.confirmDate(m.addForm.Date)
		return m, nil
	case huh.StateAborted:
		m.cancelAdd()
		return m, nil
	}
	return m, cmd
}

func (m *Model) beginAdd() tea.Cmd {
	m.err = nil
	m.flow.Begin()
	m.addForm = &addFormModel{}
	m.form = newSelectForm(m.addForm)
	m.mode = modeSelectType
	return m.form.Init()
}

func (m *Model) selectOption(i int) tea.Cmd {
	if i < 0 || i >= len(habit.Options) {
		m.cancelAdd()
		return nil
	}
	o := habit.Options[i]
	if err := m.flow.SelectOption(o); err != nil {
		m.err = err
		m.cancelAdd()
		return nil
	}
	m.form = newDateForm(m.addForm, o, m.flow.Today())
	m.mode = modeConfirmDate
	return m.form.Init()
}

func (m *Model) confirmDate(s string) {
	defer m.endAdd()

	d, err := habit.ParseDate(s)
	if err != nil {
		m.err = err
		m.flow.Cancel()
		return
	}
	h, err := m.flow.Confirm(d)
	if err != nil {
		logger.Warn("Failed to add habit", "error", err)
		m.err = err
		m.flow.Cancel()
		return
	}
	m.habits = append(m.habits, h)
	m.elapsed[h.ID] = elapsed.ForHabit(h, m.now())
	m.cursor = len(m.habits) - 1
	m.startTimer(h.ID)
}

func (m *Model) cancelAdd() {
	m.flow.Cancel()
	m.endAdd()
}

func (m *Model) endAdd() {
	m.form = nil
	m.addForm = nil
	m.mode = modeList
}

func (m *Model) removeSelected() {
	if m.cursor < 0 || m.cursor >= len(m.habits) {
		return
	}
	h := m.habits[m.cursor]
	// a habit already gone from the store still leaves the view
	if _, err := m.store.Remove(h.ID); err != nil {
		m.err = err
		return
	}
	m.sched.Cancel(h.ID)
	delete(m.elapsed, h.ID)
	m.habits = slices.Delete(m.habits, m.cursor, m.cursor+1)
	if m.cursor >= len(m.habits) {
		m.cursor = max(0, len(m.habits)-1)
	}
}
