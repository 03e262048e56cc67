package nudge

type mockNotifier struct {
	called  bool
	reached []Reached
	err     error
}

func (m *mockNotifier) SendMilestones(reached []Reached) error {
	m.called = true
	m.reached = reached
	return m.err
}
