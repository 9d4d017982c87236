package scheduler

// Manual is a Scheduler that runs tasks only when Tick is called.
//
// The zero value is ready to use. A Manual is not safe for concurrent use.
type Manual struct {
	next  TaskID
	tasks map[TaskID]func()

	// task ids in start order
	order []TaskID

	ticks uint64
}

// Every implements the Scheduler interface.
func (m *Manual) Every(task func()) TaskID {
	if m.tasks == nil {
		m.tasks = make(map[TaskID]func())
	}
	m.next++
	m.tasks[m.next] = task
	m.order = append(m.order, m.next)
	return m.next
}

// Clear implements the Scheduler interface.
func (m *Manual) Clear(id TaskID) {
	if _, ok := m.tasks[id]; !ok {
		return
	}
	delete(m.tasks, id)
	for i := range m.order {
		if m.order[i] == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Tick runs every active task once, in the order they were started. Tasks
// started during the tick first run on the next tick. Tasks cleared during
// the tick do not run again.
func (m *Manual) Tick() {
	m.ticks++

	order := make([]TaskID, len(m.order))
	copy(order, m.order)

	for _, id := range order {
		if task, ok := m.tasks[id]; ok {
			task()
		}
	}
}

// Advance calls Tick n times.
func (m *Manual) Advance(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

// Active returns the number of running tasks.
func (m *Manual) Active() int {
	return len(m.tasks)
}

// Ticks returns the number of times Tick has been called.
func (m *Manual) Ticks() uint64 {
	return m.ticks
}
