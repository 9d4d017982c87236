// Package scheduler runs recurring tasks. A task started with Every runs once
// per tick until it is cleared. Tasks never run concurrently with each other:
// every tick runs the active tasks one after the other on a single goroutine.
//
// Manual is ticked explicitly and is what tests and the desktop front-end use.
// Loop ticks a Manual in real time and is used by the websocket sessions.
package scheduler

// TaskID identifies a recurring task. The zero value never identifies an
// active task and can be used to mean "no task".
type TaskID uint64

// Scheduler is the interface used by the view to start and stop recurring
// tasks.
type Scheduler interface {
	// Every starts task. It first runs on the tick after it was started.
	Every(task func()) TaskID

	// Clear stops the task. Clearing the zero TaskID, or a task that has
	// already been cleared, does nothing.
	Clear(id TaskID)
}
