package tasklist

import "github.com/jsamuelsen11/tasklists-service/internal/domain/task"

// Progress returns the fraction of tasks that are closed, in [0, 1].
//
// It returns nil when tasks is nil (collection not loaded) and also when it
// is empty: a list without tasks has no progress to report.
func Progress(tasks []task.Task) *float64 {
	if len(tasks) == 0 {
		return nil
	}

	var closed int
	for i := range tasks {
		if tasks[i].IsClosed() {
			closed++
		}
	}

	p := float64(closed) / float64(len(tasks))
	return &p
}
