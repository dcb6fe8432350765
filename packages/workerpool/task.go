package workerpool

// Task is a single call submitted to a pool.
type Task struct {
	params     []interface{}
	resultChan chan interface{}
}

// Call is a task handled as part of a batch.
type Call = Task

// Param returns the parameter with the given index.
func (task *Task) Param(index int) interface{} {
	return task.params[index]
}

// Return hands the result back to the submitter. It must be called exactly once.
func (task *Task) Return(result interface{}) {
	task.resultChan <- result
	close(task.resultChan)
}
