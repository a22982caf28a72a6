package orchestrator

// ExecutionLog accumulates the state-mutating commands a run actually
// executed, in execution order. Commands skipped under dry-run are never
// recorded.
type ExecutionLog struct {
	commands []string
}

// NewExecutionLog creates an empty log.
func NewExecutionLog() *ExecutionLog {
	return &ExecutionLog{}
}

// Record appends an executed command.
func (l *ExecutionLog) Record(command string) {
	l.commands = append(l.commands, command)
}

// Commands returns the executed commands in order.
func (l *ExecutionLog) Commands() []string {
	return l.commands
}
