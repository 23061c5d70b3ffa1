package workbench

import "sync"

// ConsoleLog is the ordered output area below the editor. Each action resets
// it; lines are only appended within one action. It is never persisted.
type ConsoleLog struct {
	mu    sync.Mutex
	lines []string
}

// NewConsoleLog creates an empty console
func NewConsoleLog() *ConsoleLog {
	return &ConsoleLog{}
}

// Reset discards the current lines and starts over with the given ones
func (c *ConsoleLog) Reset(lines ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append([]string(nil), lines...)
}

// Append adds a line
func (c *ConsoleLog) Append(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
}

// Lines returns a copy of the current lines
func (c *ConsoleLog) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}
