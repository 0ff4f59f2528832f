package runner

import (
	"context"
)

// Mock implements Runner for testing
type Mock struct {
	ExitCodes     map[string]int    // command line -> exit status (default 0)
	Outputs       map[string]string // command line -> first stdout line
	Errors        map[string]error  // command line -> start failure
	RecordedCalls []string          // every line passed to Run or FirstLine, in order
}

// NewMock creates a mock runner
func NewMock() *Mock {
	return &Mock{
		ExitCodes: make(map[string]int),
		Outputs:   make(map[string]string),
		Errors:    make(map[string]error),
	}
}

// Run records the call and returns the mocked exit status
func (m *Mock) Run(ctx context.Context, line string) (int, error) {
	m.RecordedCalls = append(m.RecordedCalls, line)
	if err, ok := m.Errors[line]; ok {
		return -1, err
	}
	return m.ExitCodes[line], nil
}

// FirstLine records the call and returns the mocked output
func (m *Mock) FirstLine(ctx context.Context, line string) (string, bool, error) {
	m.RecordedCalls = append(m.RecordedCalls, line)
	if err, ok := m.Errors[line]; ok {
		return "", false, err
	}
	out, ok := m.Outputs[line]
	return out, ok, nil
}
