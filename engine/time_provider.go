package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider is the clock read by the scheduler, typewriter and page animations
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the wall clock
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a clock that only moves when advanced
// Headless snapshots and tests step it one frame interval at a time
type MockTimeProvider struct {
	base    time.Time
	elapsed atomic.Int64
}

// NewMockTimeProvider creates a clock stopped at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.elapsed.Load()))
}

// Advance moves the clock forward by d; negative durations are ignored
func (m *MockTimeProvider) Advance(d time.Duration) {
	if d > 0 {
		m.elapsed.Add(int64(d))
	}
}
