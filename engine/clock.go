package engine

import (
	"sync"
	"time"
)

// Clock abstracts time so the loop can run against a mock in tests
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock uses the system monotonic clock
type RealClock struct{}

// NewRealClock creates a wall clock
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time        { return time.Now() }
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }

// MockClock is a controllable clock; Sleep advances time instantly and records the duration
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration
}

// NewMockClock creates a mock clock at startTime
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{currentTime: startTime}
}

func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Sleep records d and advances the clock by it without blocking
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	m.currentTime = m.currentTime.Add(d)
}

// Sleeps returns a copy of all recorded sleep durations
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.sleeps...)
}
