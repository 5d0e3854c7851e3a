package clients

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestBreaker(cfg CircuitBreakerConfig) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker(cfg)
	cb.now = clock.Now

	return cb, clock
}

func TestCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{})

	assert.Equal(t, 5, cb.cfg.MaxFailures)
	assert.Equal(t, 30*time.Second, cb.cfg.Timeout)
	assert.Equal(t, 1, cb.cfg.HalfOpenLimit)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb, _ := newTestBreaker(CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Minute, HalfOpenLimit: 1})

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State(), "a success resets the streak")

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	tests := []struct {
		name  string
		probe func(cb *CircuitBreaker)
		want  State
	}{
		{
			name: "successful probes close",
			probe: func(cb *CircuitBreaker) {
				cb.RecordSuccess()
				require.True(t, cb.Allow())
				cb.RecordSuccess()
			},
			want: StateClosed,
		},
		{
			name:  "failed probe reopens",
			probe: func(cb *CircuitBreaker) { cb.RecordFailure() },
			want:  StateOpen,
		},
		{
			name:  "released probe stays half-open",
			probe: func(cb *CircuitBreaker) { cb.Release() },
			want:  StateHalfOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock := newTestBreaker(CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Second, HalfOpenLimit: 2})

			cb.RecordFailure()
			require.False(t, cb.Allow())

			clock.Advance(time.Second)
			require.True(t, cb.Allow())
			require.Equal(t, StateHalfOpen, cb.State())

			tt.probe(cb)
			assert.Equal(t, tt.want, cb.State())
		})
	}
}

func TestCircuitBreaker_HalfOpenLimitsProbes(t *testing.T) {
	cb, clock := newTestBreaker(CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Second, HalfOpenLimit: 2})

	cb.RecordFailure()
	clock.Advance(2 * time.Second)

	assert.True(t, cb.Allow())
	assert.True(t, cb.Allow())
	assert.False(t, cb.Allow(), "probe slots exhausted")

	cb.Release()
	assert.True(t, cb.Allow(), "released slot is reusable")
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	cb, _ := newTestBreaker(CircuitBreakerConfig{MaxFailures: 1, Timeout: time.Second, HalfOpenLimit: 1})

	changes := make(chan [2]State, 1)
	cb.OnStateChange(func(from, to State) { changes <- [2]State{from, to} })

	cb.RecordFailure()

	select {
	case got := <-changes:
		assert.Equal(t, [2]State{StateClosed, StateOpen}, got)
	case <-time.After(time.Second):
		t.Fatal("state change callback not invoked")
	}
}

func TestCircuitBreaker_ConcurrentUse(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 50, Timeout: time.Millisecond, HalfOpenLimit: 3})

	var wg sync.WaitGroup
	for i := range 500 {
		wg.Go(func() {
			if !cb.Allow() {
				return
			}

			switch i % 3 {
			case 0:
				cb.RecordSuccess()
			case 1:
				cb.RecordFailure()
			default:
				cb.Release()
			}
		})
	}

	wg.Wait()

	assert.Contains(t, []State{StateClosed, StateOpen, StateHalfOpen}, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
