// Package ratelimit wraps external provider calls in a token bucket with a
// concurrency cap and exponential backoff, so the resolver never issues
// unmetered bursts against third-party APIs.
package ratelimit

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"sync"
	"time"
)

const (
	defaultCapacity    = 4
	defaultRefillEvery = 300 * time.Millisecond
	defaultMaxInflight = 2

	backoffFloor   = 100 * time.Millisecond
	backoffCeiling = 600 * time.Millisecond
	pollInterval   = 20 * time.Millisecond
)

// TransientError marks a provider failure as retryable. The limiter applies
// backoff before surfacing it; everything else propagates immediately.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient provider error: " + e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err as retryable. A nil err returns nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// Limiter is a token bucket with a concurrency cap. Tokens refill one per
// interval up to capacity; at most maxInflight operations run at once.
type Limiter struct {
	mu          sync.Mutex
	tokens      int
	capacity    int
	refillEach  time.Duration
	lastRefill  time.Time
	inflight    int
	maxInflight int
	backoff     time.Duration

	sleep func(time.Duration) // swapped in tests
	rng   *rand.Rand
}

// Option configures a Limiter.
type Option func(*Limiter)

func WithCapacity(c int) Option { return func(l *Limiter) { l.capacity = c; l.tokens = c } }

func WithRefillInterval(d time.Duration) Option { return func(l *Limiter) { l.refillEach = d } }

func WithMaxInflight(m int) Option { return func(l *Limiter) { l.maxInflight = m } }

// New returns a limiter with the default budget: 4 tokens, one refill every
// 300 ms, at most 2 operations in flight.
func New(opts ...Option) *Limiter {
	l := &Limiter{
		tokens:      defaultCapacity,
		capacity:    defaultCapacity,
		refillEach:  defaultRefillEvery,
		lastRefill:  time.Now(),
		maxInflight: defaultMaxInflight,
		backoff:     backoffFloor,
		sleep:       time.Sleep,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Do runs op once a token is available and the concurrency cap allows it.
// On success the backoff delay resets to its floor. On a retryable failure
// the limiter sleeps a jittered backoff, doubles the delay up to the ceiling,
// and returns the error so the caller can decide whether to try again.
func Do[T any](ctx context.Context, l *Limiter, op func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := l.acquire(ctx); err != nil {
		return zero, err
	}
	out, err := op(ctx)
	l.release()
	if err == nil {
		l.resetBackoff()
		return out, nil
	}
	if retryable(err) {
		l.sleep(l.nextBackoff())
	}
	return zero, err
}

// acquire blocks cooperatively until a token and an inflight slot are both
// available, polling with a short sleep.
func (l *Limiter) acquire(ctx context.Context) error {
	for {
		l.mu.Lock()
		l.refillLocked()
		if l.tokens > 0 && l.inflight < l.maxInflight {
			l.tokens--
			l.inflight++
			l.mu.Unlock()
			return nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (l *Limiter) release() {
	l.mu.Lock()
	l.inflight--
	l.mu.Unlock()
}

func (l *Limiter) refillLocked() {
	now := time.Now()
	if l.refillEach <= 0 {
		return
	}
	for l.tokens < l.capacity && now.Sub(l.lastRefill) >= l.refillEach {
		l.tokens++
		l.lastRefill = l.lastRefill.Add(l.refillEach)
	}
	if l.tokens == l.capacity {
		l.lastRefill = now
	}
}

func (l *Limiter) resetBackoff() {
	l.mu.Lock()
	l.backoff = backoffFloor
	l.mu.Unlock()
}

// nextBackoff returns the current delay with ±20% jitter and doubles the
// stored delay up to the ceiling.
func (l *Limiter) nextBackoff() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	jitter := 0.8 + 0.4*l.rng.Float64()
	d := time.Duration(float64(l.backoff) * jitter)
	l.backoff *= 2
	if l.backoff > backoffCeiling {
		l.backoff = backoffCeiling
	}
	return d
}

// retryable classifies provider failures. Network unreachability, timeouts,
// dropped connections and explicitly transient provider errors earn backoff.
func retryable(err error) bool {
	var te *TransientError
	if errors.As(err, &te) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	var oe *net.OpError
	return errors.As(err, &oe)
}
