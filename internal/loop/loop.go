// Package loop runs a step repeatedly on a fixed interval. Each run is
// armed as a one-shot timer only after the previous step returns, so steps
// never overlap and the stack never grows.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/constants"
)

// Step is one unit of repeated work.
type Step func() error

type options struct {
	interval  time.Duration
	scheduler clock.Scheduler
	logger    zerolog.Logger
	policy    string
}

// Option configures Start.
type Option func(*options)

// WithInterval sets the delay between the end of one step and the start of
// the next. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithScheduler sets the scheduler used to arm the next step.
func WithScheduler(s clock.Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithLogger sets the logger for failed steps.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithErrorPolicy sets what a failing step does to the loop:
// constants.ErrorPolicyContinue logs and keeps going, constants.ErrorPolicyStop
// ends the loop with that error.
func WithErrorPolicy(policy string) Option {
	return func(o *options) { o.policy = policy }
}

// Handle controls a running loop.
type Handle struct {
	step  Step
	opts  options
	ticks atomic.Int64
	done  chan struct{}

	mu      sync.Mutex
	timer   clock.Timer
	running bool
	stopped bool
	err     error
}

// Start runs step once right away and then every interval until Stop is
// called, ctx is canceled or, under the stop policy, a step fails.
func Start(ctx context.Context, step Step, opts ...Option) *Handle {
	o := options{
		interval:  constants.DefaultTickInterval,
		scheduler: clock.RealScheduler{},
		logger:    zerolog.Nop(),
		policy:    constants.ErrorPolicyContinue,
	}
	for _, opt := range opts {
		opt(&o)
	}

	h := &Handle{
		step: step,
		opts: o,
		done: make(chan struct{}),
	}

	if err := ctx.Err(); err != nil {
		h.halt(err)
		return h
	}

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				h.halt(ctx.Err())
			case <-h.done:
			}
		}()
	}

	h.run()
	return h
}

func (h *Handle) run() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.running = true
	h.mu.Unlock()

	err := h.step()
	n := h.ticks.Add(1)

	if err != nil && h.opts.policy != constants.ErrorPolicyStop {
		h.opts.logger.Warn().Err(err).Int64("tick", n).Msg("step failed, continuing")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = false
	if err != nil && h.opts.policy == constants.ErrorPolicyStop && !h.stopped {
		h.opts.logger.Error().Err(err).Int64("tick", n).Msg("step failed, stopping")
		h.stopped = true
		h.err = err
	}
	if h.stopped {
		close(h.done)
		return
	}
	h.timer = h.opts.scheduler.AfterFunc(h.opts.interval, h.run)
}

func (h *Handle) halt(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}
	h.stopped = true
	h.err = err
	if h.timer != nil {
		h.timer.Stop()
	}
	// a step in flight closes done when it returns
	if !h.running {
		close(h.done)
	}
}

// Stop cancels the pending run. Calling it more than once is safe.
func (h *Handle) Stop() {
	h.halt(nil)
}

// Done is closed once the loop has ended and no step is running.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Ticks returns the number of completed steps.
func (h *Handle) Ticks() int64 {
	return h.ticks.Load()
}

// Err returns what ended the loop: nil after Stop, the context error after
// cancellation, or the failing step's error under the stop policy.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Interval returns the configured interval.
func (h *Handle) Interval() time.Duration {
	return h.opts.interval
}
