// Package signal stops the headless clock loop on SIGINT or SIGTERM.
//
// It imports no other clockface package so any command can use it.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

// Handler wraps a context and cancels it when an interrupt arrives.
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler owns the context lifecycle
	cancel      context.CancelFunc
	logger      zerolog.Logger
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal

	mu       sync.Mutex
	received os.Signal
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger logs the received signal.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// NewHandler listens for SIGINT and SIGTERM until Stop is called. The
// first signal cancels Context and closes Interrupted.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	loop.Start(h.Context(), step)
func NewHandler(parent context.Context, opts ...Option) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		logger:      zerolog.Nop(),
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		sigChan:     make(chan os.Signal, 1),
	}
	for _, opt := range opts {
		opt(h)
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context is canceled by the first signal, by Stop or by the parent.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted is closed when a signal arrives.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Signal returns the signal that interrupted the handler, or nil.
func (h *Handler) Signal() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// Stop releases the signal subscription and cancels the context. It is
// safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

func (h *Handler) handleSignal(sig os.Signal) {
	h.once.Do(func() {
		h.mu.Lock()
		h.received = sig
		h.mu.Unlock()

		h.logger.Info().Stringer("signal", sig).Msg("interrupt received, stopping clock")
		h.cancel()
		close(h.interrupted)
	})
}

// listen drains the channel until Stop or cancellation; only the first
// signal has an effect.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handleSignal(sig)
		}
	}
}
