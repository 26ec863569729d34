// Package signal cancels the program context on SIGINT or SIGTERM.
//
// While the clock TUI runs, the terminal is in raw mode and Ctrl+C arrives
// as a key press instead of SIGINT; SIGTERM from a supervisor still comes
// through here.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Exit codes reported for a signal, following the 128+n shell convention.
const (
	ExitInterrupted = 130
	ExitTerminated  = 143
)

// Handler owns a context that is canceled by the first termination signal.
type Handler struct {
	ctx    context.Context //nolint:containedctx // handler manages the context lifecycle
	cancel context.CancelFunc

	sigs     chan os.Signal
	done     chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	received os.Signal
}

// NewHandler starts listening for SIGINT and SIGTERM. Call Stop when done.
func NewHandler(parent context.Context) *Handler {
	h := newHandler(parent)
	signal.Notify(h.sigs, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()
	return h
}

func newHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	return &Handler{
		ctx:    ctx,
		cancel: cancel,
		sigs:   make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
}

// Context returns the context canceled on the first signal.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Received returns the first signal received, or nil.
func (h *Handler) Received() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// ExitCode maps the received signal to a process exit code; zero if none.
func (h *Handler) ExitCode() int {
	switch h.Received() {
	case nil:
		return 0
	case syscall.SIGTERM:
		return ExitTerminated
	default:
		return ExitInterrupted
	}
}

// Stop stops listening and cancels the context. Safe to call repeatedly.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigs)
		close(h.done)
		h.cancel()
	})
}

// deliver records sig and cancels the context. Only the first signal counts.
func (h *Handler) deliver(sig os.Signal) {
	h.mu.Lock()
	if h.received == nil {
		h.received = sig
	}
	h.mu.Unlock()
	h.cancel()
}

func (h *Handler) listen() {
	for {
		select {
		case <-h.done:
			return
		case <-h.ctx.Done():
			return
		case sig := <-h.sigs:
			h.deliver(sig)
		}
	}
}
