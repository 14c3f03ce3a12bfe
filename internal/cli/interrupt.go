package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler cancels a context on SIGINT/SIGTERM and tells the user
// that recorded expenses are discarded.
type InterruptHandler struct {
	writer      io.Writer
	cancelFunc  context.CancelFunc
	sigChan     chan os.Signal
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stderr
	}
	return &InterruptHandler{
		writer: writer,
	}
}

// HandleInterrupts returns a context that is canceled on interrupt. Call Stop
// once the context is no longer needed.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	h.cancelFunc = cancel

	h.sigChan = make(chan os.Signal, 1)
	signal.Notify(h.sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case _, ok := <-h.sigChan:
			if ok {
				h.interrupt()
			}
		case <-ctx.Done():
		}
	}()

	return ctx
}

// interrupt records the interruption once and cancels the context.
func (h *InterruptHandler) interrupt() {
	h.mu.Lock()
	if !h.interrupted {
		h.interrupted = true
		msg := "\n" + FormatWarning("Interrupted. Recorded expenses were not saved.") + "\n"
		if _, err := fmt.Fprint(h.writer, msg); err != nil {
			// Best effort - we're shutting down anyway
			fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
		}
	}
	h.mu.Unlock()

	if h.cancelFunc != nil {
		h.cancelFunc()
	}
}

// Stop releases the signal subscription and cancels the context.
func (h *InterruptHandler) Stop() {
	if h.sigChan != nil {
		signal.Stop(h.sigChan)
	}
	if h.cancelFunc != nil {
		h.cancelFunc()
	}
}

// WasInterrupted returns true if the process was interrupted.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
