package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

const (
	ActionAppointmentCreated       = "appointment_created"
	ActionAppointmentConflict      = "appointment_conflict"
	ActionAppointmentStatusChanged = "appointment_status_changed"

	EntityAppointment = "appointment"
)

type Event struct {
	RequestID string
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Dispatcher hands events to a single background worker through a bounded
// queue. Dispatch never blocks.
type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, size int, log zerolog.Logger) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch reports whether the event was queued. A full queue or a closed
// dispatcher drops the event.
func (d *Dispatcher) Dispatch(ev Event) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return false
	}

	select {
	case d.queue <- ev:
		return true
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
		return false
	}
}

// Close stops accepting events and waits for queued ones to be written,
// or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
