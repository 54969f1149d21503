package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/auth"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			log.Warn().
				Err(err).
				Str("action", ev.Action).
				Str("entity", ev.Entity).
				Msg("audit write failed")
		}
	}
}

// Dispatch queues ev without blocking. The caller from ctx is used as the
// actor when ev has none. Events are dropped when the queue is full.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil {
		return
	}
	if ev.UserID == nil {
		ev.UserID = auth.UserIDFrom(ctx)
	}

	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
		<-d.done
	})
}
