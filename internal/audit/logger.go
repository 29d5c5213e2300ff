package audit

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

// Sink persists audit records somewhere outside the request path.
type Sink interface {
	Write(ctx context.Context, log models.AuditLog) error
}

type Logger struct {
	sinks []Sink
	now   func() time.Time
}

func New(now func() time.Time, sinks ...Sink) *Logger {
	return &Logger{sinks: sinks, now: now}
}

// Log writes to every sink; one failing sink does not stop the others.
func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		ID:        uuid.NewString(),
		RequestID: ev.RequestID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: l.now(),
	}

	var errs []error
	for _, s := range l.sinks {
		if err := s.Write(ctx, log); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
