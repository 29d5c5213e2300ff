package appointment

import "github.com/BruksfildServices01/doctor-booking/internal/audit"

// EventDispatcher é implementado por *audit.Dispatcher.
type EventDispatcher interface {
	Dispatch(ev audit.Event) bool
}
