package logging

import (
	"github.com/charmbracelet/log"
	"github.com/robby/pickforme/internal/store"
)

// StoreEvents returns a store observer that logs every mutation.
func StoreEvents(logger *log.Logger) func(store.Event) {
	return func(e store.Event) {
		fields := []any{"event", string(e.Kind), "state", e.State.String()}
		if e.Option != nil {
			fields = append(fields, "id", e.Option.ID, "text", e.Option.Text, "color", string(e.Option.Color))
		}

		switch e.Kind {
		case store.EventPickResolved, store.EventCleared:
			logger.Info("store "+string(e.Kind), fields...)
		default:
			logger.Debug("store "+string(e.Kind), fields...)
		}
	}
}
