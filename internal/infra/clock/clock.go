// Package clock provides the system implementation of the domain Clock.
package clock

import (
	"time"

	"gamehub/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the system time, truncated to UTC.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
