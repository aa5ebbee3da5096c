// Package service defines domain service interfaces implemented by the infra layer.
package service

import "time"

// Clock supplies the current time. Injected so discount-window and
// purchase-timestamp logic is testable against a fixed instant.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}
