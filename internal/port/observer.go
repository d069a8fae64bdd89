package port

import "time"

// ObserveFunc receives the wall time spent in a named operation.
type ObserveFunc func(op string, d time.Duration)
