package notifications

import "sync"

var (
	defaultCenter *Center
	defaultOnce   sync.Once
)

// Default returns the process-wide Center, creating it on first use.
// Options are applied only by the call that creates it; later calls
// return the same instance and ignore their options.
func Default(opts ...CenterOption) *Center {
	defaultOnce.Do(func() {
		defaultCenter = New(opts...)
	})
	return defaultCenter
}
