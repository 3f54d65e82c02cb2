package views

import "sync/atomic"

// loader is embedded by every view. Loading reports whether a Load is in
// flight, for callers that render a placeholder meanwhile.
type loader struct {
	loading atomic.Bool
}

func (l *loader) Loading() bool { return l.loading.Load() }

// begin marks a load as started and returns the func that ends it.
func (l *loader) begin() func() {
	l.loading.Store(true)
	return func() { l.loading.Store(false) }
}
