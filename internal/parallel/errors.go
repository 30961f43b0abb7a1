package parallel

import "sync"

// ErrorCollector records the first non-nil error reported to it under
// concurrent access from many goroutines evaluating independent batch
// expressions; later errors are discarded rather than overwriting it,
// so a caller always sees the earliest failure regardless of goroutine
// scheduling order.
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records err as the collector's error if it is the first non-nil
// error seen. Safe for concurrent use.
func (ec *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	ec.once.Do(func() { ec.err = err })
}

// Err returns the first error recorded, or nil if none was.
func (ec *ErrorCollector) Err() error { return ec.err }
