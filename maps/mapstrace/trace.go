// Package mapstrace is a small test helper for following frame traffic
// while a test exercises the codec - never imported by maps itself, only by
// its _test.go files. Adapted from the teacher's Clog (clog/clog.go): same
// enable/disable-by-atomic-flag shape, trimmed to the one level tests need.
package mapstrace

import (
	"sync/atomic"
	"testing"
)

// Tracer records a line per frame built or parsed, gated by an atomic flag
// so a test can toggle it without a mutex.
type Tracer struct {
	t   testing.TB
	has uint32
}

// New returns a Tracer bound to t, logging disabled until Enable is called.
func New(t testing.TB) *Tracer {
	return &Tracer{t: t}
}

// Enable turns tracing on or off.
func (tr *Tracer) Enable(on bool) {
	if on {
		atomic.StoreUint32(&tr.has, 1)
	} else {
		atomic.StoreUint32(&tr.has, 0)
	}
}

// Logf records a trace line if tracing is enabled.
func (tr *Tracer) Logf(format string, v ...interface{}) {
	if atomic.LoadUint32(&tr.has) == 1 {
		tr.t.Logf(format, v...)
	}
}
