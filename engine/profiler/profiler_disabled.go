//go:build !profile

package profiler

import "runtime"

// Stubbed no-op versions when the "profile" build tag is not set.

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Dump(path string) error { return nil }

func OpenProfilerGraph() (string, error) { return "", nil }

func Runtime() RuntimeStats { return RuntimeStats{Goroutines: runtime.NumGoroutine()} }
