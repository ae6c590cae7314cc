package profiler

// RuntimeStats is a point-in-time read of the Go runtime.
type RuntimeStats struct {
	HeapAlloc  uint64
	Mallocs    uint64
	Goroutines int
}
