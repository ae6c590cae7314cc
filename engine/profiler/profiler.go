//go:build profile

package profiler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/hubastard/grui/engine/logging"
	"go.uber.org/zap"
)

// Init must be called once before the first frame. capacity bounds the
// number of open/close events kept; older ones are overwritten.
// Example: profiler.Init(1 << 16)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	events.reset(capacity)
}

// Start opens a named scope and returns the func that closes it.
func Start(name string) func() {
	if !events.ready.Load() {
		return func() {}
	}
	id := scopes.id(name)
	opened := time.Now().UnixNano()
	events.push(event{at: opened, scope: id, open: true})
	return func() {
		closed := time.Now().UnixNano()
		if closed < opened {
			closed = opened
		}
		events.push(event{at: closed, scope: id})
	}
}

// Dump writes every recorded scope to path in speedscope's evented format.
func Dump(path string) error {
	evs := events.snapshot()
	if len(evs) == 0 {
		return fmt.Errorf("profiler: no events to dump")
	}
	return writeCapture(path, evs, scopes.list())
}

// OpenProfilerGraph dumps into the temp dir and opens speedscope on it.
func OpenProfilerGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "grui.profile.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", path)
	if runtime.GOOS == "windows" {
		if spa, ok := hideWindowAttr().(*syscall.SysProcAttr); ok {
			cmd.SysProcAttr = spa
		}
	}
	if err := cmd.Start(); err != nil {
		logging.Warn("could not launch speedscope", zap.String("file", path), zap.Error(err))
	}
	return path, nil
}

// Runtime returns heap and scheduler counters for the debug overlay.
func Runtime() RuntimeStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeStats{
		HeapAlloc:  m.Alloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
	}
}

type event struct {
	at    int64 // unix nanoseconds
	scope int
	open  bool
}

// ring is a lock-free, fixed-size event log. Writers never block; a snapshot
// returns events in write order.
type ring struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	buf   []event
}

var events ring

func (r *ring) reset(capacity int) {
	r.size = uint64(capacity)
	r.buf = make([]event, r.size)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *ring) push(e event) {
	i := r.next.Add(1) - 1
	r.buf[i%r.size] = e
}

func (r *ring) snapshot() []event {
	n := r.next.Load()
	if n == 0 {
		return nil
	}
	first := uint64(0)
	if n > r.size {
		first = n - r.size
	}
	out := make([]event, 0, n-first)
	for i := first; i < n; i++ {
		out = append(out, r.buf[i%r.size])
	}
	return out
}

// names interns scope names so events carry a small index.
type names struct {
	mu    sync.Mutex
	byKey map[string]int
	order []string
}

var scopes = names{byKey: map[string]int{}}

func (n *names) id(name string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if id, ok := n.byKey[name]; ok {
		return id
	}
	id := len(n.order)
	n.byKey[name] = id
	n.order = append(n.order, name)
	return id
}

func (n *names) list() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.order...)
}
