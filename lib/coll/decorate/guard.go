package decorate

import (
	"sync"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var plog = logger.GetLogger("decorate")

// Option configures a synchronized wrapper
type Option func(*guard)

// WithLocker makes the wrapper use l instead of its own lock. Readers and
// writers are then serialized on l.
func WithLocker(l sync.Locker) Option {
	return func(g *guard) {
		g.rb = nil
		g.l = l
		plog.Debugf("using caller supplied locker %T", l)
	}
}

// guard is the lock shared by a wrapper and every view derived from it. Exactly
// one of rb and l is set.
type guard struct {
	rb *xsync.RBMutex
	l  sync.Locker
}

func newGuard(opts []Option) *guard {
	g := &guard{rb: xsync.NewRBMutex()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *guard) rlock() *xsync.RToken {
	if g.rb != nil {
		return g.rb.RLock()
	}
	g.l.Lock()
	return nil
}

func (g *guard) runlock(t *xsync.RToken) {
	if g.rb != nil {
		g.rb.RUnlock(t)
		return
	}
	g.l.Unlock()
}

func (g *guard) lock() {
	if g.rb != nil {
		g.rb.Lock()
		return
	}
	g.l.Lock()
}

func (g *guard) unlock() {
	if g.rb != nil {
		g.rb.Unlock()
		return
	}
	g.l.Unlock()
}

func (g *guard) locker() sync.Locker {
	if g.rb != nil {
		return g.rb
	}
	return g.l
}

// read runs fn under the read lock and returns its result
func read[R any](g *guard, fn func() R) R {
	t := g.rlock()
	defer g.runlock(t)
	return fn()
}

// write runs fn under the write lock and returns its results
func write[R any](g *guard, fn func() (R, error)) (R, error) {
	g.lock()
	defer g.unlock()
	return fn()
}
