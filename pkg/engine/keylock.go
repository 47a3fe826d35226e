package engine

import "sync"

// keyLock hands out one mutex per cache key so concurrent misses on the
// same cold key collapse into a single upstream fetch. The key space is
// bounded by the assets and addresses a process actually touches, so locks
// are kept for the process lifetime rather than swept.
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*sync.Mutex)}
}

func (l *keyLock) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
