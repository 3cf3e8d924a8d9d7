package local

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
	"route-service/pkg/locker"
)

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// Locker - блокировка по ключу в пределах одного процесса.
// Запись о ключе живёт, пока на неё есть хотя бы один держатель или ожидающий.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Locker {
	return &Locker{
		entries: make(map[string]*entry),
	}
}

func (l *Locker) Lock(ctx context.Context, key string) (locker.Unlock, error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	if err := e.sem.Acquire(ctx, 1); err != nil {
		l.release(key, e)
		return nil, fmt.Errorf("%w: %s: %w", locker.ErrNotAcquired, key, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			e.sem.Release(1)
			l.release(key, e)
		})
	}, nil
}

func (l *Locker) release(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// size используется тестами.
func (l *Locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
