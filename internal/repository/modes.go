package repository

import (
	"context"
	"sync"

	"github.com/chucky-1/finance-ledger/internal/model"
)

// Modes keeps the pending interaction mode of users. It lives only in memory.
type Modes interface {
	Set(ctx context.Context, userID string, mode model.Mode)
	Get(ctx context.Context, userID string) model.Mode
}

type ModesLocalStorage struct {
	mu sync.RWMutex
	m  map[string]model.Mode
}

func NewModesLocalStorage() *ModesLocalStorage {
	return &ModesLocalStorage{
		m: make(map[string]model.Mode),
	}
}

func (l *ModesLocalStorage) Set(_ context.Context, userID string, mode model.Mode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if mode == model.Idle {
		delete(l.m, userID)
		return
	}
	l.m[userID] = mode
}

// Get returns model.Idle for users without a pending mode
func (l *ModesLocalStorage) Get(_ context.Context, userID string) model.Mode {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.m[userID]
	if !ok {
		return model.Idle
	}
	return v
}
