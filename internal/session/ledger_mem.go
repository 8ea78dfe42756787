package session

import (
	"context"
	"sync"
)

type memLedger struct {
	mu       sync.RWMutex
	balances map[string]int64
}

// NewMemoryLedger 内存版，测试和单机开发用
func NewMemoryLedger() Ledger {
	return &memLedger{balances: make(map[string]int64)}
}

func (l *memLedger) Get(ctx context.Context, id string) (int64, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	bal, ok := l.balances[id]
	return bal, ok, nil
}

func (l *memLedger) Set(ctx context.Context, id string, balance int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[id] = balance
	return nil
}
