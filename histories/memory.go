package histories

import (
	"context"
	"slices"
	"sync"
)

type Memory struct {
	mu      sync.Mutex
	entries []Entry
	nextID  int64
}

var _ Store = new(Memory)

func NewMemory() *Memory {
	return &Memory{
		nextID: 1,
	}
}

func (m *Memory) Append(ctx context.Context, entry Entry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = m.nextID
	m.nextID++
	m.entries = append(m.entries, entry)
	return entry.ID, nil
}

func (m *Memory) Recent(ctx context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	ret := slices.Clone(entries)
	slices.Reverse(ret)
	return ret, nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func (m *Memory) Close() error {
	return nil
}
