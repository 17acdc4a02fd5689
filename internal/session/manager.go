package session

import (
	"context"
	"fmt"

	"github.com/cloud-ru/kredit-schedule-go/internal/collector"
	"github.com/cloud-ru/kredit-schedule-go/internal/validators"
	"github.com/google/uuid"
)

// Manager выдает каждой сессии собственный сборщик и сохраняет его между сообщениями
type Manager struct {
	store  Store
	limits validators.Limits
}

// NewManager создает менеджер сессий поверх хранилища
func NewManager(store Store, limits validators.Limits) *Manager {
	return &Manager{store: store, limits: limits}
}

// Start создает новую сессию со свежим сборщиком
func (m *Manager) Start(ctx context.Context) (string, *collector.Collector, error) {
	id := uuid.NewString()
	c := collector.New(m.limits)
	if err := m.store.Save(ctx, id, c.Snapshot()); err != nil {
		return "", nil, err
	}
	return id, c, nil
}

// Get восстанавливает сборщик сессии
func (m *Manager) Get(ctx context.Context, id string) (*collector.Collector, error) {
	snap, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := collector.Restore(m.limits, snap)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	return c, nil
}

// Put сохраняет сборщик; завершенная сессия удаляется
func (m *Manager) Put(ctx context.Context, id string, c *collector.Collector) error {
	if c.State() == collector.Complete {
		return m.store.Delete(ctx, id)
	}
	return m.store.Save(ctx, id, c.Snapshot())
}

// Discard удаляет сессию
func (m *Manager) Discard(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}
