// Package session хранит незавершенные сборщики параметров между сообщениями.
// Каждая сессия владеет своим снимком; устаревшие сессии отбрасываются по TTL.
package session

import (
	"context"
	"errors"

	"github.com/cloud-ru/kredit-schedule-go/internal/collector"
)

// ErrNotFound сессия не существует или истекла
var ErrNotFound = errors.New("session not found")

// Store хранилище снимков сборщиков
type Store interface {
	Load(ctx context.Context, id string) (collector.Snapshot, error)
	Save(ctx context.Context, id string, snap collector.Snapshot) error
	Delete(ctx context.Context, id string) error
}
