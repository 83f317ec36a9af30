// Package memory keeps soccer records in process memory. It backs STORE=memory
// runs and stands in for Postgres in app and HTTP tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/labzang/soccer/go/internal/models"
)

// table is a thread-safe map of records keyed by an auto-increment id.
// clean drops resolved links so stored rows match what Postgres persists.
type table[T any] struct {
	mu     sync.RWMutex
	name   string
	rows   map[int64]T
	nextID int64
	idOf   func(T) int64
	setID  func(*T, int64)
	keyOf  func(T) *string
	clean  func(*T)
}

func newTable[T any](name string, idOf func(T) int64, setID func(*T, int64), keyOf func(T) *string, clean func(*T)) *table[T] {
	return &table[T]{
		name:   name,
		rows:   make(map[int64]T),
		nextID: 1,
		idOf:   idOf,
		setID:  setID,
		keyOf:  keyOf,
		clean:  clean,
	}
}

func (t *table[T]) insert(ctx context.Context, row T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clean(&row)
	t.setID(&row, t.nextID)
	t.nextID++
	t.rows[t.idOf(row)] = row
	return &row, nil
}

// insertAll stores every row or none of them
func (t *table[T]) insertAll(ctx context.Context, rows []T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]T, len(rows))
	for i, row := range rows {
		t.clean(&row)
		t.setID(&row, t.nextID)
		t.nextID++
		t.rows[t.idOf(row)] = row
		out[i] = row
	}
	return out, nil
}

func (t *table[T]) get(ctx context.Context, id int64) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", t.name, id, models.ErrNotFound)
	}
	return &row, nil
}

// getByKey returns the lowest-id row whose business key equals key
func (t *table[T]) getByKey(ctx context.Context, key string) (*T, error) {
	rows, err := t.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if k := t.keyOf(row); k != nil && *k == key {
			return &row, nil
		}
	}
	return nil, fmt.Errorf("%s %q: %w", t.name, key, models.ErrNotFound)
}

func (t *table[T]) list(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return t.idOf(out[i]) < t.idOf(out[j]) })
	return out, nil
}

func (t *table[T]) replace(ctx context.Context, row T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clean(&row)
	id := t.idOf(row)
	if _, ok := t.rows[id]; !ok {
		return nil, fmt.Errorf("%s %d: %w", t.name, id, models.ErrNotFound)
	}
	t.rows[id] = row
	return &row, nil
}

func (t *table[T]) delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.rows, id)
	return nil
}
