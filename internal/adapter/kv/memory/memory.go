// Package memory implements kv.Backend with an in-process map.
// It is used by unit tests and for local development.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
)

// Backend is a goroutine-safe in-memory kv.Backend.
type Backend struct {
	mu    sync.RWMutex
	parts map[string]map[string]map[string]any // pk -> sk -> attrs
}

// New creates an empty backend.
func New() *Backend {
	return &Backend{parts: make(map[string]map[string]map[string]any)}
}

var _ kv.Backend = (*Backend)(nil)

func (b *Backend) Put(ctx context.Context, item kv.Item, cond kv.Condition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if err := cond.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current, exists := b.lookup(item.Key)
	if !check(cond, current, exists) {
		return kv.ErrConditionFailed
	}

	part, ok := b.parts[item.Key.PK]
	if !ok {
		part = make(map[string]map[string]any)
		b.parts[item.Key.PK] = part
	}
	part[item.Key.SK] = kv.CloneAttrs(item.Attrs)
	return nil
}

func (b *Backend) Get(ctx context.Context, key kv.Key) (kv.Item, error) {
	if err := ctx.Err(); err != nil {
		return kv.Item{}, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	attrs, ok := b.lookup(key)
	if !ok {
		return kv.Item{}, kv.ErrItemNotFound
	}
	return kv.Item{Key: key, Attrs: kv.CloneAttrs(attrs)}, nil
}

// Query fetches one item past the limit so the last page reports no LastKey.
func (b *Backend) Query(ctx context.Context, q kv.Query) (kv.Page, error) {
	if err := ctx.Err(); err != nil {
		return kv.Page{}, err
	}
	if q.Limit < 1 {
		return kv.Page{}, fmt.Errorf("memory: query limit must be positive (got %d)", q.Limit)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	part := b.parts[q.PK]
	sks := make([]string, 0, len(part))
	for sk := range part {
		if !strings.HasPrefix(sk, q.SKPrefix) {
			continue
		}
		if q.StartAfter != nil && sk <= q.StartAfter.SK {
			continue
		}
		sks = append(sks, sk)
	}
	slices.Sort(sks)

	page := kv.Page{Items: []kv.Item{}}
	for i, sk := range sks {
		if i == q.Limit {
			last := page.Items[len(page.Items)-1].Key
			page.LastKey = &last
			break
		}
		page.Items = append(page.Items, kv.Item{
			Key:   kv.Key{PK: q.PK, SK: sk},
			Attrs: kv.CloneAttrs(part[sk]),
		})
	}
	return page, nil
}

func (b *Backend) Update(ctx context.Context, key kv.Key, u kv.Update) (kv.Item, error) {
	if err := ctx.Err(); err != nil {
		return kv.Item{}, err
	}
	if err := u.Validate(); err != nil {
		return kv.Item{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current, exists := b.lookup(key)
	cond := u.Condition
	cond.MustExist = true
	if !check(cond, current, exists) {
		return kv.Item{}, kv.ErrConditionFailed
	}

	next := kv.CloneAttrs(current)
	for name, v := range kv.CloneAttrs(u.Set) {
		next[name] = v
	}
	for name, delta := range u.Add {
		next[name] = kv.Item{Attrs: current}.Int(name) + delta
	}
	b.parts[key.PK][key.SK] = next

	return kv.Item{Key: key, Attrs: kv.CloneAttrs(next)}, nil
}

func (b *Backend) Delete(ctx context.Context, key kv.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if part, ok := b.parts[key.PK]; ok {
		delete(part, key.SK)
		if len(part) == 0 {
			delete(b.parts, key.PK)
		}
	}
	return nil
}

func (b *Backend) Ping(ctx context.Context) error {
	return ctx.Err()
}

// lookup must be called with b.mu held.
func (b *Backend) lookup(key kv.Key) (map[string]any, bool) {
	attrs, ok := b.parts[key.PK][key.SK]
	return attrs, ok
}

func check(cond kv.Condition, current map[string]any, exists bool) bool {
	switch {
	case cond.MustNotExist:
		return !exists
	case cond.AttrEquals != nil:
		return exists && kv.Equal(current[cond.AttrEquals.Name], cond.AttrEquals.Value)
	case cond.MustExist:
		return exists
	default:
		return true
	}
}
