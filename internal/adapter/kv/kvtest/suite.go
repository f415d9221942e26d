// Package kvtest holds the conformance suite every kv.Backend must pass.
package kvtest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
)

// Factory returns a backend for one subtest. Backends may be shared between
// subtests; every subtest writes to its own partition.
type Factory func(t *testing.T) kv.Backend

// RunBackendSuite runs the conformance checks against backends built by newBackend.
func RunBackendSuite(t *testing.T, newBackend Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, b kv.Backend, pk string)
	}{
		{"PutGet", testPutGet},
		{"GetMissing", testGetMissing},
		{"PutOverwrites", testPutOverwrites},
		{"PutMustNotExist", testPutMustNotExist},
		{"PutMustExist", testPutMustExist},
		{"QueryOrderAndPrefix", testQueryOrderAndPrefix},
		{"QueryPagination", testQueryPagination},
		{"QueryPartitionIsolation", testQueryPartitionIsolation},
		{"QueryEmpty", testQueryEmpty},
		{"UpdateSetAndAdd", testUpdateSetAndAdd},
		{"UpdateMissing", testUpdateMissing},
		{"UpdateAttrEquals", testUpdateAttrEquals},
		{"UpdateInvalidName", testUpdateInvalidName},
		{"UpdateConcurrentAdd", testUpdateConcurrentAdd},
		{"DeleteIdempotent", testDeleteIdempotent},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackend(t)
			tt.fn(t, b, "P#"+uuid.NewString())
		})
	}
}

func item(pk, sk string, attrs map[string]any) kv.Item {
	return kv.Item{Key: kv.Key{PK: pk, SK: sk}, Attrs: attrs}
}

func testPutGet(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	in := item(pk, "N#1", map[string]any{
		"title":   "hello",
		"version": int64(1),
		"tags":    []string{"a", "b"},
		"empty":   []string{},
	})
	require.NoError(t, b.Put(ctx, in, kv.Condition{}))

	got, err := b.Get(ctx, in.Key)
	require.NoError(t, err)
	assert.Equal(t, in.Key, got.Key)
	assert.Equal(t, "hello", got.String("title"))
	assert.Equal(t, int64(1), got.Int("version"))
	assert.Equal(t, []string{"a", "b"}, got.Strings("tags"))
	assert.Equal(t, []string{}, got.Strings("empty"))
	assert.NotContains(t, got.Attrs, kv.AttrPK)
	assert.NotContains(t, got.Attrs, kv.AttrSK)
}

func testGetMissing(t *testing.T, b kv.Backend, pk string) {
	_, err := b.Get(context.Background(), kv.Key{PK: pk, SK: "N#missing"})
	assert.True(t, errors.Is(err, kv.ErrItemNotFound), "got %v", err)
}

func testPutOverwrites(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	require.NoError(t, b.Put(ctx, item(pk, "N#1", map[string]any{"title": "one", "extra": "x"}), kv.Condition{}))
	require.NoError(t, b.Put(ctx, item(pk, "N#1", map[string]any{"title": "two"}), kv.Condition{}))

	got, err := b.Get(ctx, kv.Key{PK: pk, SK: "N#1"})
	require.NoError(t, err)
	assert.Equal(t, "two", got.String("title"))
	assert.NotContains(t, got.Attrs, "extra")
}

func testPutMustNotExist(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	first := item(pk, "N#1", map[string]any{"title": "first"})
	require.NoError(t, b.Put(ctx, first, kv.Condition{MustNotExist: true}))

	err := b.Put(ctx, item(pk, "N#1", map[string]any{"title": "second"}), kv.Condition{MustNotExist: true})
	assert.True(t, errors.Is(err, kv.ErrConditionFailed), "got %v", err)

	got, err := b.Get(ctx, first.Key)
	require.NoError(t, err)
	assert.Equal(t, "first", got.String("title"))
}

func testPutMustExist(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	err := b.Put(ctx, item(pk, "N#1", map[string]any{"title": "x"}), kv.Condition{MustExist: true})
	assert.True(t, errors.Is(err, kv.ErrConditionFailed), "got %v", err)

	_, err = b.Get(ctx, kv.Key{PK: pk, SK: "N#1"})
	assert.True(t, errors.Is(err, kv.ErrItemNotFound), "got %v", err)
}

func testQueryOrderAndPrefix(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	for _, sk := range []string{"N#c", "N#a", "X#z", "N#b"} {
		require.NoError(t, b.Put(ctx, item(pk, sk, map[string]any{"v": sk}), kv.Condition{}))
	}

	page, err := b.Query(ctx, kv.Query{PK: pk, SKPrefix: "N#", Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "N#a", page.Items[0].Key.SK)
	assert.Equal(t, "N#b", page.Items[1].Key.SK)
	assert.Equal(t, "N#c", page.Items[2].Key.SK)
	assert.Equal(t, "N#a", page.Items[0].String("v"))
	assert.Nil(t, page.LastKey)
}

func testQueryPagination(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	want := []string{"N#1", "N#2", "N#3"}
	for _, sk := range want {
		require.NoError(t, b.Put(ctx, item(pk, sk, map[string]any{}), kv.Condition{}))
	}

	var (
		got   []string
		start *kv.Key
	)
	for i := 0; i < 10; i++ {
		page, err := b.Query(ctx, kv.Query{PK: pk, SKPrefix: "N#", Limit: 1, StartAfter: start})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page.Items), 1)
		for _, it := range page.Items {
			got = append(got, it.Key.SK)
		}
		if page.LastKey == nil {
			break
		}
		start = page.LastKey
	}
	assert.Equal(t, want, got)
}

func testQueryPartitionIsolation(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	other := pk + "-other"
	require.NoError(t, b.Put(ctx, item(pk, "N#1", map[string]any{}), kv.Condition{}))
	require.NoError(t, b.Put(ctx, item(other, "N#2", map[string]any{}), kv.Condition{}))

	page, err := b.Query(ctx, kv.Query{PK: pk, SKPrefix: "N#", Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "N#1", page.Items[0].Key.SK)
}

func testQueryEmpty(t *testing.T, b kv.Backend, pk string) {
	page, err := b.Query(context.Background(), kv.Query{PK: pk, SKPrefix: "N#", Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.LastKey)
}

func testUpdateSetAndAdd(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	key := kv.Key{PK: pk, SK: "N#1"}
	require.NoError(t, b.Put(ctx, item(pk, "N#1", map[string]any{
		"title":   "old",
		"content": "keep",
		"version": int64(1),
	}), kv.Condition{}))

	got, err := b.Update(ctx, key, kv.Update{
		Set: map[string]any{"title": "new", "tags": []string{"x"}},
		Add: map[string]int64{"version": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, key, got.Key)
	assert.Equal(t, "new", got.String("title"))
	assert.Equal(t, "keep", got.String("content"))
	assert.Equal(t, []string{"x"}, got.Strings("tags"))
	assert.Equal(t, int64(2), got.Int("version"))

	stored, err := b.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Int("version"))
	assert.Equal(t, "new", stored.String("title"))
}

func testUpdateMissing(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	key := kv.Key{PK: pk, SK: "N#missing"}

	_, err := b.Update(ctx, key, kv.Update{Set: map[string]any{"title": "x"}})
	assert.True(t, errors.Is(err, kv.ErrConditionFailed), "got %v", err)

	_, err = b.Get(ctx, key)
	assert.True(t, errors.Is(err, kv.ErrItemNotFound), "update must not create items, got %v", err)
}

func testUpdateAttrEquals(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	key := kv.Key{PK: pk, SK: "N#1"}
	require.NoError(t, b.Put(ctx, item(pk, "N#1", map[string]any{"version": int64(3)}), kv.Condition{}))

	_, err := b.Update(ctx, key, kv.Update{
		Add:       map[string]int64{"version": 1},
		Condition: kv.Condition{AttrEquals: &kv.AttrEquals{Name: "version", Value: int64(2)}},
	})
	assert.True(t, errors.Is(err, kv.ErrConditionFailed), "got %v", err)

	got, err := b.Update(ctx, key, kv.Update{
		Add:       map[string]int64{"version": 1},
		Condition: kv.Condition{AttrEquals: &kv.AttrEquals{Name: "version", Value: int64(3)}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Int("version"))
}

func testUpdateInvalidName(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	require.NoError(t, b.Put(ctx, item(pk, "N#1", map[string]any{}), kv.Condition{}))

	_, err := b.Update(ctx, kv.Key{PK: pk, SK: "N#1"}, kv.Update{
		Set: map[string]any{"title = :x, pk": "boom"},
	})
	assert.True(t, errors.Is(err, kv.ErrInvalidAttribute), "got %v", err)
}

func testUpdateConcurrentAdd(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	key := kv.Key{PK: pk, SK: "N#1"}
	require.NoError(t, b.Put(ctx, item(pk, "N#1", map[string]any{"version": int64(0)}), kv.Condition{}))

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := b.Update(ctx, key, kv.Update{
				Set: map[string]any{"title": fmt.Sprintf("w%d", i)},
				Add: map[string]int64{"version": 1},
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := b.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), got.Int("version"))
}

func testDeleteIdempotent(t *testing.T, b kv.Backend, pk string) {
	ctx := context.Background()
	key := kv.Key{PK: pk, SK: "N#1"}
	require.NoError(t, b.Put(ctx, item(pk, "N#1", map[string]any{}), kv.Condition{}))

	require.NoError(t, b.Delete(ctx, key))
	require.NoError(t, b.Delete(ctx, key))
	require.NoError(t, b.Delete(ctx, kv.Key{PK: pk, SK: "N#never"}))

	_, err := b.Get(ctx, key)
	assert.True(t, errors.Is(err, kv.ErrItemNotFound), "got %v", err)
}

func testPing(t *testing.T, b kv.Backend, _ string) {
	assert.NoError(t, b.Ping(context.Background()))
}
