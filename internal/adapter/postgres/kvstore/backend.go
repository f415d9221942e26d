// Package kvstore implements kv.Backend on a single PostgreSQL table.
//
// Items are rows of kv_items(pk, sk, attrs jsonb). Conditional writes are
// single statements (INSERT ... ON CONFLICT DO NOTHING, UPDATE ... WHERE ...
// RETURNING), so every write is atomic per item without explicit transactions.
package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
	postgres "github.com/heartmarshall/notes-backend/internal/adapter/postgres"
)

// Table is the table created by the migrations.
const Table = "kv_items"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Backend provides kv.Backend persistence backed by PostgreSQL.
type Backend struct {
	q postgres.Querier
}

// New creates a backend over q (normally a *pgxpool.Pool).
func New(q postgres.Querier) *Backend {
	return &Backend{q: q}
}

var _ kv.Backend = (*Backend)(nil)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns kv.ErrItemNotFound when the row does not exist.
func (b *Backend) Get(ctx context.Context, key kv.Key) (kv.Item, error) {
	query, args, err := psql.Select("attrs").
		From(Table).
		Where(squirrel.Eq{"pk": key.PK, "sk": key.SK}).
		ToSql()
	if err != nil {
		return kv.Item{}, fmt.Errorf("build get: %w", err)
	}

	var raw []byte
	if err := b.q.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return kv.Item{}, postgres.MapError(err, "get "+Table)
	}

	attrs, err := decodeAttrs(raw)
	if err != nil {
		return kv.Item{}, err
	}
	return kv.Item{Key: key, Attrs: attrs}, nil
}

// Query fetches one row past the limit so the last page reports no LastKey.
func (b *Backend) Query(ctx context.Context, q kv.Query) (kv.Page, error) {
	if q.Limit < 1 {
		return kv.Page{}, fmt.Errorf("kvstore: query limit must be positive (got %d)", q.Limit)
	}

	sb := psql.Select("sk", "attrs").
		From(Table).
		Where(squirrel.Eq{"pk": q.PK}).
		OrderBy("sk ASC").
		Limit(uint64(q.Limit) + 1)
	if q.SKPrefix != "" {
		sb = sb.Where(squirrel.Like{"sk": escapeLike(q.SKPrefix) + "%"})
	}
	if q.StartAfter != nil {
		sb = sb.Where(squirrel.Gt{"sk": q.StartAfter.SK})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return kv.Page{}, fmt.Errorf("build query: %w", err)
	}

	rows, err := b.q.Query(ctx, query, args...)
	if err != nil {
		return kv.Page{}, postgres.MapError(err, "query "+Table)
	}
	defer rows.Close()

	page := kv.Page{Items: []kv.Item{}}
	for rows.Next() {
		var (
			sk  string
			raw []byte
		)
		if err := rows.Scan(&sk, &raw); err != nil {
			return kv.Page{}, postgres.MapError(err, "scan "+Table)
		}
		if len(page.Items) == q.Limit {
			last := page.Items[len(page.Items)-1].Key
			page.LastKey = &last
			break
		}
		attrs, err := decodeAttrs(raw)
		if err != nil {
			return kv.Page{}, err
		}
		page.Items = append(page.Items, kv.Item{Key: kv.Key{PK: q.PK, SK: sk}, Attrs: attrs})
	}
	if err := rows.Err(); err != nil {
		return kv.Page{}, postgres.MapError(err, "query "+Table)
	}

	return page, nil
}

func (b *Backend) Ping(ctx context.Context) error {
	if err := b.q.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w: %w", kv.ErrUnavailable, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Put writes the whole item. MustNotExist inserts only; MustExist and
// AttrEquals replace only an existing row.
func (b *Backend) Put(ctx context.Context, item kv.Item, cond kv.Condition) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := cond.Validate(); err != nil {
		return err
	}

	raw, err := encodeJSON(item.Attrs)
	if err != nil {
		return err
	}

	var sqlizer squirrel.Sqlizer
	switch {
	case cond.MustNotExist:
		sqlizer = psql.Insert(Table).
			Columns("pk", "sk", "attrs").
			Values(item.Key.PK, item.Key.SK, squirrel.Expr("?::jsonb", raw)).
			Suffix("ON CONFLICT (pk, sk) DO NOTHING")
	case cond.MustExist || cond.AttrEquals != nil:
		ub := psql.Update(Table).
			Set("attrs", squirrel.Expr("?::jsonb", raw)).
			Where(squirrel.Eq{"pk": item.Key.PK, "sk": item.Key.SK})
		if cond.AttrEquals != nil {
			where, err := attrEquals(cond.AttrEquals)
			if err != nil {
				return err
			}
			ub = ub.Where(where)
		}
		sqlizer = ub
	default:
		sqlizer = psql.Insert(Table).
			Columns("pk", "sk", "attrs").
			Values(item.Key.PK, item.Key.SK, squirrel.Expr("?::jsonb", raw)).
			Suffix("ON CONFLICT (pk, sk) DO UPDATE SET attrs = EXCLUDED.attrs")
	}

	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("build put: %w", err)
	}

	tag, err := b.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "put "+Table)
	}

	guarded := cond.MustNotExist || cond.MustExist || cond.AttrEquals != nil
	if guarded && tag.RowsAffected() == 0 {
		return fmt.Errorf("put %s: %w", Table, kv.ErrConditionFailed)
	}
	return nil
}

// Update merges Set into attrs and increments Add counters in one statement.
// A missing row or a failed AttrEquals yields kv.ErrConditionFailed.
func (b *Backend) Update(ctx context.Context, key kv.Key, u kv.Update) (kv.Item, error) {
	if err := u.Validate(); err != nil {
		return kv.Item{}, err
	}

	raw, err := encodeJSON(u.Set)
	if err != nil {
		return kv.Item{}, err
	}

	expr := "attrs || ?::jsonb"
	args := []any{raw}
	for _, name := range sortedKeys(u.Add) {
		expr = fmt.Sprintf("jsonb_set(%s, ?::text[], to_jsonb(COALESCE((attrs ->> ?::text)::bigint, 0) + ?::bigint))", expr)
		args = append(args, "{"+name+"}", name, u.Add[name])
	}

	ub := psql.Update(Table).
		Set("attrs", squirrel.Expr(expr, args...)).
		Where(squirrel.Eq{"pk": key.PK, "sk": key.SK}).
		Suffix("RETURNING attrs")
	if u.Condition.AttrEquals != nil {
		where, err := attrEquals(u.Condition.AttrEquals)
		if err != nil {
			return kv.Item{}, err
		}
		ub = ub.Where(where)
	}

	query, qargs, err := ub.ToSql()
	if err != nil {
		return kv.Item{}, fmt.Errorf("build update: %w", err)
	}

	var out []byte
	if err := b.q.QueryRow(ctx, query, qargs...).Scan(&out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kv.Item{}, fmt.Errorf("update %s: %w", Table, kv.ErrConditionFailed)
		}
		return kv.Item{}, postgres.MapError(err, "update "+Table)
	}

	attrs, err := decodeAttrs(out)
	if err != nil {
		return kv.Item{}, err
	}
	return kv.Item{Key: key, Attrs: attrs}, nil
}

// Delete is idempotent: deleting a missing row is not an error.
func (b *Backend) Delete(ctx context.Context, key kv.Key) error {
	query, args, err := psql.Delete(Table).
		Where(squirrel.Eq{"pk": key.PK, "sk": key.SK}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := b.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "delete "+Table)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func attrEquals(ae *kv.AttrEquals) (squirrel.Sqlizer, error) {
	raw, err := encodeJSON(ae.Value)
	if err != nil {
		return nil, err
	}
	return squirrel.Expr("attrs -> ?::text = ?::jsonb", ae.Name, raw), nil
}

// encodeJSON returns the JSON text of v; a nil map encodes as {}.
func encodeJSON(v any) (string, error) {
	if m, ok := v.(map[string]any); ok && m == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode attrs: %w", err)
	}
	return string(raw), nil
}

func decodeAttrs(raw []byte) (map[string]any, error) {
	attrs := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&attrs); err != nil {
		return nil, fmt.Errorf("decode attrs: %w", err)
	}
	return attrs, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
