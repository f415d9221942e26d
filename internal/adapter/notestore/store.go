// Package notestore persists notes in a kv.Backend.
//
// A note lives under partition "USER#<ownerId>" and sort key "NOTE#<id>",
// so every read and write is scoped to its owner by key construction alone.
package notestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Store provides note persistence over an injected kv.Backend.
type Store struct {
	backend kv.Backend
}

// New creates a store.
func New(backend kv.Backend) *Store {
	return &Store{backend: backend}
}

// Create stores a new note. An existing item under the same key yields
// domain.ErrAlreadyExists and is left untouched.
func (s *Store) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	if err := s.backend.Put(ctx, toItem(note), kv.Condition{MustNotExist: true}); err != nil {
		if errors.Is(err, kv.ErrConditionFailed) {
			return domain.Note{}, fmt.Errorf("note %s: %w", note.ID, domain.ErrAlreadyExists)
		}
		return domain.Note{}, mapError(err, "create note")
	}
	return note, nil
}

// List returns up to limit notes of the owner in sort-key order, starting
// after cursor. An empty cursor starts from the beginning.
func (s *Store) List(ctx context.Context, ownerID string, limit int, cursor string) (domain.NotePage, error) {
	start, err := decodeCursor(cursor, ownerPK(ownerID))
	if err != nil {
		return domain.NotePage{}, err
	}

	page, err := s.backend.Query(ctx, kv.Query{
		PK:         ownerPK(ownerID),
		SKPrefix:   notePrefix,
		Limit:      limit,
		StartAfter: start,
	})
	if err != nil {
		return domain.NotePage{}, mapError(err, "list notes")
	}

	notes := make([]domain.Note, 0, len(page.Items))
	for _, item := range page.Items {
		note, err := toNote(item)
		if err != nil {
			return domain.NotePage{}, err
		}
		notes = append(notes, note)
	}

	return domain.NotePage{
		Items:      notes,
		NextCursor: encodeCursor(page.LastKey),
	}, nil
}

// Get returns domain.ErrNotFound when the owner has no note with this id.
func (s *Store) Get(ctx context.Context, ownerID, id string) (domain.Note, error) {
	item, err := s.backend.Get(ctx, noteKey(ownerID, id))
	if err != nil {
		if errors.Is(err, kv.ErrItemNotFound) {
			return domain.Note{}, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
		}
		return domain.Note{}, mapError(err, "get note")
	}
	return toNote(item)
}

// Update applies the patch in a single conditional write: only present
// fields change, updatedAt becomes now and version grows by one. With
// patch.ExpectedVersion set, a version mismatch yields domain.ErrConflict.
func (s *Store) Update(ctx context.Context, ownerID, id string, patch domain.NotePatch, now time.Time) (domain.Note, error) {
	set := map[string]any{attrUpdatedAt: formatTime(now)}
	if patch.Title != nil {
		set[attrTitle] = *patch.Title
	}
	if patch.Content != nil {
		set[attrContent] = *patch.Content
	}
	if patch.Tags != nil {
		set[attrTags] = tagsOrEmpty(*patch.Tags)
	}

	update := kv.Update{
		Set: set,
		Add: map[string]int64{attrVersion: 1},
	}
	if patch.ExpectedVersion != nil {
		update.Condition.AttrEquals = &kv.AttrEquals{Name: attrVersion, Value: *patch.ExpectedVersion}
	}

	key := noteKey(ownerID, id)
	item, err := s.backend.Update(ctx, key, update)
	if err == nil {
		return toNote(item)
	}
	if !errors.Is(err, kv.ErrConditionFailed) {
		return domain.Note{}, mapError(err, "update note")
	}
	if patch.ExpectedVersion == nil {
		return domain.Note{}, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	// The condition covers existence and version; read once to tell them apart.
	if _, err := s.backend.Get(ctx, key); err != nil {
		if errors.Is(err, kv.ErrItemNotFound) {
			return domain.Note{}, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
		}
		return domain.Note{}, mapError(err, "update note")
	}
	return domain.Note{}, fmt.Errorf("note %s: version %d: %w", id, *patch.ExpectedVersion, domain.ErrConflict)
}

// Delete is unconditional: deleting a missing note succeeds.
func (s *Store) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.backend.Delete(ctx, noteKey(ownerID, id)); err != nil {
		return mapError(err, "delete note")
	}
	return nil
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.backend.Ping(ctx); err != nil {
		return mapError(err, "ping")
	}
	return nil
}

// mapError turns backend unavailability into domain.ErrStorageUnavailable.
// Other errors, including context errors, are wrapped unchanged.
func mapError(err error, op string) error {
	if errors.Is(err, kv.ErrUnavailable) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
