package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notes-backend/internal/domain"
	"github.com/heartmarshall/notes-backend/pkg/ctxutil"
)

// ListNotes returns one page of the caller's notes.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) (domain.NotePage, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.NotePage{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.NotePage{}, err
	}

	page, err := s.store.List(ctx, ownerID, s.pageSize(input.Limit), input.Cursor)
	if err != nil {
		return domain.NotePage{}, fmt.Errorf("list notes: %w", err)
	}

	return page, nil
}

// GetNote returns a single note of the caller.
func (s *Service) GetNote(ctx context.Context, id string) (domain.Note, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.Note{}, domain.ErrUnauthorized
	}

	if err := validateID(id); err != nil {
		return domain.Note{}, err
	}

	note, err := s.store.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

// pageSize applies the default to 0 and caps at the configured maximum.
func (s *Service) pageSize(limit int) int {
	if limit == 0 {
		limit = s.cfg.DefaultPageSize
	}
	return min(limit, s.cfg.MaxPageSize)
}
