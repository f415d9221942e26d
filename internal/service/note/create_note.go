package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
	"github.com/heartmarshall/notes-backend/pkg/ctxutil"
)

// CreateNote validates the input and stores a new note owned by the caller.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (domain.Note, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.Note{}, domain.ErrUnauthorized
	}

	draft, err := ValidateCreate(input)
	if err != nil {
		return domain.Note{}, err
	}

	now := s.now()
	note, err := s.store.Create(ctx, domain.Note{
		ID:        s.newID(),
		OwnerID:   ownerID,
		Title:     draft.Title,
		Content:   draft.Content,
		Tags:      draft.Tags,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("owner_id", ownerID),
		slog.String("note_id", note.ID),
		slog.Int("tags", len(note.Tags)),
	)

	return note, nil
}
