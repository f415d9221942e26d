package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
	"github.com/heartmarshall/notes-backend/pkg/ctxutil"
)

// UpdateNote applies a partial update to a note of the caller and returns
// the note as stored afterwards. updatedAt is refreshed even when no field
// changes.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (domain.Note, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.Note{}, domain.ErrUnauthorized
	}

	if err := validateID(input.ID); err != nil {
		return domain.Note{}, err
	}

	patch, err := ValidateUpdate(input)
	if err != nil {
		return domain.Note{}, err
	}

	note, err := s.store.Update(ctx, ownerID, input.ID, patch, s.now())
	if err != nil {
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("owner_id", ownerID),
		slog.String("note_id", note.ID),
		slog.Int64("version", note.Version),
	)

	return note, nil
}
