package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
	"github.com/heartmarshall/notes-backend/pkg/ctxutil"
)

// DeleteNote removes a note of the caller. Deleting a missing note succeeds.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := validateID(id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("owner_id", ownerID),
		slog.String("note_id", id),
	)

	return nil
}
