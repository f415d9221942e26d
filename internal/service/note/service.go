package note

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notes-backend/internal/config"
	"github.com/heartmarshall/notes-backend/internal/domain"
)

type noteStore interface {
	Create(ctx context.Context, note domain.Note) (domain.Note, error)
	List(ctx context.Context, ownerID string, limit int, cursor string) (domain.NotePage, error)
	Get(ctx context.Context, ownerID, id string) (domain.Note, error)
	Update(ctx context.Context, ownerID, id string, patch domain.NotePatch, now time.Time) (domain.Note, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// Service provides note operations for the authenticated owner.
type Service struct {
	store noteStore
	log   *slog.Logger
	cfg   config.NotesConfig

	now   func() time.Time
	newID func() string
}

// NewService creates a new Note service.
func NewService(
	log *slog.Logger,
	store noteStore,
	cfg config.NotesConfig,
) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "note"),
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}
