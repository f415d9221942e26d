package note

import (
	"strings"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// CreateNoteInput holds the client-supplied fields of a new note.
// A nil Title or Content means the field was missing.
type CreateNoteInput struct {
	Title   *string
	Content *string
	Tags    []string
}

// UpdateNoteInput holds a partial update. Nil fields are left unchanged;
// a non-nil empty Tags clears the tags.
type UpdateNoteInput struct {
	ID      string
	Title   *string
	Content *string
	Tags    []string

	// ExpectedVersion, when set, makes the update fail with domain.ErrConflict
	// if the stored note has moved on.
	ExpectedVersion *int64
}

// ListNotesInput holds pagination parameters. Limit 0 means the default page size.
type ListNotesInput struct {
	Limit  int
	Cursor string
}

// Validate checks the pagination parameters.
func (i ListNotesInput) Validate() error {
	if i.Limit < 0 {
		return domain.NewKindError(domain.ErrInvalidLimit, "limit", "must be positive")
	}
	return nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
