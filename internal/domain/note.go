package domain

import "time"

// Note field limits. Lengths are counted in runes after trimming.
const (
	MaxTitleLength   = 120
	MaxContentLength = 10000
	MaxTags          = 10
)

// Note is a short text note owned by a single user.
type Note struct {
	ID        string
	OwnerID   string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

// NoteDraft is a validated note that has not been stored yet.
type NoteDraft struct {
	Title   string
	Content string
	Tags    []string
}

// NotePatch is a validated partial update. Nil fields are left unchanged.
type NotePatch struct {
	Title   *string
	Content *string
	Tags    *[]string

	// ExpectedVersion makes the update conditional on the stored version.
	ExpectedVersion *int64
}

// IsEmpty reports whether the patch changes no fields.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil
}

// NotePage is one page of a list query.
// NextCursor is empty when there are no further pages.
type NotePage struct {
	Items      []Note
	NextCursor string
}
