package note

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// ValidateCreate checks a new note and returns it normalised: title and
// content trimmed, tags never nil. Checks run title, content, tags; the
// first failure is returned.
func ValidateCreate(in CreateNoteInput) (domain.NoteDraft, error) {
	title, err := validateTitle(in.Title)
	if err != nil {
		return domain.NoteDraft{}, err
	}
	content, err := validateContent(in.Content)
	if err != nil {
		return domain.NoteDraft{}, err
	}
	if err := validateTags(in.Tags); err != nil {
		return domain.NoteDraft{}, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.NoteDraft{Title: title, Content: content, Tags: tags}, nil
}

// ValidateUpdate checks only the fields that are present. An input with no
// fields is a valid empty patch.
func ValidateUpdate(in UpdateNoteInput) (domain.NotePatch, error) {
	var patch domain.NotePatch

	if in.Title != nil {
		title, err := validateTitle(in.Title)
		if err != nil {
			return domain.NotePatch{}, err
		}
		patch.Title = &title
	}
	if in.Content != nil {
		content, err := validateContent(in.Content)
		if err != nil {
			return domain.NotePatch{}, err
		}
		patch.Content = &content
	}
	if in.Tags != nil {
		if err := validateTags(in.Tags); err != nil {
			return domain.NotePatch{}, err
		}
		tags := in.Tags
		patch.Tags = &tags
	}
	if in.ExpectedVersion != nil {
		if *in.ExpectedVersion < 1 {
			return domain.NotePatch{}, domain.NewValidationError("version", "must be positive")
		}
		v := *in.ExpectedVersion
		patch.ExpectedVersion = &v
	}

	return patch, nil
}

func validateTitle(title *string) (string, error) {
	return validateText(title, "title", domain.MaxTitleLength, domain.ErrInvalidTitle)
}

func validateContent(content *string) (string, error) {
	return validateText(content, "content", domain.MaxContentLength, domain.ErrInvalidContent)
}

// validateText trims s and counts its length in runes.
func validateText(s *string, field string, maxLen int, kind error) (string, error) {
	if s == nil {
		return "", domain.NewKindError(kind, field, "required")
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return "", domain.NewKindError(kind, field, "must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", domain.NewKindError(kind, field, fmt.Sprintf("max %d characters", maxLen))
	}
	return trimmed, nil
}

func validateTags(tags []string) error {
	if len(tags) > domain.MaxTags {
		return domain.NewKindError(domain.ErrTooManyTags, "tags", fmt.Sprintf("max %d tags", domain.MaxTags))
	}
	return nil
}
