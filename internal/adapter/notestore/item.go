package notestore

import (
	"fmt"
	"time"

	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Key prefixes.
const (
	ownerPrefix = "USER#"
	notePrefix  = "NOTE#"
)

// Stored attribute names.
const (
	attrID        = "id"
	attrOwnerID   = "ownerId"
	attrTitle     = "title"
	attrContent   = "content"
	attrTags      = "tags"
	attrCreatedAt = "createdAt"
	attrUpdatedAt = "updatedAt"
	attrVersion   = "version"
)

func ownerPK(ownerID string) string { return ownerPrefix + ownerID }

func noteKey(ownerID, id string) kv.Key {
	return kv.Key{PK: ownerPK(ownerID), SK: notePrefix + id}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func toItem(n domain.Note) kv.Item {
	return kv.Item{
		Key: noteKey(n.OwnerID, n.ID),
		Attrs: map[string]any{
			attrID:        n.ID,
			attrOwnerID:   n.OwnerID,
			attrTitle:     n.Title,
			attrContent:   n.Content,
			attrTags:      tagsOrEmpty(n.Tags),
			attrCreatedAt: formatTime(n.CreatedAt),
			attrUpdatedAt: formatTime(n.UpdatedAt),
			attrVersion:   n.Version,
		},
	}
}

func toNote(item kv.Item) (domain.Note, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, item.String(attrCreatedAt))
	if err != nil {
		return domain.Note{}, fmt.Errorf("item %s/%s: createdAt: %w", item.Key.PK, item.Key.SK, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, item.String(attrUpdatedAt))
	if err != nil {
		return domain.Note{}, fmt.Errorf("item %s/%s: updatedAt: %w", item.Key.PK, item.Key.SK, err)
	}

	return domain.Note{
		ID:        item.String(attrID),
		OwnerID:   item.String(attrOwnerID),
		Title:     item.String(attrTitle),
		Content:   item.String(attrContent),
		Tags:      item.Strings(attrTags),
		CreatedAt: createdAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
		Version:   item.Int(attrVersion),
	}, nil
}
