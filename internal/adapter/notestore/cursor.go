package notestore

import (
	"encoding/base64"
	"encoding/json"

	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
	"github.com/heartmarshall/notes-backend/internal/domain"
)

// encodeCursor returns base64url (no padding) of the JSON key, or "" for nil.
func encodeCursor(key *kv.Key) string {
	if key == nil {
		return ""
	}
	raw, _ := json.Marshal(key)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// decodeCursor returns nil for an empty cursor. A cursor that does not
// decode, or that points into another partition, is domain.ErrInvalidCursor.
func decodeCursor(cursor, pk string) (*kv.Key, error) {
	if cursor == "" {
		return nil, nil
	}

	invalid := domain.NewKindError(domain.ErrInvalidCursor, "cursor", "malformed pagination cursor")

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, invalid
	}

	var key kv.Key
	if err := json.Unmarshal(raw, &key); err != nil {
		return nil, invalid
	}
	if key.PK != pk || key.SK == "" {
		return nil, invalid
	}
	return &key, nil
}
