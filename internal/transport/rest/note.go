package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/notes-backend/internal/domain"
	"github.com/heartmarshall/notes-backend/internal/service/note"
)

//go:generate moq -out note_service_mock_test.go -pkg rest . noteService

// noteService defines the operations NoteHandler needs.
type noteService interface {
	CreateNote(ctx context.Context, input note.CreateNoteInput) (domain.Note, error)
	ListNotes(ctx context.Context, input note.ListNotesInput) (domain.NotePage, error)
	GetNote(ctx context.Context, id string) (domain.Note, error)
	UpdateNote(ctx context.Context, input note.UpdateNoteInput) (domain.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// NoteHandler serves the /notes endpoints.
type NoteHandler struct {
	svc          noteService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewNoteHandler creates a NoteHandler. Request bodies larger than
// maxBodyBytes are rejected.
func NewNoteHandler(svc noteService, logger *slog.Logger, maxBodyBytes int64) *NoteHandler {
	return &NoteHandler{
		svc:          svc,
		log:          logger.With("handler", "note"),
		maxBodyBytes: maxBodyBytes,
	}
}

type createNoteRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
}

type updateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"`
}

type listNotesResponse struct {
	Items      []noteResponse `json:"items"`
	NextCursor *string        `json:"nextCursor"`
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	n, err := h.svc.CreateNote(r.Context(), note.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	setETag(w, n.Version)
	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

// List handles GET /notes?limit=&cursor=. nextToken is accepted as an
// alias of cursor.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var limit int
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit: must be an integer")
			return
		}
		limit = n
	}

	cursor := q.Get("cursor")
	if cursor == "" {
		cursor = q.Get("nextToken")
	}

	page, err := h.svc.ListNotes(r.Context(), note.ListNotesInput{Limit: limit, Cursor: cursor})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := listNotesResponse{Items: make([]noteResponse, 0, len(page.Items))}
	for _, n := range page.Items {
		resp.Items = append(resp.Items, toNoteResponse(n))
	}
	if page.NextCursor != "" {
		resp.NextCursor = &page.NextCursor
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.GetNote(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	setETag(w, n.Version)
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Update handles PUT /notes/{id}. An If-Match header makes the update
// conditional on the note version.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	expected, err := parseIfMatch(r.Header.Get("If-Match"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateNoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	input := note.UpdateNoteInput{
		ID:              r.PathValue("id"),
		Title:           req.Title,
		Content:         req.Content,
		ExpectedVersion: expected,
	}
	if req.Tags != nil {
		input.Tags = *req.Tags
	}

	n, err := h.svc.UpdateNote(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	setETag(w, n.Version)
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteNote(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decode reads a JSON object body into dst and writes a 400 on failure.
func (h *NoteHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, "invalid_body", "request body is empty")
	default:
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body")
	}
	return false
}

// parseIfMatch accepts `"3"`, `W/"3"`, `3` and `*`. Empty and `*` mean
// no version check.
func parseIfMatch(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "*" {
		return nil, nil
	}

	raw = strings.TrimPrefix(raw, "W/")
	raw = strings.Trim(raw, `"`)

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return nil, domain.NewValidationError("If-Match", "must be a note version")
	}
	return &v, nil
}

func setETag(w http.ResponseWriter, version int64) {
	w.Header().Set("ETag", `"`+strconv.FormatInt(version, 10)+`"`)
}

func toNoteResponse(n domain.Note) noteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResponse{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Version:   n.Version,
	}
}
