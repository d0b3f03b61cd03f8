package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sravanipallapu19/healthComp/internal/api/respond"
	"github.com/sravanipallapu19/healthComp/internal/auth"
	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/services"
)

type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// ListEntriesResponse is the body of GET /api/journal/entries.
type ListEntriesResponse struct {
	Entries []*model.JournalEntry `json:"entries"`
	Count   int                   `json:"count"`
}

func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "authentication required")
	}
	return id, ok
}

func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	start, end, err := parseRange(r)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	list, err := h.svc.ListEntries(r.Context(), model.ListEntriesRequest{
		UserID:   userID,
		Start:    start,
		End:      end,
		Emotions: parseList(r.URL.Query().Get("emotions")),
		Limit:    limit,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	if list == nil {
		list = []*model.JournalEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, ListEntriesResponse{Entries: list, Count: len(list)})
}

func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in struct {
		Title   string     `json:"title"`
		Content string     `json:"content"`
		Mood    string     `json:"mood"`
		Emotion string     `json:"emotion"`
		Tags    []string   `json:"tags"`
		Date    *time.Time `json:"date,omitempty"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	e := model.JournalEntry{Title: in.Title, Content: in.Content, Mood: in.Mood, Emotion: in.Emotion, Tags: in.Tags}
	if in.Date != nil {
		e.Date = *in.Date
	}
	out, err := h.svc.CreateEntry(r.Context(), userID, e)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var patch model.EntryPatch
	if err := decodeJSON(r, &patch); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	out, err := h.svc.UpdateEntry(r.Context(), userID, mux.Vars(r)["id"], patch)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *JournalHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in struct {
		IsFavorite *bool `json:"isFavorite"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	if in.IsFavorite == nil {
		respond.WriteServiceError(w, model.NewValidationError("isFavorite", "is required"))
		return
	}
	out, err := h.svc.SetFavorite(r.Context(), userID, mux.Vars(r)["id"], *in.IsFavorite)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteEntry(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *JournalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	st, err := h.svc.Stats(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, st)
}
