package api

import (
	"net/http"
	"time"

	"github.com/sravanipallapu19/healthComp/internal/api/respond"
	"github.com/sravanipallapu19/healthComp/internal/model"
	"github.com/sravanipallapu19/healthComp/internal/services"
)

type MoodHandler struct {
	svc *services.MoodService
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler { return &MoodHandler{svc: svc} }

// MoodHistoryResponse is the body of GET /api/mood/history.
type MoodHistoryResponse struct {
	Moods []*model.MoodEntry `json:"moods"`
	Count int                `json:"count"`
}

func (h *MoodHandler) LogMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var in struct {
		Rating    int        `json:"rating"`
		Emotions  []string   `json:"emotions"`
		Note      string     `json:"note"`
		Timestamp *time.Time `json:"timestamp,omitempty"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	m := model.MoodEntry{Rating: in.Rating, Emotions: in.Emotions, Note: in.Note}
	if in.Timestamp != nil {
		m.Timestamp = *in.Timestamp
	}
	out, err := h.svc.LogMood(r.Context(), userID, m)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *MoodHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	start, end, err := parseRange(r)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	list, err := h.svc.History(r.Context(), userID, start, end)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	if list == nil {
		list = []*model.MoodEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, MoodHistoryResponse{Moods: list, Count: len(list)})
}

func (h *MoodHandler) Stats(w http.ResponseWriter, r *http.Request) {
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
