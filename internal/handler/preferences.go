package handler

import (
	"net/http"

	"github.com/tamilpanchangam/panchangam/internal/logger"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// PreferenceHandlers groups the user-preference CRUD endpoints.
type PreferenceHandlers struct {
	repo repository.Preferences
}

// NewPreferenceHandlers creates preference handlers backed by the given store.
func NewPreferenceHandlers(repo repository.Preferences) *PreferenceHandlers {
	return &PreferenceHandlers{repo: repo}
}

// SetPreferenceRequest is the body for saving one preference.
type SetPreferenceRequest struct {
	UserID string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Key    string `json:"key" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Value  string `json:"value" validate:"required,max=1000"`
}

// PreferencesResponse lists every stored preference for one user.
type PreferencesResponse struct {
	UserID      string                  `json:"user_id"`
	Preferences []repository.Preference `json:"preferences"`
}

// HandleGet returns one preference.
// GET /preferences?user_id=u1&key=birth_nakshatra
func (h *PreferenceHandlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		prefs, err := h.repo.GetAll(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPreferenceFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, PreferencesResponse{UserID: userID, Preferences: prefs})
		return
	}

	pref, err := h.repo.Get(r.Context(), userID, key)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPreferenceFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, pref)
}

// HandleSet upserts one preference.
// POST /preferences
func (h *PreferenceHandlers) HandleSet(w http.ResponseWriter, r *http.Request) {
	var req SetPreferenceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set preference"); err != nil {
		return
	}

	if err := h.repo.Set(r.Context(), req.UserID, req.Key, req.Value); err != nil {
		respondServiceError(w, r, ErrMsgSetPreferenceFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Preference saved",
		"user_id", req.UserID,
		"key", req.Key)

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPreferenceSavedSuccess})
}

// HandleDelete removes one preference. Deleting a missing preference is
// not an error.
// DELETE /preferences?user_id=u1&key=birth_nakshatra
func (h *PreferenceHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	key, ok := GetQueryParam(r, w, "key")
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), userID, key); err != nil {
		respondServiceError(w, r, ErrMsgDeletePreferenceFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPreferenceDeletedSuccess})
}
