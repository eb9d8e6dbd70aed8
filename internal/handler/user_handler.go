package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"talenthub/internal/apperr"
	"talenthub/internal/middleware"
	"talenthub/internal/models"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.ViewerID(r.Context())
	if viewerID == "" {
		writeFailure(w, apperr.ErrAuthRequired)
		return
	}

	profile, err := h.ProfileRepo.GetByID(r.Context(), viewerID)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, profile, http.StatusOK)
}

type UserListResponse struct {
	Users []models.Profile `json:"users"`
	Total int              `json:"total"`
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.ProfileRepo.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, UserListResponse{Users: profiles, Total: len(profiles)}, http.StatusOK)
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateUserRole sets a profile's role through the moderation state
// machine. Protected identities are refused before any store write.
func (h *Handlers) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["id"]

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Moderation.SetRole(r.Context(), targetID, req.Role); err != nil {
		writeFailure(w, err)
		return
	}

	profile, err := h.ProfileRepo.GetByID(r.Context(), targetID)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, profile, http.StatusOK)
}
