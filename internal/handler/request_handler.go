package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"talenthub/internal/middleware"
	"talenthub/internal/models"
)

type RequestBoardResponse struct {
	Requests []models.RequestView `json:"requests"`
	Total    int                  `json:"total"`
}

func (h *Handlers) ListRequests(w http.ResponseWriter, r *http.Request) {
	views, err := h.Board.Load(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, RequestBoardResponse{Requests: views, Total: len(views)}, http.StatusOK)
}

type createRequestRequest struct {
	Category    string `json:"category" validate:"required"`
	Building    string `json:"building"`
	Room        string `json:"room"`
	Priority    string `json:"priority"`
	Description string `json:"description" validate:"required"`
}

func (h *Handlers) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	views, err := h.Board.Submit(r.Context(), &models.ServiceRequest{
		RequesterID: middleware.ViewerID(r.Context()),
		Category:    req.Category,
		Building:    req.Building,
		Room:        req.Room,
		Priority:    req.Priority,
		Description: req.Description,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, RequestBoardResponse{Requests: views, Total: len(views)}, http.StatusCreated)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateRequestStatus sets a request's status directly; any valid status is
// accepted regardless of the current one. Admin-gated at the router.
func (h *Handlers) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	views, err := h.Board.UpdateStatus(r.Context(), requestID, req.Status)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, RequestBoardResponse{Requests: views, Total: len(views)}, http.StatusOK)
}
