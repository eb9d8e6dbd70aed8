package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"talenthub/internal/middleware"
	"talenthub/internal/models"
)

type ThreadResponse struct {
	Comments []models.CommentView `json:"comments"`
	Total    int                  `json:"total"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	talentID := mux.Vars(r)["id"]

	views, err := h.Feed.Thread(r.Context(), talentID)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, ThreadResponse{Comments: views, Total: len(views)}, http.StatusOK)
}

type postCommentRequest struct {
	Body string `json:"body" validate:"required,max=1000"`
}

// PostComment appends to the talent's thread and returns the re-fetched
// thread; the feed itself is not reloaded.
func (h *Handlers) PostComment(w http.ResponseWriter, r *http.Request) {
	talentID := mux.Vars(r)["id"]
	viewerID := middleware.ViewerID(r.Context())

	var req postCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	views, err := h.Feed.PostComment(r.Context(), talentID, viewerID, req.Body)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, ThreadResponse{Comments: views, Total: len(views)}, http.StatusCreated)
}
