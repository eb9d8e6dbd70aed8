package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"talenthub/internal/apperr"
	"talenthub/internal/middleware"
	"talenthub/internal/models"
	"talenthub/internal/service"
)

type FeedResponse struct {
	Talents []models.TalentView `json:"talents"`
	Total   int                 `json:"total"`
}

// GetFeed serves the aggregated talent list: sorted, profile-joined,
// personalized for the viewer when one is authenticated, and filtered by
// the q parameter.
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = models.SortRecent
	}
	filterText := r.URL.Query().Get("q")
	viewerID := middleware.ViewerID(r.Context())

	views, err := h.Feed.Load(r.Context(), sortKey, filterText, viewerID)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, FeedResponse{Talents: views, Total: len(views)}, http.StatusOK)
}

type uploadTalentForm struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	Category    string `validate:"required"`
}

func (h *Handlers) UploadTalent(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.ViewerID(r.Context())
	if viewerID == "" {
		writeFailure(w, apperr.ErrAuthRequired)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	form := uploadTalentForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}
	if err := h.Validate.Struct(form); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("media")
	if err != nil {
		writeError(w, "media file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var tags []string
	if raw := r.FormValue("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	talent, err := h.Talent.Upload(r.Context(), service.UploadTalentRequest{
		OwnerID:     viewerID,
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Tags:        tags,
		FileName:    header.Filename,
		File:        file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, talent, http.StatusCreated)
}

// DeleteTalent removes a talent. Only the owner or an admin may delete,
// and the caller must pass confirm=true explicitly.
func (h *Handlers) DeleteTalent(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.ViewerID(r.Context())
	if viewerID == "" {
		writeFailure(w, apperr.ErrAuthRequired)
		return
	}

	talentID := mux.Vars(r)["id"]

	talent, err := h.TalentRepo.GetByID(r.Context(), talentID)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if talent.OwnerID != viewerID && middleware.ViewerRole(r.Context()) != models.RoleAdmin {
		writeError(w, "only the owner or an admin can delete a talent", http.StatusForbidden)
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"

	views, err := h.Feed.DeleteTalent(r.Context(), talentID, confirmed)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, FeedResponse{Talents: views, Total: len(views)}, http.StatusOK)
}

// ToggleLike flips the viewer's reaction and returns the re-fetched feed.
func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.ViewerID(r.Context())
	talentID := mux.Vars(r)["id"]

	views, err := h.Feed.ToggleReaction(r.Context(), talentID, viewerID)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeSuccess(w, FeedResponse{Talents: views, Total: len(views)}, http.StatusOK)
}
