package handler

import (
	"net/http"
	"time"

	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/utils"
)

var videos = contentResource{
	path:    "videos",
	docType: domain.DocTypeVideo,
	idField: "id",
	label:   "video",
	filters: []string{"category"},
	sort:    sortByUpdatedAtDesc,
}

func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"required"`
		URL         string   `json:"url" validate:"required"`
		Thumbnail   string   `json:"thumbnail"`
		Duration    string   `json:"duration"`
		Category    string   `json:"category" validate:"required"`
		Tags        []string `json:"tags"`
		Published   bool     `json:"published"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	id := utils.Slugify(req.Title)
	if id == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "title must contain at least one alphanumeric character")
		return
	}

	now := time.Now().UTC()
	video := &domain.Video{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
		Category:    req.Category,
		Tags:        emptyIfNil(req.Tags),
		Published:   req.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	h.createContent(w, r, videos, video.ID, video)
}
