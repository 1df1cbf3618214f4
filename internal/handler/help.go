package handler

import (
	"net/http"
	"time"

	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/utils"
)

var helpArticles = contentResource{
	path:    "help",
	docType: domain.DocTypeHelpArticle,
	idField: "id",
	label:   "article",
	filters: []string{"category"},
	sort:    sortByUpdatedAtDesc,
}

func (h *Handler) CreateHelpArticle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title          string   `json:"title" validate:"required"`
		Description    string   `json:"description" validate:"required"`
		Category       string   `json:"category" validate:"required"`
		Content        string   `json:"content" validate:"required"`
		VideoURL       string   `json:"videoUrl"`
		VideoThumbnail string   `json:"videoThumbnail"`
		Tags           []string `json:"tags"`
		Published      bool     `json:"published"`
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
	article := &domain.HelpArticle{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Content:        req.Content,
		VideoURL:       req.VideoURL,
		VideoThumbnail: req.VideoThumbnail,
		Tags:           emptyIfNil(req.Tags),
		Published:      req.Published,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	h.createContent(w, r, helpArticles, article.ID, article)
}

func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
