package handler

import (
	"net/http"
	"time"

	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/utils"
)

var documentation = contentResource{
	path:    "documentation",
	docType: domain.DocTypeDocumentation,
	idField: "id",
	label:   "document",
	filters: []string{"section"},
	sort:    sortByOrderThenRecency,
}

func (h *Handler) CreateDocumentation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"required"`
		Section     string   `json:"section" validate:"required,oneof=getting-started api user-guide integrations"`
		Content     string   `json:"content" validate:"required"`
		Order       int      `json:"order"`
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
	doc := &domain.Documentation{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Section:     req.Section,
		Content:     req.Content,
		Order:       req.Order,
		Tags:        emptyIfNil(req.Tags),
		Published:   req.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	h.createContent(w, r, documentation, doc.ID, doc)
}
