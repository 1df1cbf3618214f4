package handler

import (
	"net/http"
	"time"

	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/utils"
)

var careers = contentResource{
	path:    "careers",
	docType: domain.DocTypeCareer,
	idField: "id",
	label:   "career",
	filters: []string{"department"},
	sort:    sortByUpdatedAtDesc,
}

func (h *Handler) CreateCareer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title            string   `json:"title" validate:"required"`
		Department       string   `json:"department" validate:"required"`
		Location         string   `json:"location" validate:"required"`
		Type             string   `json:"type" validate:"required,oneof=Full-time Part-time Contract Internship"`
		Description      string   `json:"description" validate:"required"`
		Responsibilities string   `json:"responsibilities" validate:"required"`
		Qualifications   string   `json:"qualifications" validate:"required"`
		Benefits         string   `json:"benefits"`
		SalaryRange      string   `json:"salaryRange"`
		ApplyURL         string   `json:"applyUrl"`
		Tags             []string `json:"tags"`
		Published        bool     `json:"published"`
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
	career := &domain.Career{
		ID:               id,
		Title:            req.Title,
		Department:       req.Department,
		Location:         req.Location,
		Type:             req.Type,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Qualifications:   req.Qualifications,
		Benefits:         req.Benefits,
		SalaryRange:      req.SalaryRange,
		ApplyURL:         req.ApplyURL,
		Tags:             emptyIfNil(req.Tags),
		Published:        req.Published,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	h.createContent(w, r, careers, career.ID, career)
}
