package handler

import (
	"net/http"
	"time"

	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/utils"
)

var blogPosts = contentResource{
	path:      "blog",
	docType:   domain.DocTypeBlogPost,
	idField:   "slug",
	label:     "post",
	tagFilter: true,
	sort:      sortByDateDesc,
}

func (h *Handler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"required"`
		Content     string   `json:"content" validate:"required"`
		Author      string   `json:"author"`
		CoverImage  string   `json:"coverImage"`
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

	slug := utils.Slugify(req.Title)
	if slug == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "title must contain at least one alphanumeric character")
		return
	}

	author := req.Author
	if author == "" {
		author = "Ledger1 Team"
	}

	now := time.Now().UTC()
	post := &domain.BlogPost{
		Slug:        slug,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Date:        now.Format("2006-01-02"),
		Author:      author,
		CoverImage:  req.CoverImage,
		Tags:        emptyIfNil(req.Tags),
		Published:   req.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	h.createContent(w, r, blogPosts, post.Slug, post)
}
