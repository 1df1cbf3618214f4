package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// contentResource describes one content family so list/update/delete can be
// generic; creation stays per-type because required fields differ.
type contentResource struct {
	path      string
	docType   string
	idField   string   // "id", or "slug" for blog posts
	label     string   // used in error messages
	filters   []string // extra equality query params, e.g. category
	tagFilter bool     // blog-only ?tag= containment filter
	sort      func([]map[string]any)
}

func (h *Handler) contentRoutes(r chi.Router, res contentResource, create http.HandlerFunc) {
	r.Route("/"+res.path, func(r chi.Router) {
		r.Get("/", h.listContent(res))
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", create)
			r.Put("/", h.updateContent(res))
			r.Delete("/", h.deleteContent(res))
		})
	})
}

// listContent serves both single-item fetches (?id= / ?slug=) and filtered
// listings. Published-only reads are public; drafts or an unspecified
// published filter require a session.
func (h *Handler) listContent(res contentResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filters := map[string]string{}
		id := q.Get(res.idField)
		if id != "" {
			filters[res.idField] = id
		}
		for _, f := range res.filters {
			if v := q.Get(f); v != "" {
				filters[f] = v
			}
		}
		published := q.Get("published")
		if published != "" {
			filters["published"] = published
		}
		tag := ""
		if res.tagFilter {
			tag = q.Get("tag")
		}

		if published != "true" {
			if _, err := h.sessionUser(r); err != nil {
				switch {
				case errors.Is(err, errInvalidSession):
					h.unauthorized(w, r, "invalid or expired token")
				default:
					h.internalServerError(w, r, err)
				}
				return
			}
		}

		docs, err := h.repository.ListDocuments(res.docType, filters, tag)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		if id != "" {
			if len(docs) == 0 {
				h.notFound(w, r, res.label+" not found")
				return
			}
			h.writeJSON(w, r, http.StatusOK, docs[0])
			return
		}

		res.sort(docs)
		h.writeJSON(w, r, http.StatusOK, docs)
	}
}

// updateContent shallow-merges the request body over the stored document.
// Omitted fields stay untouched; clearing a field takes an explicit null or
// empty value. The identifier and creation stamp never change.
func (h *Handler) updateContent(res contentResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var updates map[string]any
		if err := h.readJSON(r, &updates); err != nil {
			h.badRequest(w, r, err)
			return
		}

		id, _ := updates[res.idField].(string)
		if id == "" {
			h.errorResponse(w, r, http.StatusBadRequest, res.label+" "+res.idField+" is required")
			return
		}

		doc, err := h.repository.GetDocument(res.docType, id)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, res.label+" not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		for k, v := range updates {
			if k == res.idField || k == "id" || k == "createdAt" {
				continue
			}
			doc[k] = v
		}
		doc["updatedAt"] = time.Now().UTC()

		if err := h.repository.ReplaceDocument(res.docType, id, doc); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, res.label+" not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		h.writeJSON(w, r, http.StatusOK, doc)
	}
}

func (h *Handler) deleteContent(res contentResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get(res.idField)
		if id == "" {
			h.errorResponse(w, r, http.StatusBadRequest, res.label+" "+res.idField+" is required")
			return
		}

		deleted, err := h.repository.DeleteDocument(res.docType, id)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !deleted {
			h.notFound(w, r, res.label+" not found")
			return
		}

		h.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
	}
}

// createContent persists a freshly built content item. A duplicate id means
// another item already claimed the slug; create never overwrites.
func (h *Handler) createContent(w http.ResponseWriter, r *http.Request, res contentResource, id string, doc any) {
	if err := h.repository.CreateDocument(res.docType, id, doc); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation:
			h.conflict(w, r, "a "+res.label+" with this "+res.idField+" already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, doc)
}

func docTime(doc map[string]any, key string) time.Time {
	s, _ := doc[key].(string)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func docString(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

func docNumber(doc map[string]any, key string) float64 {
	n, _ := doc[key].(float64)
	return n
}

func sortByUpdatedAtDesc(docs []map[string]any) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docTime(docs[i], "updatedAt").After(docTime(docs[j], "updatedAt"))
	})
}

// documentation sorts by display order, newest first within the same slot
func sortByOrderThenRecency(docs []map[string]any) {
	sort.SliceStable(docs, func(i, j int) bool {
		oi, oj := docNumber(docs[i], "order"), docNumber(docs[j], "order")
		if oi != oj {
			return oi < oj
		}
		return docTime(docs[i], "updatedAt").After(docTime(docs[j], "updatedAt"))
	})
}

func sortByDateDesc(docs []map[string]any) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docString(docs[i], "date") > docString(docs[j], "date")
	})
}
