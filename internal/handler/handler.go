package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/ledger1-hq/website/backend/internal/config"
	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/repository"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api/cms", func(r chi.Router) {
		// authentication
		r.Post("/auth", h.Auth)
		r.Get("/auth", h.GetSession)

		// user management is session-gated as a whole; list/create/delete are
		// admin-only, update enforces self-or-admin inside the handler
		r.Route("/users", func(r chi.Router) {
			r.Use(h.auth)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/", h.ListUsers)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Put("/", h.UpdateUser)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
		})

		// content families share one route shape: public reads of published
		// content, session-gated mutations
		h.contentRoutes(r, helpArticles, h.CreateHelpArticle)
		h.contentRoutes(r, documentation, h.CreateDocumentation)
		h.contentRoutes(r, videos, h.CreateVideo)
		h.contentRoutes(r, careers, h.CreateCareer)
		h.contentRoutes(r, blogPosts, h.CreateBlogPost)
	})
}
