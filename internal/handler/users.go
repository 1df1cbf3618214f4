package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	publics := make([]*domain.PublicUser, 0, len(users))
	for _, user := range users {
		publics = append(publics, user.Public())
	}

	h.writeJSON(w, r, http.StatusOK, publics)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	role := domain.RoleEditor
	if req.Role != "" {
		role = domain.Role(req.Role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		ID:           utils.NewUserID(),
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.repository.CreateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation:
			h.conflict(w, r, "user already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, user.Public())
}

// UpdateUser changes a user's password and/or role. Password changes are
// allowed for the user themselves or an admin; role changes always require
// admin, self or not.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		NewPassword string `json:"newPassword"`
		Role        string `json:"role" validate:"omitempty,oneof=admin editor"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.ID == "" && req.Username == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "provide user id or username")
		return
	}

	target, err := h.resolveUser(req.ID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	current := h.currentUser(r)
	isSelf := current.ID == target.ID
	if !isSelf && current.Role != domain.RoleAdmin {
		h.forbidden(w, r)
		return
	}

	if req.NewPassword != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		target.PasswordHash = string(hashedPassword)
	}

	if req.Role != "" {
		if current.Role != domain.RoleAdmin {
			h.forbidden(w, r)
			return
		}
		target.Role = domain.Role(req.Role)
	}

	if err := h.repository.UpdateUser(target); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, target.Public())
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	username := r.URL.Query().Get("username")

	if id == "" && username == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "provide user id or username")
		return
	}

	if id == "" {
		target, err := h.repository.GetUserByUsername(username)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.notFound(w, r, "user not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		id = target.ID
	}

	deleted, err := h.repository.DeleteUser(id)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !deleted {
		h.notFound(w, r, "user not found")
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) resolveUser(id, username string) (*domain.User, error) {
	if id != "" {
		return h.repository.GetUserByID(id)
	}
	return h.repository.GetUserByUsername(username)
}
