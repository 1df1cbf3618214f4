package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// Auth handles POST /auth: a login by default, a logout when the body says
// {"action":"logout"}. This mirrors the form the site's components expect.
func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action   string `json:"action"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Action == "logout" {
		// logout succeeds even for tokens that are already gone
		if token, ok := bearerToken(r); ok {
			if _, err := h.repository.DeleteSessionByToken(token); err != nil {
				h.internalServerError(w, r, err)
				return
			}
		}
		h.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
		return
	}

	if req.Username == "" || req.Password == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.repository.GetUserByUsername(req.Username)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.unauthorized(w, r, "invalid credentials")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			h.unauthorized(w, r, "invalid credentials")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	session, err := h.repository.CreateSession(user.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"token": session.Token,
		"user":  user.Public(),
	})
}

// GetSession handles GET /auth: resolve the bearer token to its user.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionUser(r)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidSession):
			h.unauthorized(w, r, "invalid or expired token")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"user": user.Public()})
}
