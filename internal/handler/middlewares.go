package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/ledger1-hq/website/backend/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog would mangle the multi-line trace
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// errInvalidSession covers every way a token fails to resolve to a user:
// missing, unknown, expired, or pointing at a deleted account. Callers see a
// 401 for all of them; storage failures stay distinct and become a 500.
var errInvalidSession = errors.New("invalid session")

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	return parts[1], true
}

// sessionUser resolves the request's bearer token to its user. An expired
// session is deleted on the spot (lazy cleanup); if that delete fails the
// session is still treated as invalid.
func (h *Handler) sessionUser(r *http.Request) (*domain.User, error) {
	token, ok := bearerToken(r)
	if !ok {
		return nil, errInvalidSession
	}

	session, err := h.repository.GetSessionByToken(token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errInvalidSession
		}
		return nil, err
	}

	if session.Expired(time.Now()) {
		if _, err := h.repository.DeleteSessionByToken(token); err != nil {
			slog.Error("failed to delete expired session", "error", err)
		}
		return nil, errInvalidSession
	}

	user, err := h.repository.GetUserByID(session.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errInvalidSession
		}
		return nil, err
	}

	return user, nil
}

func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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

		ctx := context.WithValue(r.Context(), CurrentUserCtx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequiredRole is an exact-match check; there is no role hierarchy.
func (h *Handler) RequiredRole(roles []domain.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := r.Context().Value(CurrentUserCtx).(*domain.User)
			if !slices.Contains(roles, user.Role) {
				h.forbidden(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) currentUser(r *http.Request) *domain.User {
	return r.Context().Value(CurrentUserCtx).(*domain.User)
}
