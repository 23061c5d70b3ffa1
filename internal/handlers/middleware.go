package handlers

import (
	"net/http"

	"gitlab.com/fcv-2025.net/client/internal/core/services/session"
	"gitlab.com/fcv-2025.net/client/internal/handlers/response"
)

type MiddlewareProvider struct {
	session session.ISessionService
}

func New(sessionSvc session.ISessionService) *MiddlewareProvider {
	return &MiddlewareProvider{
		session: sessionSvc,
	}
}

// SessionRequired rejects requests when no identity is logged in. This is the
// local access check; the judge still enforces its own authorization on every
// forwarded request.
func (m *MiddlewareProvider) SessionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.session.Identity() == nil {
			response.WriteError(w, response.ErrorMessage{
				Message:    "not authenticated",
				StatusCode: http.StatusUnauthorized,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
