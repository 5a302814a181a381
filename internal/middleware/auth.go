package middleware

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/auth"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type tokenResolver interface {
	UserID(ctx context.Context, token string) (uuid.UUID, error)
}

type AuthMiddlewareHandler struct {
	tokenResolver tokenResolver
	allowedPaths  map[string]bool
}

func NewAuthMiddlewareHandler(tokenResolver tokenResolver) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenResolver: tokenResolver,
		allowedPaths: map[string]bool{
			"/":        true,
			"/health":  true,
			"/version": true,

			// signup-login:
			"/api/auth/signup": true,
			"/api/auth/login":  true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := BearerToken(r)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized, no token"))
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.tokenResolver.UserID(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized, token failed"))
					span.SetStatus(codes.Error, "invalid-token")
					return
				}
				log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
				apperr.WriteError(w, r, apperr.Internal(err))
				span.SetStatus(codes.Error, "check-token-err")
				span.RecordError(err)
				return
			}

			span.SetAttributes(attribute.String("user.id", userID.String()))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
