package users

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/auth"
	"github.com/2beens/gymsplit/internal/middleware"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type usersService interface {
	Signup(ctx context.Context, params SignupParams) (*User, string, error)
	Login(ctx context.Context, params LoginParams) (*User, string, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID uuid.UUID) (*User, error)
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

type Handler struct {
	service usersService
}

func NewHandler(service usersService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the public auth routes. The rate limiter wraps
// signup and login only.
func (handler *Handler) SetupRoutes(router *mux.Router, rateLimit mux.MiddlewareFunc) {
	limited := router.NewRoute().Subrouter()
	if rateLimit != nil {
		limited.Use(rateLimit)
	}
	limited.HandleFunc("/signup", handler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	limited.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")

	router.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	router.HandleFunc("/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.signup")
	defer span.End()

	var params SignupParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("signup, unmarshal json params: %s", err)
		apperr.WriteError(w, r, apperr.Validation("Invalid request body"))
		return
	}

	user, token, err := handler.service.Signup(ctx, params)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "User created successfully with workout plan",
		User:    user,
		Token:   token,
	})
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var params LoginParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		apperr.WriteError(w, r, apperr.Validation("Invalid request body"))
		return
	}

	user, token, err := handler.service.Login(ctx, params)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Logged in successfully",
		User:    user,
		Token:   token,
	})
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	if err := handler.service.Logout(ctx, middleware.BearerToken(r)); err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Logged out",
	})
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	userID, ok := auth.UserIDFrom(ctx)
	if !ok {
		apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized"))
		return
	}

	user, err := handler.service.Me(ctx, userID)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, AuthResponse{
		Success: true,
		User:    user,
	})
}
