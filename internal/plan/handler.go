package plan

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plan_test

import (
	"context"
	"net/http"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/auth"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type planService interface {
	Plan(ctx context.Context, userID uuid.UUID) (*Plan, error)
}

type Response struct {
	Success bool  `json:"success"`
	Plan    *Plan `json:"plan"`
}

type Handler struct {
	service planService
}

func NewHandler(service planService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/plan", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.get")
	defer span.End()

	userID, ok := auth.UserIDFrom(ctx)
	if !ok {
		apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized"))
		return
	}

	plan, err := handler.service.Plan(ctx, userID)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, Response{
		Success: true,
		Plan:    plan,
	})
}
