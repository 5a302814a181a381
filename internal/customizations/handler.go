package customizations

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=customizations_test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/auth"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type customizationsService interface {
	List(ctx context.Context, userID uuid.UUID) ([]Customization, error)
	Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Customization, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type ListResponse struct {
	Success        bool            `json:"success"`
	Customizations []Customization `json:"customizations"`
}

type CreateResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Customization *Customization `json:"customization"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Handler struct {
	service customizationsService
}

func NewHandler(service customizationsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/customizations", handler.HandleList).Methods("GET", "OPTIONS").Name("list-customizations")
	router.HandleFunc("/customizations", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-customization")
	router.HandleFunc("/customizations/{customizationId}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-customization")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.customizations.list")
	defer span.End()

	userID, ok := auth.UserIDFrom(ctx)
	if !ok {
		apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized"))
		return
	}

	customizations, err := handler.service.List(ctx, userID)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, ListResponse{
		Success:        true,
		Customizations: customizations,
	})
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.customizations.create")
	defer span.End()

	userID, ok := auth.UserIDFrom(ctx)
	if !ok {
		apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized"))
		return
	}

	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("create customization, unmarshal json params: %s", err)
		apperr.WriteError(w, r, apperr.Validation("Invalid request body"))
		return
	}

	created, err := handler.service.Create(ctx, userID, params)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, CreateResponse{
		Success:       true,
		Message:       "Exercise customization created",
		Customization: created,
	})
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.customizations.delete")
	defer span.End()

	userID, ok := auth.UserIDFrom(ctx)
	if !ok {
		apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized"))
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["customizationId"])
	if err != nil {
		apperr.WriteError(w, r, apperr.NotFound("Customization not found"))
		return
	}

	if err := handler.service.Delete(ctx, userID, id); err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, DeleteResponse{
		Success: true,
		Message: "Customization deleted",
	})
}
