package exercises

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type exercisesRepo interface {
	List(ctx context.Context, params ListParams) ([]Exercise, error)
	Get(ctx context.Context, id uuid.UUID) (*Exercise, error)
}

type ListResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    []Exercise `json:"data"`
}

type GetResponse struct {
	Success bool      `json:"success"`
	Data    *Exercise `json:"data"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	params := ListParams{
		Category: Category(r.URL.Query().Get("category")),
		Type:     Type(r.URL.Query().Get("type")),
	}
	// a filter value outside the catalog matches nothing
	if (params.Category != "" && !params.Category.IsValid()) || (params.Type != "" && !params.Type.IsValid()) {
		log.Tracef("unknown exercises filter [%s/%s]", params.Category, params.Type)
		pkg.WriteJSONResponse(w, http.StatusOK, ListResponse{
			Success: true,
			Message: "Found 0 exercises",
			Data:    []Exercise{},
		})
		return
	}

	exercises, err := handler.repo.List(ctx, params)
	if err != nil {
		apperr.WriteError(w, r, apperr.Internal(fmt.Errorf("list exercises: %w", err)))
		return
	}

	log.Tracef("listed %d exercises [%s/%s]", len(exercises), params.Category, params.Type)
	pkg.WriteJSONResponse(w, http.StatusOK, ListResponse{
		Success: true,
		Message: fmt.Sprintf("Found %d exercises", len(exercises)),
		Data:    exercises,
	})
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	// a malformed id cannot exist in the catalog
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		apperr.WriteError(w, r, apperr.NotFound("Exercise not found"))
		return
	}

	e, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			apperr.WriteError(w, r, apperr.NotFound("Exercise not found"))
			return
		}
		apperr.WriteError(w, r, apperr.Internal(fmt.Errorf("get exercise %s: %w", id, err)))
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, GetResponse{
		Success: true,
		Data:    e,
	})
}
