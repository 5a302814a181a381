package workouts

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/auth"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type workoutsService interface {
	Start(ctx context.Context, userID uuid.UUID, params StartParams) (*Session, error)
	RecordSet(ctx context.Context, userID, sessionID uuid.UUID, params RecordSetParams) (*SetRecord, error)
	Complete(ctx context.Context, userID, sessionID uuid.UUID, params CompleteParams) (*Session, error)
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error)
}

type SessionResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Session *Session `json:"session"`
}

type SetRecordResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	SetRecord *SetRecord `json:"setRecord"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/sessions", handler.HandleStart).Methods("POST", "OPTIONS").Name("start-session")
	router.HandleFunc("/sessions/{sessionId}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	router.HandleFunc("/sessions/{sessionId}/set-record", handler.HandleRecordSet).Methods("POST", "OPTIONS").Name("record-set")
	router.HandleFunc("/sessions/{sessionId}/complete", handler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-session")
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	userID, ok := auth.UserIDFrom(ctx)
	if !ok {
		apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized"))
		return
	}

	var params StartParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		apperr.WriteError(w, r, apperr.Validation("Invalid request body"))
		return
	}

	session, err := handler.service.Start(ctx, userID, params)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, SessionResponse{
		Success: true,
		Message: "Workout started",
		Session: session,
	})
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, sessionID, ok := handler.userAndSession(w, r)
	if !ok {
		return
	}

	session, err := handler.service.Get(ctx, userID, sessionID)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, SessionResponse{
		Success: true,
		Session: session,
	})
}

func (handler *Handler) HandleRecordSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.recordSet")
	defer span.End()

	userID, sessionID, ok := handler.userAndSession(w, r)
	if !ok {
		return
	}

	var params RecordSetParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("record set, unmarshal json params: %s", err)
		apperr.WriteError(w, r, apperr.Validation("Invalid request body"))
		return
	}

	rec, err := handler.service.RecordSet(ctx, userID, sessionID, params)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusCreated, SetRecordResponse{
		Success:   true,
		Message:   "Set recorded",
		SetRecord: rec,
	})
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	userID, sessionID, ok := handler.userAndSession(w, r)
	if !ok {
		return
	}

	// the body is optional here
	var params CompleteParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("complete session, unmarshal json params: %s", err)
		apperr.WriteError(w, r, apperr.Validation("Invalid request body"))
		return
	}

	session, err := handler.service.Complete(ctx, userID, sessionID, params)
	if err != nil {
		apperr.WriteError(w, r, err)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, SessionResponse{
		Success: true,
		Message: "Workout completed",
		Session: session,
	})
}

func (handler *Handler) userAndSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		apperr.WriteError(w, r, apperr.Auth(apperr.CodeUnauthorized, "Not authorized"))
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		apperr.WriteError(w, r, apperr.NotFound("Workout session not found"))
		return uuid.Nil, uuid.Nil, false
	}

	return userID, sessionID, true
}
