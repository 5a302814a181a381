package misc

import (
	"net/http"

	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
)

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type VersionResponse struct {
	Success bool   `json:"success"`
	Version string `json:"version"`
}

// Handler serves the public liveness and version endpoints.
type Handler struct {
	versionInfo string
}

func NewHandler(versionInfo string) *Handler {
	return &Handler{
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET", "OPTIONS").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: "Workout API is live and healthy!",
	})
}

func (handler *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: "API is running",
	})
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.versionInfo")
	defer span.End()

	version := handler.versionInfo
	if version == "" {
		version = "unknown"
	}
	span.SetAttributes(attribute.String("version", version))

	pkg.WriteJSONResponse(w, http.StatusOK, VersionResponse{
		Success: true,
		Version: version,
	})
}
