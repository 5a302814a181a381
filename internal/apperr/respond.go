package apperr

import (
	"net/http"

	"github.com/2beens/gymsplit/pkg"

	log "github.com/sirupsen/logrus"
)

// ExposeStack adds stack traces of internal errors to responses; set outside production only.
var ExposeStack = false

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Stack   string `json:"stack,omitempty"`
}

// WriteError is the single place where errors become HTTP responses.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := From(err)

	resp := ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Code:    appErr.Code,
	}

	if appErr.Kind == KindInternal {
		log.Errorf("[%s %s] internal error: %s", r.Method, r.URL.Path, appErr.Err)
		if ExposeStack {
			resp.Stack = string(appErr.Stack())
		}
	} else {
		log.Tracef("[%s %s] %s error: %s", r.Method, r.URL.Path, appErr.Kind, appErr)
	}

	pkg.WriteJSONResponse(w, appErr.Kind.StatusCode(), resp)
}
