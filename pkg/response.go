package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// WriteJSONResponse marshals body and writes it with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		log.Errorf("failed to marshal response body: %s", err)
		WriteResponseBytes(
			w,
			ContentType.JSON,
			[]byte(`{"success":false,"message":"Internal server error","code":"SERVER_ERROR"}`),
			http.StatusInternalServerError,
		)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, bodyBytes, statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)
	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}
