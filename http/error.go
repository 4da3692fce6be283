package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/startpage"
)

var codes = map[string]int{
	startpage.ECONFLICT: http.StatusConflict,
	startpage.EINVALID:  http.StatusBadRequest,
	startpage.ENOTFOUND: http.StatusNotFound,
	startpage.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of a failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes err as JSON. Internal errors are logged; their details
// never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code, message := startpage.ErrorCode(err), startpage.ErrorMessage(err)
	if code == startpage.EINTERNAL {
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ErrorStatusCode(code))
	_ = json.NewEncoder(w).Encode(&ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
