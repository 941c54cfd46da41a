package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fwojciec/titlespec"
)

// errorStatusCodes maps application error codes to HTTP status codes.
var errorStatusCodes = map[string]int{
	titlespec.ECONFLICT:    http.StatusConflict,
	titlespec.EINVALID:     http.StatusBadRequest,
	titlespec.ENOTFOUND:    http.StatusNotFound,
	titlespec.EUNAVAILABLE: http.StatusServiceUnavailable,
	titlespec.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := errorStatusCodes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes err as a JSON error envelope. Errors that are not
// application errors are logged and reported with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := titlespec.ErrorCode(err), titlespec.ErrorMessage(err)
	var appErr *titlespec.Error
	if !errors.As(err, &appErr) {
		s.Logger.Error("internal error",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFrom(r.Context()),
			"err", err,
		)
	}

	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.RequestID = RequestIDFrom(r.Context())
	writeJSON(w, ErrorStatusCode(code), resp)
}
