package common

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Reason string `json:"reason,omitempty"`
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func RespondError(w http.ResponseWriter, err error) {
	RespondJSON(w, apperr.HTTPStatus(err), ErrorResponse{
		Error:  apperr.PublicMessage(err),
		Code:   string(apperr.CodeOf(err)),
		Reason: apperr.ReasonOf(err),
	})
}

// WriteError responds with err and logs it when it is not a client error.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if apperr.CodeOf(err) == apperr.CodeInternal {
		log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	RespondError(w, err)
}

// DecodeJSON reads a request body into v, mapping malformed input to a validation error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		return apperr.Validation("invalid request body")
	}
	return nil
}

// PathID parses a positive numeric mux path variable.
func PathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid " + name)
	}
	return id, nil
}
