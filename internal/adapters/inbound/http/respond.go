package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/inbound/http/gen"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes the error envelope, tagged with the request id when there is one.
func respondError(w http.ResponseWriter, r *http.Request, err gen.ErrorResp) {
	if id, parseErr := uuid.Parse(RequestID(r.Context())); parseErr == nil {
		err.Error.RequestId = (*openapi_types.UUID)(&id)
	}

	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.UPSTREAMERROR:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

func respondBadRequest(w http.ResponseWriter, r *http.Request, format string, args ...any) {
	errResp := gen.ErrorResp{}
	errResp.Error.Code = gen.BADREQUEST
	errResp.Error.Message = fmt.Sprintf(format, args...)
	respondError(w, r, errResp)
}

// decodeBody decodes a JSON request body and answers 400 when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondBadRequest(w, r, "invalid request body: %v", err)
		return false
	}
	return true
}
