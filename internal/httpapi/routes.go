package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/owings1/pytableaux/pkg/service"
)

// Mount attaches the Prove API routes to r.
func Mount(r chi.Router, svc *service.Service) {
	r.Post("/v1/prove", proveHandler(svc))
	r.Get("/healthz", healthHandler)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// proveHandler decodes a ProveRequest, runs it through svc, and writes the
// JSON response. Every response carries an X-Request-Id
// so a client can correlate a build across logs and retries.
func proveHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		w.Header().Set("Content-Type", "application/json")

		var req service.ProveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, &service.ErrorResponse{
				Errors: map[string]string{"body": err.Error()},
			})
			return
		}

		resp, status, err := svc.Prove(req)
		if err != nil {
			if errResp, ok := asErrorResponse(err); ok {
				writeJSON(w, status, errResp)
				return
			}
			writeJSON(w, http.StatusInternalServerError, &service.ErrorResponse{
				Errors: map[string]string{"server": err.Error()},
			})
			return
		}
		writeJSON(w, status, resp)
	}
}

func asErrorResponse(err error) (*service.ErrorResponse, bool) {
	e, ok := err.(*service.ErrorResponse)
	return e, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
