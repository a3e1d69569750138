// Package inspect exposes running contexts over a small HTTP API and provides
// the matching client. The explain command uses the client to talk to a
// serving instance.
package inspect

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jkorab/camel/camelerr"
	"github.com/jkorab/camel/runtime"
)

// Handler returns the HTTP API over a context registry.
//
//	GET /contexts
//	GET /contexts/{name}/endpoints
//	GET /contexts/{name}/explain?uri=...&allOptions=true
func Handler(reg *runtime.Registry) http.Handler {
	r := chi.NewRouter()

	r.Get("/contexts", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"contexts": reg.Names()})
	})

	r.Get("/contexts/{name}/endpoints", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		endpoints, err := reg.Endpoints(name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"name": name, "endpoints": endpoints})
	})

	r.Get("/contexts/{name}/explain", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		uri := req.URL.Query().Get("uri")
		if uri == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "uri query parameter is required"})
			return
		}
		allOptions := req.URL.Query().Get("allOptions") == "true"

		doc, err := reg.ExplainEndpoint(name, uri, allOptions)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var unknownContext *camelerr.UnknownContextError
	var unknownScheme *camelerr.UnknownSchemeError
	var syntax *camelerr.URISyntaxError
	switch {
	case errors.As(err, &unknownContext):
		status = http.StatusNotFound
	case errors.As(err, &unknownScheme):
		status = http.StatusNotFound
	case errors.As(err, &syntax):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]any{"error": err.Error()})
}
