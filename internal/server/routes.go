package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"autoinsight/pkg/logx"
)

const (
	PathRoot   = "/"
	PathHealth = "/health"
	PathDocs   = "/docs"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get(PathRoot, s.probe.Info)
	r.Get(PathHealth, s.probe.Health)
	r.Get(PathDocs, s.getDocs)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/decode-vin/{vin}", handler(s.getV1DecodeVIN))
			r.Get("/pricing", handler(s.getV1Pricing))
		})
	})

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)
}

func (s Server) getDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(s.docs); err != nil {
		logger(r.Context()).Error("w.Write", logx.Error(err))
	}
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			writeError(r.Context(), w, err)
		}
	}
}
