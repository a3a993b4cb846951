package summary

import (
	"net/http"

	sumUC "github.com/puntadelverde-srpm/srpm/internal/usecase/summary"
)

func Register(mux *http.ServeMux, svc *sumUC.Service) {
	mux.Handle("GET /summaries", ListHandler{svc})
	mux.Handle("POST /summaries", CreateHandler{svc})
	mux.Handle("GET /summaries/{id}", GetHandler{svc})
	mux.Handle("PUT /summaries/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /summaries/{id}", DeleteHandler{svc})
}
