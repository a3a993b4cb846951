package item

import (
	"net/http"

	itemUC "github.com/puntadelverde-srpm/srpm/internal/usecase/item"
)

// Register mounts the item routes. POST /items/fetch belongs to the ingest package.
func Register(mux *http.ServeMux, svc *itemUC.Service) {
	mux.Handle("GET /items", ListHandler{svc})
	mux.Handle("GET /items/source/{source}", ListBySourceHandler{svc})
	mux.Handle("GET /items/{id}", GetHandler{svc})
	mux.Handle("POST /items/groups/resolve", ResolveGroupsHandler{svc})
}
