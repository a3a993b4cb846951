package item

import (
	"net/http"

	"github.com/puntadelverde-srpm/srpm/internal/handler/http/respond"
	itemUC "github.com/puntadelverde-srpm/srpm/internal/usecase/item"
)

type ListHandler struct{ Svc *itemUC.Service }

// ServeHTTP lists all items
// @Summary      List items
// @Tags         items
// @Produce      json
// @Success      200 {array} DTO
// @Failure      500 {string} string "internal server error"
// @Router       /items [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(items))
}

type ListBySourceHandler struct{ Svc *itemUC.Service }

// ServeHTTP lists items of one source, matched case-insensitively
// @Summary      List items by source
// @Tags         items
// @Produce      json
// @Param        source path string true "source name"
// @Success      200 {array} DTO
// @Router       /items/source/{source} [get]
func (h ListBySourceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListBySource(r.Context(), r.PathValue("source"))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(items))
}
