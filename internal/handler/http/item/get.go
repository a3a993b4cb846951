package item

import (
	"errors"
	"net/http"

	"github.com/puntadelverde-srpm/srpm/internal/handler/http/pathutil"
	"github.com/puntadelverde-srpm/srpm/internal/handler/http/respond"
	itemUC "github.com/puntadelverde-srpm/srpm/internal/usecase/item"
)

type GetHandler struct{ Svc *itemUC.Service }

// ServeHTTP returns one item
// @Summary      Get item
// @Tags         items
// @Produce      json
// @Param        id path int true "item ID"
// @Success      200 {object} DTO
// @Failure      400 {string} string "invalid id"
// @Failure      404 {string} string "item not found"
// @Router       /items/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	it, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, itemUC.ErrInvalidItemID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, itemUC.ErrItemNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(it))
}
