package item

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/puntadelverde-srpm/srpm/internal/handler/http/respond"
	itemUC "github.com/puntadelverde-srpm/srpm/internal/usecase/item"
)

type ResolveGroupsHandler struct{ Svc *itemUC.Service }

// ServeHTTP expands groups of item IDs into groups of items. Unknown IDs are
// dropped and group order is kept.
// @Summary      Resolve item groups
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        groups body [][]int true "groups of item IDs, e.g. [[1,5],[2]]"
// @Success      200 {array} []DTO
// @Failure      400 {string} string "invalid request body"
// @Router       /items/groups/resolve [post]
func (h ResolveGroupsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var groups [][]int64
	if err := json.NewDecoder(r.Body).Decode(&groups); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body: expected an array of ID arrays"))
		return
	}

	resolved, err := h.Svc.ResolveGroups(r.Context(), groups)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([][]DTO, 0, len(resolved))
	for _, g := range resolved {
		out = append(out, toDTOs(g))
	}
	respond.JSON(w, http.StatusOK, out)
}
