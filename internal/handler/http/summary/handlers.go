package summary

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
	"github.com/puntadelverde-srpm/srpm/internal/handler/http/pathutil"
	"github.com/puntadelverde-srpm/srpm/internal/handler/http/respond"
	sumUC "github.com/puntadelverde-srpm/srpm/internal/usecase/summary"
)

var errInvalidBody = errors.New("invalid request body")

// statusFor maps use case errors to HTTP codes.
func statusFor(err error) int {
	var verr *entity.ValidationError
	switch {
	case errors.Is(err, sumUC.ErrSummaryNotFound):
		return http.StatusNotFound
	case errors.Is(err, sumUC.ErrInvalidSummaryID), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request) (sumUC.Input, error) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return sumUC.Input{}, errInvalidBody
	}
	return sumUC.Input{Headline: req.Headline, Body: req.Body}, nil
}

type ListHandler struct{ Svc *sumUC.Service }

// ServeHTTP lists all summaries
// @Summary      List summaries
// @Tags         summaries
// @Produce      json
// @Success      200 {array} DTO
// @Router       /summaries [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, s := range list {
		out = append(out, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, out)
}

type GetHandler struct{ Svc *sumUC.Service }

// ServeHTTP returns one summary
// @Summary      Get summary
// @Tags         summaries
// @Produce      json
// @Param        id path int true "summary ID"
// @Success      200 {object} DTO
// @Failure      404 {string} string "summary not found"
// @Router       /summaries/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	s, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(s))
}

type CreateHandler struct{ Svc *sumUC.Service }

// ServeHTTP creates a summary
// @Summary      Create summary
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        summary body Request true "summary"
// @Success      201 {object} DTO
// @Failure      400 {string} string "headline is required"
// @Router       /summaries [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := decode(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	s, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(s))
}

type UpdateHandler struct{ Svc *sumUC.Service }

// ServeHTTP replaces headline and body
// @Summary      Update summary
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        id path int true "summary ID"
// @Param        summary body Request true "summary"
// @Success      200 {object} DTO
// @Failure      404 {string} string "summary not found"
// @Router       /summaries/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	in, err := decode(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	s, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(s))
}

type DeleteHandler struct{ Svc *sumUC.Service }

// ServeHTTP deletes a summary
// @Summary      Delete summary
// @Tags         summaries
// @Param        id path int true "summary ID"
// @Success      204 "No Content"
// @Failure      404 {string} string "summary not found"
// @Router       /summaries/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
