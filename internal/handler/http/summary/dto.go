// Package summary serves CRUD endpoints for stored summaries.
package summary

import "github.com/puntadelverde-srpm/srpm/internal/domain/entity"

type DTO struct {
	ID       int64  `json:"id" example:"1"`
	Headline string `json:"headline" example:"Acuerdo presupuestario"`
	Body     string `json:"body" example:"Tres medios coinciden en..."`
}

// Request is the body accepted by create and update. An id in the body is ignored.
type Request struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

func toDTO(s *entity.Summary) DTO {
	return DTO{ID: s.ID, Headline: s.Headline, Body: s.Body}
}
