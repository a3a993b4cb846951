// Package item serves the read-only item endpoints.
package item

import (
	"time"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
)

// DTO is the JSON form of an item.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	Source      string    `json:"source" example:"COPE"`
	Title       string    `json:"title" example:"El Gobierno aprueba los presupuestos"`
	Link        string    `json:"link" example:"https://www.cope.es/actualidad/noticia-1"`
	Content     *string   `json:"content,omitempty"`
	PublishedAt time.Time `json:"published_at" example:"2025-10-26T10:00:00Z"`
}

func toDTO(it *entity.Item) DTO {
	return DTO{
		ID:          it.ID,
		Source:      it.Source,
		Title:       it.Title,
		Link:        it.Link,
		Content:     it.Content,
		PublishedAt: it.PublishedAt,
	}
}

func toDTOs(items []*entity.Item) []DTO {
	out := make([]DTO, 0, len(items))
	for _, it := range items {
		out = append(out, toDTO(it))
	}
	return out
}
