package services

import (
	"github.com/samber/lo"

	"guangoku.dev/internal/models"
	"guangoku.dev/internal/taxonomy"
)

// GalleryService serves the art gallery
type GalleryService struct {
	pieces     []models.ArtPiece
	categories []models.ArtCategory
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(pieces []models.ArtPiece, categories []models.ArtCategory) *GalleryService {
	return &GalleryService{pieces: pieces, categories: categories}
}

// Categories returns the gallery filters in display order
func (s *GalleryService) Categories() []models.ArtCategory {
	out := make([]models.ArtCategory, len(s.categories))
	copy(out, s.categories)
	return out
}

// List returns the pieces in a category. An empty or "all" category does not
// filter; a category nobody uses yields an empty list.
func (s *GalleryService) List(category string) []models.ArtPiece {
	if category == "" || category == taxonomy.All {
		out := make([]models.ArtPiece, len(s.pieces))
		copy(out, s.pieces)
		return out
	}
	return lo.Filter(s.pieces, func(p models.ArtPiece, _ int) bool {
		return p.Category == category
	})
}
