package models

import "guangoku.dev/internal/i18n"

// ArtCategory is one filter of the art gallery
type ArtCategory struct {
	ID    string    `json:"id" yaml:"id"`
	Label i18n.Text `json:"label" yaml:"label"`
}

// ArtPiece is a single gallery work
type ArtPiece struct {
	ID          string    `json:"id" yaml:"id"`
	Title       i18n.Text `json:"title" yaml:"title"`
	Category    string    `json:"category" yaml:"category"`
	Description i18n.Text `json:"description" yaml:"description"`
	ImageURL    string    `json:"image_url" yaml:"image_url"`
	Likes       int       `json:"likes" yaml:"likes"`
	Year        string    `json:"year" yaml:"year"`
}
