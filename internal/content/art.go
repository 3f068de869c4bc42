package content

import (
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

// Art gallery category ids
const (
	ArtIllustration    = "illustration"
	ArtDigital         = "digital-art"
	ArtCharacterDesign = "character-design"
	ArtGraphicNovel    = "graphic-novel"
)

const artDoodles = "/assets/art/minimalist-doodles.png"

var artCategories = []models.ArtCategory{
	{ID: ArtIllustration, Label: i18n.Text{En: "Illustration", Zh: "插画"}},
	{ID: ArtDigital, Label: i18n.Text{En: "Digital Art", Zh: "数字艺术"}},
	{ID: ArtCharacterDesign, Label: i18n.Text{En: "Character Design", Zh: "角色设计"}},
	{ID: ArtGraphicNovel, Label: i18n.Text{En: "Graphic Novel", Zh: "图像小说"}},
}

var artPieces = []models.ArtPiece{
	{
		ID:       "1",
		Title:    i18n.Text{En: "Minimalist Doodles", Zh: "极简涂鸦"},
		Category: ArtIllustration,
		Description: i18n.Text{
			En: "A collection of simple, elegant line drawings inspired by daily observations.",
			Zh: "一组源自日常观察的简洁线条画。",
		},
		ImageURL: artDoodles,
		Likes:    24,
		Year:     "2024",
	},
	{
		ID:       "2",
		Title:    i18n.Text{En: "Data Visualization Art", Zh: "数据可视化艺术"},
		Category: ArtDigital,
		Description: i18n.Text{
			En: "Beautiful patterns emerging from complex datasets.",
			Zh: "从复杂数据集中浮现的美丽图案。",
		},
		ImageURL: artDoodles,
		Likes:    18,
		Year:     "2024",
	},
	{
		ID:       "3",
		Title:    i18n.Text{En: "Octopus Dreams", Zh: "章鱼之梦"},
		Category: ArtCharacterDesign,
		Description: i18n.Text{
			En: "Art nouveau inspired character illustrations.",
			Zh: "受新艺术运动启发的角色插画。",
		},
		ImageURL: artDoodles,
		Likes:    32,
		Year:     "2024",
	},
}

// ArtCategories returns the gallery filters, without "all"
func ArtCategories() []models.ArtCategory {
	out := make([]models.ArtCategory, len(artCategories))
	copy(out, artCategories)
	return out
}

// ArtPieces returns the gallery in display order
func ArtPieces() []models.ArtPiece {
	out := make([]models.ArtPiece, len(artPieces))
	copy(out, artPieces)
	return out
}
