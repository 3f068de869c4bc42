package content

import (
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

const nepalTravelSlug = "nepal-travel"

var nepalTravel = models.Project{
	ID: "2",
	Title: i18n.Text{
		En: "Nepal Travel Diaries",
		Zh: "尼国游日记",
	},
	Category: CategoryArt,
	Description: i18n.Text{
		En: "A graphic travelogue blending classical Chinese prose in Xu Xiake's style with ink-and-comic illustrations of Nepal's festivals, cities, and mountain trails.",
		Zh: "以徐霞客游记风格的古文，结合水墨与漫画的绘画方式，记录尼泊尔的节庆、古城与徒步旅程。",
	},
	ImageURL: "/assets/projects/nepal-travel/hero.jpg",
	Tags:     []models.TagID{models.TagID(CategoryArt), TagGraphicNovels, TagChineseLiterature},

	DetailImages:  []string{},
	ProcessImages: []string{},

	Medium:     "Ink & Comic",
	Techniques: []string{"Ink Painting", "Comic Illustration", "Classical Chinese Prose"},
	Timeline:   "2023",

	Challenges: &i18n.Text{
		En: "Balancing classical Chinese literary style with modern graphic novel format, and capturing the essence of Nepalese culture through art.",
		Zh: "平衡古典中国文学风格与现代图像小说格式，并通过艺术捕捉尼泊尔文化的精髓。",
	},
	Learnings: &i18n.Text{
		En: "Developed skills in classical Chinese prose writing, learned to blend traditional and modern art styles, and gained deep appreciation for cross-cultural storytelling.",
		Zh: "发展了古典中国散文写作技能，学会了融合传统和现代艺术风格，并对跨文化叙事有了深刻的理解。",
	},
}
