package content

import (
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/taxonomy"
)

// Category ids
const (
	CategoryArt          models.CategoryID = "art"
	CategoryTech         models.CategoryID = "tech"
	CategorySocialImpact models.CategoryID = "social-impact"
)

// Content tag ids
const (
	TagCharacterDesign   models.TagID = "character-design"
	TagGraphicNovels     models.TagID = "graphic-novels"
	TagChineseLiterature models.TagID = "chinese-literature"
	TagWebApp            models.TagID = "web-app"
	TagWeChat            models.TagID = "wechat"
	TagPayment           models.TagID = "payment"
	TagCharity           models.TagID = "charity"
)

var categories = []models.Category{
	{
		ID:    CategoryArt,
		Label: i18n.Text{En: "Art & Illustration", Zh: "艺术插画"},
		Icon:  "Palette",
	},
	{
		ID:    CategoryTech,
		Label: i18n.Text{En: "Tech Development", Zh: "技术开发"},
		Icon:  "Code",
	},
	{
		ID:    CategorySocialImpact,
		Label: i18n.Text{En: "Social Impact", Zh: "社会影响"},
		Icon:  "Heart",
	},
}

var contentTags = []models.ContentTag{
	{ID: TagCharacterDesign, Label: i18n.Text{En: "Character Design", Zh: "角色设计"}},
	{ID: TagGraphicNovels, Label: i18n.Text{En: "Graphic Novels", Zh: "图像小说"}, Filterable: true},
	{ID: TagChineseLiterature, Label: i18n.Text{En: "Chinese Literature", Zh: "中国文学"}},
	{ID: TagWebApp, Label: i18n.Text{En: "Web App", Zh: "网页应用"}, Filterable: true},
	{ID: TagWeChat, Label: i18n.Text{En: "WeChat", Zh: "微信"}},
	{ID: TagPayment, Label: i18n.Text{En: "Payment", Zh: "支付"}},
	{ID: TagCharity, Label: i18n.Text{En: "Charity", Zh: "慈善"}},
}

var registry = taxonomy.MustRegistry(categories, contentTags)

// Registry returns the site's category and tag registry
func Registry() *taxonomy.Registry {
	return registry
}
