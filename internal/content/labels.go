package content

import "guangoku.dev/internal/i18n"

// Shared UI strings
var (
	LabelAllTags      = i18n.Text{En: "All Tags", Zh: "所有标签"}
	LabelAllPosts     = i18n.Text{En: "All Posts", Zh: "所有文章"}
	LabelNoProjects   = i18n.Text{En: "No projects found with this tag.", Zh: "没有找到带有此标签的项目。"}
	LabelNoSearchHits = i18n.Text{En: "No projects match your search.", Zh: "没有找到符合搜索条件的项目。"}
	LabelNoPosts      = i18n.Text{En: "No posts found.", Zh: "没有找到文章。"}
	LabelAllArt       = i18n.Text{En: "All", Zh: "全部"}
	LabelNoArt        = i18n.Text{En: "No artwork in this category yet.", Zh: "该分类暂无作品。"}
	LabelCopyright    = i18n.Text{En: "© 2025 Mingyun Guan. All rights reserved.", Zh: "© 2025 超级赛亚关 — 版权所有。"}
	LabelTagline      = i18n.Text{En: "Made with ocean hues, code, and curiosity.", Zh: "用海洋色调、代码与好奇心编织而成。"}
)
