package content

import (
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

const flashmindSlug = "flashmind"

var flashmind = models.Project{
	ID: "3",
	Title: i18n.Text{
		En: "FlashMind",
		Zh: "闪念卡",
	},
	Category: CategoryTech,
	Description: i18n.Text{
		En: "AI flashcards that turn notes, links, or files into dynamic study cards with smart tagging and collections.",
		Zh: "记忆卡片应用，把笔记、链接或文件转化为动态学习卡片，并支持智能标签与合集",
	},
	ImageURL: "/assets/projects/flashmind/hero.png",
	Tags:     []models.TagID{models.TagID(CategoryTech), TagWebApp},

	DetailImages:   []string{},
	ProcessImages:  []string{},
	LiveURL:        "https://flashmind.app",
	TechnicalStack: []string{"React", "TypeScript", "Node.js", "OpenAI API"},

	Timeline:      "2024",
	Collaborators: []string{"Solo Project"},

	Challenges: &i18n.Text{
		En: "Integrating AI APIs effectively, creating an intuitive user interface for complex functionality, and optimizing performance for large datasets.",
		Zh: "有效集成AI API，为复杂功能创建直观的用户界面，以及优化大数据集的性能。",
	},
	Learnings: &i18n.Text{
		En: "Mastered AI integration patterns, learned advanced React state management, and gained experience with modern web app architecture.",
		Zh: "掌握了AI集成模式，学习了高级React状态管理，并获得了现代Web应用架构的经验。",
	},
}
