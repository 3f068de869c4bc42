package content

import (
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

const octopusGirlSlug = "octopus-girl"

var octopusGirl = models.Project{
	ID: "1",
	Title: i18n.Text{
		En: "Octopus Girl: A Personal Avatar",
		Zh: "章鱼女孩",
	},
	Category: CategoryArt,
	Description: i18n.Text{
		En: "My personal avatar inspired by marine life, reflecting the octopus's intelligence, curiosity, and adaptability.",
		Zh: "以章鱼为灵感的个人化身，体现了章鱼的智慧、好奇与适应力。",
	},
	ImageURL: "/assets/projects/octopus-girl/hero.png",
	Tags:     []models.TagID{models.TagID(CategoryArt), TagCharacterDesign},

	DetailImages: []string{},

	ArtistStatement: &i18n.Text{
		En: "Octopus Girl is more than a character. She is my personal avatar and a recurring theme in my creative work. " +
			"Inspired by my love of scuba diving and fascination with marine life, she embodies the qualities I admire most in octopuses: " +
			"intelligence, curiosity, adaptability, playfulness, and a touch of shyness. Through a series of illustrations, I explore her moods, " +
			"colors, and personalities, from warm and curious to contemplative and serene. This project is both a visual journey and a " +
			"reflection of my own values: problem-solving, exploration, and embracing the unknown.",
		Zh: "这个角色代表了我持续学习和适应的旅程，就像章鱼可以改变形状和颜色来适应任何环境一样。",
	},

	Techniques: []string{"Digital Painting", "Character Design", "Color Theory"},

	Challenges: &i18n.Text{
		En: "Creating a character that balances cuteness with intelligence, and designing a versatile avatar that works across different contexts.",
		Zh: "创造一个平衡可爱与智慧的角色，设计一个在不同语境下都能通用的化身。",
	},
	Learnings: &i18n.Text{
		En: "Learned the importance of character consistency while maintaining visual variety, and how to create a memorable personal brand through design.",
		Zh: "学会了在保持视觉多样性的同时保持角色一致性，以及如何通过设计创造令人难忘的个人品牌。",
	},
}
