package content

import (
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

const charityBoxSlug = "charity-box"

var charityBox = models.Project{
	ID: "4",
	Title: i18n.Text{
		En: "Charity Box Mini-Program",
		Zh: "益盒小程序",
	},
	Category: CategorySocialImpact,
	Description: i18n.Text{
		En: "A WeChat mini-program that makes donating 1% of income simple and transparent, supporting effective charities across China. " +
			"I contributed to backend design, payment workflows, and user experience improvements.",
		Zh: "基于微信的小程序，让用户轻松透明地捐出收入的1%，支持全中国的高效公益组织。我参与了后端设计、支付流程及用户体验优化。",
	},
	ImageURL: "/assets/projects/charity-box/hero.jpg",
	Tags: []models.TagID{
		models.TagID(CategorySocialImpact),
		TagWebApp,
		TagWeChat,
		TagPayment,
		TagCharity,
	},

	DetailImages: []string{},
	ImpactMetrics: []models.ImpactMetric{
		{Label: "Users", Value: "10,000+"},
		{Label: "Donations", Value: "¥500,000+"},
		{Label: "Charities", Value: "50+"},
	},
	TechnicalStack: []string{"WeChat Mini-Program", "JavaScript", "Payment Integration"},

	Timeline:      "2023",
	Collaborators: []string{"Yihe Team"},

	Challenges: &i18n.Text{
		En: "Designing secure payment workflows, ensuring transparency in charity selection, and creating an intuitive user experience for donation tracking.",
		Zh: "设计安全的支付流程，确保慈善机构选择的透明度，并为捐赠跟踪创建直观的用户体验。",
	},
	Learnings: &i18n.Text{
		En: "Gained expertise in WeChat mini-program development, learned payment system integration, and developed skills in social impact technology design.",
		Zh: "获得了微信小程序开发的专业知识，学习了支付系统集成，并发展了社会影响技术设计技能。",
	},
}
