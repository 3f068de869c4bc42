package content

import (
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

var resume = models.Resume{
	Contact: models.ResumeContact{
		Email:    "guangoku@gmail.com",
		Phone:    "+1 (555) 123-4567",
		Location: i18n.Text{En: "San Francisco, CA", Zh: "加州旧金山"},
		Website:  "guangoku.dev",
	},
	Experience: []models.Experience{
		{
			ID:          "1",
			Title:       i18n.Text{En: "Senior Data Engineer", Zh: "高级数据工程师"},
			Company:     i18n.Text{En: "Tech Innovation Co.", Zh: "科技创新公司"},
			Period:      i18n.Text{En: "2022 - Present", Zh: "2022年至今"},
			Description: i18n.Text{
				En: "Building scalable data pipelines and analytics infrastructure for millions of users.",
				Zh: "为数百万用户构建可扩展的数据管道与分析基础设施。",
			},
			Achievements: i18n.Array{
				En: []string{
					"Designed and implemented ETL pipelines processing 10TB+ daily",
					"Reduced data processing time by 60% through optimization",
					"Led data migration to cloud infrastructure",
				},
				Zh: []string{
					"设计并实现每日处理10TB以上数据的ETL管道",
					"通过优化将数据处理时间缩短60%",
					"主导数据向云基础设施的迁移",
				},
			},
		},
		{
			ID:          "2",
			Title:       i18n.Text{En: "Data Scientist", Zh: "数据科学家"},
			Company:     i18n.Text{En: "Analytics Startup", Zh: "数据分析初创公司"},
			Period:      i18n.Text{En: "2020 - 2022", Zh: "2020年 - 2022年"},
			Description: i18n.Text{
				En: "Developed machine learning models and data visualization dashboards.",
				Zh: "开发机器学习模型与数据可视化仪表盘。",
			},
			Achievements: i18n.Array{
				En: []string{
					"Built predictive models improving customer retention by 25%",
					"Created interactive dashboards for C-level executives",
					"Published research on data visualization techniques",
				},
				Zh: []string{
					"构建预测模型，将客户留存率提升25%",
					"为高管层打造交互式仪表盘",
					"发表数据可视化技术相关研究",
				},
			},
		},
	},
	Skills: models.Skills{
		Technical: []string{"Python", "SQL", "JavaScript", "React", "PostgreSQL", "Docker", "AWS"},
		Creative: i18n.Array{
			En: []string{"Illustration", "Digital Art", "UI/UX Design", "Adobe Creative Suite"},
			Zh: []string{"插画", "数字艺术", "UI/UX设计", "Adobe创意套件"},
		},
		Languages: i18n.Array{
			En: []string{"English (Native)", "Chinese (Fluent)", "Spanish (Conversational)"},
			Zh: []string{"英语（母语）", "中文（流利）", "西班牙语（日常会话）"},
		},
	},
	Education: []models.Education{
		{
			ID:     "1",
			Degree: i18n.Text{En: "M.S. Computer Science", Zh: "计算机科学硕士"},
			School: i18n.Text{En: "University of Technology", Zh: "理工大学"},
			Year:   "2020",
			Focus:  i18n.Text{En: "Data Science & Machine Learning", Zh: "数据科学与机器学习"},
		},
		{
			ID:     "2",
			Degree: i18n.Text{En: "B.A. Fine Arts", Zh: "美术学士"},
			School: i18n.Text{En: "Art Institute", Zh: "艺术学院"},
			Year:   "2018",
			Focus:  i18n.Text{En: "Digital Media & Illustration", Zh: "数字媒体与插画"},
		},
	},
}

// Resume returns the resume
func Resume() models.Resume {
	return resume
}
