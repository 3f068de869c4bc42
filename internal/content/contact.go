package content

import (
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

var contactLinks = []models.ContactLink{
	{
		ID:    "linkedin",
		Label: i18n.Text{En: "LinkedIn", Zh: "领英"},
		Href:  "https://www.linkedin.com/in/mingyun-guan-17760390/",
		Icon:  "Linkedin",
		Color: "#0077B5",
	},
	{
		ID:    "email",
		Label: i18n.Text{En: "Email", Zh: "邮箱"},
		Href:  "mailto:guangoku@gmail.com",
		Icon:  "Mail",
		Color: "#EA4335",
	},
	{
		ID:    "instagram",
		Label: i18n.Text{En: "Instagram", Zh: "Instagram"},
		Href:  "https://www.instagram.com/mingyun__g",
		Icon:  "Camera",
		Color: "#E4405F",
	},
	{
		ID:    "github",
		Label: i18n.Text{En: "GitHub", Zh: "GitHub"},
		Href:  "https://github.com/guangoku",
		Icon:  "Code",
		Color: "#181717",
	},
}

// ContactLinks returns the outbound contact channels in display order
func ContactLinks() []models.ContactLink {
	out := make([]models.ContactLink, len(contactLinks))
	copy(out, contactLinks)
	return out
}
