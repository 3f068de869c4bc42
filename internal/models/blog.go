package models

import (
	"time"

	"guangoku.dev/internal/i18n"
)

// BlogPost is a bilingual blog entry. Body holds rendered HTML.
type BlogPost struct {
	ID              string    `json:"id" yaml:"id"`
	Title           i18n.Text `json:"title" yaml:"title"`
	Excerpt         i18n.Text `json:"excerpt" yaml:"excerpt"`
	Body            i18n.Text `json:"body" yaml:"body"`
	Tags            []string  `json:"tags" yaml:"tags"`
	Date            time.Time `json:"date" yaml:"date"`
	ReadTimeMinutes int       `json:"read_time_minutes" yaml:"read_time_minutes"`
	Category        string    `json:"category" yaml:"category"`
}

// BlogCategory is an entry of the blog filter bar
type BlogCategory struct {
	ID    string    `json:"id" yaml:"id"`
	Label i18n.Text `json:"label" yaml:"label"`
}

// ContactLink is an outbound contact channel
type ContactLink struct {
	ID    string    `json:"id" yaml:"id"`
	Label i18n.Text `json:"label" yaml:"label"`
	Href  string    `json:"href" yaml:"href"`
	Icon  string    `json:"icon" yaml:"icon"`
	Color string    `json:"color" yaml:"color"`
}
