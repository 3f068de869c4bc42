package models

import "guangoku.dev/internal/i18n"

// Project represents a showcased portfolio project
type Project struct {
	ID          string     `json:"id" yaml:"id"`
	Title       i18n.Text  `json:"title" yaml:"title"`
	Category    CategoryID `json:"category" yaml:"category"`
	Description i18n.Text  `json:"description" yaml:"description"`
	ImageURL    string     `json:"image_url" yaml:"image_url"`
	Tags        []TagID    `json:"tags" yaml:"tags"`

	// Rich detail payload, only set for projects with a full detail page
	DetailImages    []string       `json:"detail_images,omitempty" yaml:"detail_images,omitempty"`
	ProcessImages   []string       `json:"process_images,omitempty" yaml:"process_images,omitempty"`
	LiveURL         string         `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	GitHubURL       string         `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	ImpactMetrics   []ImpactMetric `json:"impact_metrics,omitempty" yaml:"impact_metrics,omitempty"`
	ArtistStatement *i18n.Text     `json:"artist_statement,omitempty" yaml:"artist_statement,omitempty"`
	TechnicalStack  []string       `json:"technical_stack,omitempty" yaml:"technical_stack,omitempty"`

	Medium        string     `json:"medium,omitempty" yaml:"medium,omitempty"`
	Techniques    []string   `json:"techniques,omitempty" yaml:"techniques,omitempty"`
	Collaborators []string   `json:"collaborators,omitempty" yaml:"collaborators,omitempty"`
	Timeline      string     `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	Challenges    *i18n.Text `json:"challenges,omitempty" yaml:"challenges,omitempty"`
	Learnings     *i18n.Text `json:"learnings,omitempty" yaml:"learnings,omitempty"`
}

// ImpactMetric is a single headline number shown on a project page
type ImpactMetric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// HasTag reports whether the project carries the tag, counting its category
// as an implicit tag
func (p *Project) HasTag(id TagID) bool {
	if TagID(p.Category) == id {
		return true
	}
	for _, t := range p.Tags {
		if t == id {
			return true
		}
	}
	return false
}

// SlugEntry maps an internal project id to its routing slug
type SlugEntry struct {
	ID   string `json:"id" yaml:"id"`
	Slug string `json:"slug" yaml:"slug"`
}
