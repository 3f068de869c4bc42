package models

import "guangoku.dev/internal/i18n"

// Resume is the CV section of the site
type Resume struct {
	Contact    ResumeContact `json:"contact" yaml:"contact"`
	Experience []Experience  `json:"experience" yaml:"experience"`
	Skills     Skills        `json:"skills" yaml:"skills"`
	Education  []Education   `json:"education" yaml:"education"`
}

// ResumeContact is the contact card at the top of the resume
type ResumeContact struct {
	Email    string    `json:"email" yaml:"email"`
	Phone    string    `json:"phone" yaml:"phone"`
	Location i18n.Text `json:"location" yaml:"location"`
	Website  string    `json:"website" yaml:"website"`
}

// Experience is one position, newest first
type Experience struct {
	ID           string     `json:"id" yaml:"id"`
	Title        i18n.Text  `json:"title" yaml:"title"`
	Company      i18n.Text  `json:"company" yaml:"company"`
	Period       i18n.Text  `json:"period" yaml:"period"`
	Description  i18n.Text  `json:"description" yaml:"description"`
	Achievements i18n.Array `json:"achievements" yaml:"achievements"`
}

// Skills groups skill badges. Technical skills are proper names and are not
// translated.
type Skills struct {
	Technical []string   `json:"technical" yaml:"technical"`
	Creative  i18n.Array `json:"creative" yaml:"creative"`
	Languages i18n.Array `json:"languages" yaml:"languages"`
}

// Education is one degree
type Education struct {
	ID     string    `json:"id" yaml:"id"`
	Degree i18n.Text `json:"degree" yaml:"degree"`
	School i18n.Text `json:"school" yaml:"school"`
	Year   string    `json:"year" yaml:"year"`
	Focus  i18n.Text `json:"focus" yaml:"focus"`
}
