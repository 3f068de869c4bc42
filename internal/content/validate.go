package content

import (
	"fmt"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/taxonomy"
)

// Violation is a single data-integrity problem found by Validate
type Violation struct {
	ProjectID string `json:"project_id,omitempty"`
	Field     string `json:"field"`
	Message   string `json:"message"`
}

func (v Violation) String() string {
	if v.ProjectID == "" {
		return fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return fmt.Sprintf("project %s: %s: %s", v.ProjectID, v.Field, v.Message)
}

// Validate walks every project's references against the registry and the
// slug table and returns all violations found. An empty result means the
// data is consistent.
func Validate(reg *taxonomy.Registry, projects []models.Project, slugs []models.SlugEntry) []Violation {
	var out []Violation
	add := func(id, field, format string, args ...any) {
		out = append(out, Violation{ProjectID: id, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	ids := make(map[string]bool, len(projects))
	for _, p := range projects {
		if p.ID == "" {
			add("", "id", "project with title %q has an empty id", p.Title.En)
			continue
		}
		if ids[p.ID] {
			add(p.ID, "id", "duplicate project id")
		}
		ids[p.ID] = true

		if _, ok := reg.Category(p.Category); !ok {
			add(p.ID, "category", "unknown category %q", p.Category)
		}
		for _, t := range p.Tags {
			if _, ok := reg.Tag(t); !ok {
				add(p.ID, "tags", "unknown tag %q", t)
			}
		}

		checkText(p.ID, "title", &p.Title, add)
		checkText(p.ID, "description", &p.Description, add)
		checkText(p.ID, "artist_statement", p.ArtistStatement, add)
		checkText(p.ID, "challenges", p.Challenges, add)
		checkText(p.ID, "learnings", p.Learnings, add)
	}

	seenSlugs := make(map[string]string, len(slugs))
	slugged := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		if prev, dup := seenSlugs[s.Slug]; dup {
			add(s.ID, "slug", "slug %q already used by project %s", s.Slug, prev)
		}
		seenSlugs[s.Slug] = s.ID

		if slugged[s.ID] {
			add(s.ID, "slug", "more than one slug")
		}
		slugged[s.ID] = true

		if !ids[s.ID] {
			add(s.ID, "slug", "slug %q points at an unknown project", s.Slug)
		}
	}
	for _, p := range projects {
		if p.ID != "" && !slugged[p.ID] {
			add(p.ID, "slug", "no slug")
		}
	}

	return out
}

func checkText(id, field string, t *i18n.Text, add func(id, field, format string, args ...any)) {
	if t == nil {
		return
	}
	if !i18n.Complete(*t) {
		add(id, field, "missing English or Chinese text")
	}
}

// ValidateGallery checks that every art piece has a unique id, a known
// category and text in both languages
func ValidateGallery(categories []models.ArtCategory, pieces []models.ArtPiece) []Violation {
	var out []Violation
	add := func(id, field, format string, args ...any) {
		out = append(out, Violation{Field: fmt.Sprintf("art %s: %s", id, field), Message: fmt.Sprintf(format, args...)})
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.ID == taxonomy.All {
			add(c.ID, "category", "%q is reserved", taxonomy.All)
		}
		known[c.ID] = true
	}

	seen := make(map[string]bool, len(pieces))
	for _, p := range pieces {
		if seen[p.ID] {
			add(p.ID, "id", "duplicate art id")
		}
		seen[p.ID] = true
		if !known[p.Category] {
			add(p.ID, "category", "unknown category %q", p.Category)
		}
		checkText(p.ID, "title", &p.Title, add)
		checkText(p.ID, "description", &p.Description, add)
	}
	return out
}

// ValidateResume checks that every resume text has both languages and that
// translated lists line up item for item
func ValidateResume(r models.Resume) []Violation {
	var out []Violation
	add := func(id, field, format string, args ...any) {
		out = append(out, Violation{Field: fmt.Sprintf("resume %s: %s", id, field), Message: fmt.Sprintf(format, args...)})
	}
	checkList := func(id, field string, a i18n.Array) {
		if len(a.En) != len(a.Zh) {
			add(id, field, "%d English items but %d Chinese", len(a.En), len(a.Zh))
		}
	}

	checkText("contact", "location", &r.Contact.Location, add)
	for _, e := range r.Experience {
		checkText("experience "+e.ID, "title", &e.Title, add)
		checkText("experience "+e.ID, "company", &e.Company, add)
		checkText("experience "+e.ID, "period", &e.Period, add)
		checkText("experience "+e.ID, "description", &e.Description, add)
		checkList("experience "+e.ID, "achievements", e.Achievements)
	}
	checkList("skills", "creative", r.Skills.Creative)
	checkList("skills", "languages", r.Skills.Languages)
	for _, e := range r.Education {
		checkText("education "+e.ID, "degree", &e.Degree, add)
		checkText("education "+e.ID, "school", &e.School, add)
		checkText("education "+e.ID, "focus", &e.Focus, add)
	}
	return out
}

// ValidateSite runs every check over the built-in site data
func ValidateSite() []Violation {
	out := Validate(Registry(), Projects(), Slugs())
	out = append(out, ValidateGallery(ArtCategories(), ArtPieces())...)
	return append(out, ValidateResume(Resume())...)
}
