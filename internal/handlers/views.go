package handlers

import (
	"github.com/samber/lo"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/services"
	"guangoku.dev/internal/taxonomy"
)

// Views are what the API sends: every bilingual field resolved to the
// requested language.

type categoryView struct {
	ID    models.CategoryID `json:"id"`
	Label string            `json:"label"`
	Icon  string            `json:"icon"`
}

type tagView struct {
	ID         models.TagID   `json:"id"`
	Label      string         `json:"label"`
	Filterable bool           `json:"filterable"`
	Kind       models.TagKind `json:"kind"`
}

type projectView struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    categoryView `json:"category"`
	ImageURL    string       `json:"image_url"`
	Tags        []tagView    `json:"tags"`

	DetailImages    []string              `json:"detail_images,omitempty"`
	ProcessImages   []string              `json:"process_images,omitempty"`
	LiveURL         string                `json:"live_url,omitempty"`
	GitHubURL       string                `json:"github_url,omitempty"`
	ImpactMetrics   []models.ImpactMetric `json:"impact_metrics,omitempty"`
	ArtistStatement string                `json:"artist_statement,omitempty"`
	TechnicalStack  []string              `json:"technical_stack,omitempty"`
	Medium          string                `json:"medium,omitempty"`
	Techniques      []string              `json:"techniques,omitempty"`
	Collaborators   []string              `json:"collaborators,omitempty"`
	Timeline        string                `json:"timeline,omitempty"`
	Challenges      string                `json:"challenges,omitempty"`
	Learnings       string                `json:"learnings,omitempty"`
}

func newCategoryView(c models.Category, lang i18n.Language) categoryView {
	return categoryView{ID: c.ID, Label: i18n.Resolve(c.Label, lang), Icon: c.Icon}
}

func newTagView(t models.Tag, lang i18n.Language) tagView {
	return tagView{ID: t.ID, Label: i18n.Resolve(t.Label, lang), Filterable: t.Filterable, Kind: t.Kind}
}

func resolveOptional(t *i18n.Text, lang i18n.Language) string {
	if t == nil {
		return ""
	}
	return i18n.Resolve(*t, lang)
}

func newProjectView(p models.Project, ps *services.ProjectService, lang i18n.Language) projectView {
	reg := ps.Registry()
	slug, _ := ps.SlugFor(p.ID)

	v := projectView{
		ID:          p.ID,
		Slug:        slug,
		Title:       i18n.Resolve(p.Title, lang),
		Description: i18n.Resolve(p.Description, lang),
		Category:    categoryView{ID: p.Category},
		ImageURL:    p.ImageURL,
		Tags:        tagViews(reg, p.Tags, lang),

		DetailImages:    p.DetailImages,
		ProcessImages:   p.ProcessImages,
		LiveURL:         p.LiveURL,
		GitHubURL:       p.GitHubURL,
		ImpactMetrics:   p.ImpactMetrics,
		ArtistStatement: resolveOptional(p.ArtistStatement, lang),
		TechnicalStack:  p.TechnicalStack,
		Medium:          p.Medium,
		Techniques:      p.Techniques,
		Collaborators:   p.Collaborators,
		Timeline:        p.Timeline,
		Challenges:      resolveOptional(p.Challenges, lang),
		Learnings:       resolveOptional(p.Learnings, lang),
	}
	if c, ok := reg.Category(p.Category); ok {
		v.Category = newCategoryView(c, lang)
	}
	return v
}

// tagViews resolves tag ids, skipping any the registry does not know
func tagViews(reg *taxonomy.Registry, ids []models.TagID, lang i18n.Language) []tagView {
	out := make([]tagView, 0, len(ids))
	for _, id := range ids {
		t, ok := reg.Tag(id)
		if !ok {
			continue
		}
		out = append(out, newTagView(t, lang))
	}
	return out
}

func projectViews(projects []models.Project, ps *services.ProjectService, lang i18n.Language) []projectView {
	return lo.Map(projects, func(p models.Project, _ int) projectView {
		return newProjectView(p, ps, lang)
	})
}

type projectList struct {
	Projects []projectView `json:"projects"`
	Empty    bool          `json:"empty"`
	Message  string        `json:"message,omitempty"`
}

type groupView struct {
	Category categoryView  `json:"category"`
	Projects []projectView `json:"projects"`
}

type groupedList struct {
	Groups  []groupView `json:"groups"`
	Empty   bool        `json:"empty"`
	Message string      `json:"message,omitempty"`
}

type neighborsView struct {
	Prev projectView `json:"prev"`
	Next projectView `json:"next"`
}

type blogPostView struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Body     string   `json:"body,omitempty"`
	Tags     []string `json:"tags"`
	Date     string   `json:"date"`
	ReadTime string   `json:"read_time"`
	Category string   `json:"category"`
}

func newBlogPostView(p models.BlogPost, lang i18n.Language, withBody bool) blogPostView {
	v := blogPostView{
		ID:       p.ID,
		Title:    i18n.Resolve(p.Title, lang),
		Excerpt:  i18n.Resolve(p.Excerpt, lang),
		Tags:     p.Tags,
		Date:     p.Date.Format("2006-01-02"),
		ReadTime: i18n.FormatReadTime(p.ReadTimeMinutes, lang),
		Category: p.Category,
	}
	if withBody {
		v.Body = i18n.Resolve(p.Body, lang)
	}
	return v
}

type blogList struct {
	Posts   []blogPostView `json:"posts"`
	Empty   bool           `json:"empty"`
	Message string         `json:"message,omitempty"`
}

type labelView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type contactView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
