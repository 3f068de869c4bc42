// Package content holds the site's static data: the taxonomy, one record per
// project, the slug table, blog posts, contact links and shared UI labels.
package content

import "guangoku.dev/internal/models"

// projects is in display order
var projects = []models.Project{
	octopusGirl,
	nepalTravel,
	flashmind,
	charityBox,
}

var slugs = []models.SlugEntry{
	{ID: octopusGirl.ID, Slug: octopusGirlSlug},
	{ID: nepalTravel.ID, Slug: nepalTravelSlug},
	{ID: flashmind.ID, Slug: flashmindSlug},
	{ID: charityBox.ID, Slug: charityBoxSlug},
}

// Projects returns the project collection in display order
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	return out
}

// Slugs returns the id to routing slug table
func Slugs() []models.SlugEntry {
	out := make([]models.SlugEntry, len(slugs))
	copy(out, slugs)
	return out
}
