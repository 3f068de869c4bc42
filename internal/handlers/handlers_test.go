package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guangoku.dev/internal/config"
	"guangoku.dev/internal/content"
	"guangoku.dev/internal/services"
)

const testOrigin = "https://guangoku.dev"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithOrigins(t, []string{testOrigin})
}

func newTestRouterWithOrigins(t *testing.T, origins []string) http.Handler {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"),
		[]byte("<!doctype html>\n<html><body><div id=\"root\"></div></body></html>\n"), 0o644))

	posts, err := content.LoadBlogPosts(content.EmbeddedBlog())
	require.NoError(t, err)

	cfg := &config.Config{
		StaticDir:        staticDir,
		CookieMaxAgeDays: 1,
		AllowedOrigins:   origins,
	}
	return SetupRoutes(cfg, Dependencies{
		Projects: services.NewProjectService(content.Projects(), content.Slugs(), content.Registry()),
		Blog:     services.NewBlogService(posts, content.BlogCategories()),
		Gallery:  services.NewGalleryService(content.ArtPieces(), content.ArtCategories()),
		Resume:   content.Resume(),
		Contacts: content.ContactLinks(),
		Logger:   log.New(io.Discard),
	})
}

func do(t *testing.T, h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, h, httptest.NewRequest(http.MethodGet, target, nil))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func cookieValue(w *httptest.ResponseRecorder, name string) (string, bool) {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

func TestHealth(t *testing.T) {
	w := get(t, newTestRouter(t), "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListProjects(t *testing.T) {
	h := newTestRouter(t)

	w := get(t, h, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[projectList](t, w)
	assert.False(t, list.Empty)
	assert.Empty(t, list.Message)
	assert.Equal(t, []string{"1", "2", "3", "4"}, lo.Map(list.Projects, func(p projectView, _ int) string { return p.ID }))
	assert.Equal(t, "Octopus Girl: A Personal Avatar", list.Projects[0].Title)
	assert.Equal(t, "octopus-girl", list.Projects[0].Slug)

	list = decode[projectList](t, get(t, h, "/api/projects?lang=zh"))
	assert.Equal(t, "章鱼女孩", list.Projects[0].Title)
	assert.Equal(t, "艺术插画", list.Projects[0].Category.Label)
}

func TestListProjectsByTag(t *testing.T) {
	h := newTestRouter(t)

	list := decode[projectList](t, get(t, h, "/api/projects?tag=graphic-novels"))
	require.Len(t, list.Projects, 1)
	assert.Equal(t, "2", list.Projects[0].ID)

	list = decode[projectList](t, get(t, h, "/api/projects?tag=all"))
	assert.Len(t, list.Projects, 4)

	list = decode[projectList](t, get(t, h, "/api/projects?category=tech"))
	require.Len(t, list.Projects, 1)
	assert.Equal(t, "FlashMind", list.Projects[0].Title)
}

func TestListProjectsEmptyState(t *testing.T) {
	h := newTestRouter(t)

	list := decode[projectList](t, get(t, h, "/api/projects?tag=sculpture"))
	assert.True(t, list.Empty)
	assert.Empty(t, list.Projects)
	assert.Equal(t, "No projects found with this tag.", list.Message)

	r := httptest.NewRequest(http.MethodGet, "/api/projects?tag=sculpture", nil)
	r.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	list = decode[projectList](t, do(t, h, r))
	assert.Equal(t, "没有找到带有此标签的项目。", list.Message)

	list = decode[projectList](t, get(t, h, "/api/projects?q=nothing-matches-this"))
	assert.True(t, list.Empty)
	assert.Equal(t, "No projects match your search.", list.Message)
}

func TestSearchProjects(t *testing.T) {
	h := newTestRouter(t)

	list := decode[projectList](t, get(t, h, "/api/projects?q=flashmind"))
	require.Len(t, list.Projects, 1)
	assert.Equal(t, "3", list.Projects[0].ID)
}

func TestGroupedProjects(t *testing.T) {
	h := newTestRouter(t)
	categoryIDs := func(g groupedList) []string {
		return lo.Map(g.Groups, func(gv groupView, _ int) string { return string(gv.Category.ID) })
	}

	grouped := decode[groupedList](t, get(t, h, "/api/projects/grouped"))
	assert.False(t, grouped.Empty)
	assert.Empty(t, grouped.Message)
	require.Equal(t, []string{"art", "tech", "social-impact"}, categoryIDs(grouped))
	assert.Len(t, grouped.Groups[0].Projects, 2)

	grouped = decode[groupedList](t, get(t, h, "/api/projects/grouped?tag=web-app"))
	assert.Equal(t, []string{"tech", "social-impact"}, categoryIDs(grouped))
	assert.False(t, grouped.Empty)

	grouped = decode[groupedList](t, get(t, h, "/api/projects/grouped?tag=web-app&keep_empty=true"))
	require.Equal(t, []string{"art", "tech", "social-impact"}, categoryIDs(grouped))
	assert.Empty(t, grouped.Groups[0].Projects)

	grouped = decode[groupedList](t, get(t, h, "/api/projects/grouped?tag=sculpture"))
	assert.True(t, grouped.Empty)
	assert.Empty(t, grouped.Groups)
	assert.Equal(t, "No projects found with this tag.", grouped.Message)

	w := get(t, h, "/api/projects/grouped?keep_empty=maybe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectStats(t *testing.T) {
	stats := decode[services.Stats](t, get(t, newTestRouter(t), "/api/projects/stats"))

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Categories)
	assert.Equal(t, 2, stats.ByCategory["art"])
}

func TestGetProject(t *testing.T) {
	h := newTestRouter(t)

	w := get(t, h, "/api/projects/3")
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[projectView](t, w)
	assert.Equal(t, "FlashMind", p.Title)
	assert.Equal(t, "flashmind", p.Slug)
	assert.Equal(t, "Tech Development", p.Category.Label)
	assert.Equal(t, "Code", p.Category.Icon)
	assert.NotEmpty(t, p.Tags)

	w = get(t, h, "/api/projects/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, w.Body.String())
}

func TestGetProjectBySlug(t *testing.T) {
	h := newTestRouter(t)

	w := get(t, h, "/api/projects/slug/nepal-travel")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", decode[projectView](t, w).ID)

	w = get(t, h, "/api/projects/slug/no-such-project")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectNeighbors(t *testing.T) {
	h := newTestRouter(t)

	n := decode[neighborsView](t, get(t, h, "/api/projects/1/neighbors"))
	assert.Equal(t, "4", n.Prev.ID)
	assert.Equal(t, "2", n.Next.ID)

	w := get(t, h, "/api/projects/99/neighbors")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTags(t *testing.T) {
	h := newTestRouter(t)
	ids := func(tags []tagView) []string {
		return lo.Map(tags, func(t tagView, _ int) string { return string(t.ID) })
	}

	all := decode[[]tagView](t, get(t, h, "/api/tags"))
	assert.Contains(t, ids(all), "character-design")

	filterable := decode[[]tagView](t, get(t, h, "/api/tags?filterable=true"))
	assert.ElementsMatch(t, []string{"art", "tech", "social-impact", "graphic-novels", "web-app"}, ids(filterable))
	for _, tag := range filterable {
		assert.True(t, tag.Filterable, tag.ID)
	}
}

func TestListCategories(t *testing.T) {
	cats := decode[[]categoryView](t, get(t, newTestRouter(t), "/api/categories?lang=zh"))

	require.Len(t, cats, 3)
	assert.Equal(t, "艺术插画", cats[0].Label)
	assert.Equal(t, "Heart", cats[2].Icon)
}

func TestListContacts(t *testing.T) {
	contacts := decode[[]contactView](t, get(t, newTestRouter(t), "/api/contact"))

	assert.Len(t, contacts, 4)
	for _, c := range contacts {
		assert.NotEmpty(t, c.Label, c.ID)
		assert.NotEmpty(t, c.Href, c.ID)
	}
}

func TestBlog(t *testing.T) {
	h := newTestRouter(t)

	list := decode[blogList](t, get(t, h, "/api/blog"))
	assert.Equal(t, []string{"data-pipelines", "minimalist-art-and-code", "digital-nomad-journey"},
		lo.Map(list.Posts, func(p blogPostView, _ int) string { return p.ID }))
	assert.Empty(t, list.Posts[0].Body)
	assert.Equal(t, "8 min read", list.Posts[0].ReadTime)

	list = decode[blogList](t, get(t, h, "/api/blog?category=travel"))
	require.Len(t, list.Posts, 1)
	assert.Equal(t, "digital-nomad-journey", list.Posts[0].ID)

	list = decode[blogList](t, get(t, h, "/api/blog?q=zzzz"))
	assert.True(t, list.Empty)
	assert.Equal(t, "No posts found.", list.Message)

	cats := decode[[]labelView](t, get(t, h, "/api/blog/categories"))
	require.Len(t, cats, 4)
	assert.Equal(t, labelView{ID: "all", Label: "All Posts"}, cats[0])

	w := get(t, h, "/api/blog/data-pipelines?lang=zh")
	require.Equal(t, http.StatusOK, w.Code)
	post := decode[blogPostView](t, w)
	assert.Equal(t, "2024-01-15", post.Date)
	assert.Equal(t, "8分钟阅读", post.ReadTime)
	assert.Contains(t, post.Body, "<")

	w = get(t, h, "/api/blog/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreferences(t *testing.T) {
	h := newTestRouter(t)

	prefs := decode[preferencesView](t, get(t, h, "/api/preferences"))
	assert.Equal(t, "en", prefs.Language.Code())
	assert.Empty(t, prefs.RootClass)

	w := do(t, h, httptest.NewRequest(http.MethodPost, "/api/preferences/theme/toggle", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dark", decode[preferencesView](t, w).RootClass)
	theme, ok := cookieValue(w, "theme")
	require.True(t, ok)
	assert.Equal(t, "dark", theme)

	r := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
	r.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	assert.Equal(t, "dark", decode[preferencesView](t, do(t, h, r)).RootClass)

	w = do(t, h, httptest.NewRequest(http.MethodPost, "/api/preferences/language/toggle", nil))
	lang, ok := cookieValue(w, "language")
	require.True(t, ok)
	assert.Equal(t, "zh", lang)

	w = do(t, h, httptest.NewRequest(http.MethodPut, "/api/preferences/language/zh", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "zh", decode[preferencesView](t, w).Language.Code())

	w = do(t, h, httptest.NewRequest(http.MethodPut, "/api/preferences/language/fr", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLanguageToggleIgnoresLangOverride(t *testing.T) {
	h := newTestRouter(t)

	r := httptest.NewRequest(http.MethodPost, "/api/preferences/language/toggle?lang=zh", nil)
	r.AddCookie(&http.Cookie{Name: "language", Value: "en"})
	w := do(t, h, r)

	require.Equal(t, http.StatusOK, w.Code)
	lang, ok := cookieValue(w, "language")
	require.True(t, ok)
	assert.Equal(t, "zh", lang)
	assert.Equal(t, "zh", decode[preferencesView](t, w).Language.Code())

	r = httptest.NewRequest(http.MethodPost, "/api/preferences/theme/toggle?lang=zh", nil)
	r.AddCookie(&http.Cookie{Name: "language", Value: "en"})
	w = do(t, h, r)
	assert.Equal(t, "en", decode[preferencesView](t, w).Language.Code())
	_, written := cookieValue(w, "language")
	assert.False(t, written)
}

func TestCORS(t *testing.T) {
	preflight := func(h http.Handler, origin string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodOptions, "/api/preferences/theme/toggle", nil)
		r.Header.Set("Origin", origin)
		r.Header.Set("Access-Control-Request-Method", http.MethodPost)
		return do(t, h, r)
	}

	w := preflight(newTestRouter(t), testOrigin)
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = preflight(newTestRouter(t), "https://elsewhere.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	// a wildcard can never carry cookies, so credentials are not offered
	w = preflight(newTestRouterWithOrigins(t, []string{"*"}), "https://elsewhere.example")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestArtGallery(t *testing.T) {
	h := newTestRouter(t)

	list := decode[artList](t, get(t, h, "/api/art"))
	assert.False(t, list.Empty)
	assert.Equal(t, []string{"1", "2", "3"}, lo.Map(list.Pieces, func(p artPieceView, _ int) string { return p.ID }))
	assert.Equal(t, "Minimalist Doodles", list.Pieces[0].Title)
	assert.Equal(t, 24, list.Pieces[0].Likes)

	list = decode[artList](t, get(t, h, "/api/art?category=character-design&lang=zh"))
	require.Len(t, list.Pieces, 1)
	assert.Equal(t, "章鱼之梦", list.Pieces[0].Title)

	list = decode[artList](t, get(t, h, "/api/art?category=all"))
	assert.Len(t, list.Pieces, 3)

	list = decode[artList](t, get(t, h, "/api/art?category=graphic-novel"))
	assert.True(t, list.Empty)
	assert.Empty(t, list.Pieces)
	assert.Equal(t, "No artwork in this category yet.", list.Message)

	cats := decode[[]labelView](t, get(t, h, "/api/art/categories?lang=zh"))
	require.Len(t, cats, 5)
	assert.Equal(t, labelView{ID: "all", Label: "全部"}, cats[0])
	assert.Equal(t, "graphic-novel", cats[4].ID)
}

func TestResume(t *testing.T) {
	h := newTestRouter(t)

	res := decode[resumeView](t, get(t, h, "/api/resume"))
	require.Len(t, res.Experience, 2)
	assert.Equal(t, "Senior Data Engineer", res.Experience[0].Title)
	assert.Len(t, res.Experience[0].Achievements, 3)
	assert.Contains(t, res.Skills.Technical, "Python")
	require.Len(t, res.Education, 2)
	assert.Equal(t, "2020", res.Education[0].Year)

	res = decode[resumeView](t, get(t, h, "/api/resume?lang=zh"))
	assert.Equal(t, "高级数据工程师", res.Experience[0].Title)
	assert.Equal(t, "加州旧金山", res.Contact.Location)
	assert.Equal(t, "插画", res.Skills.Creative[0])
	assert.Contains(t, res.Skills.Technical, "Python")
}

func TestUnknownLangQuery(t *testing.T) {
	w := get(t, newTestRouter(t), "/api/projects?lang=fr")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppShell(t *testing.T) {
	h := newTestRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	r.AddCookie(&http.Cookie{Name: "language", Value: "zh"})
	w := do(t, h, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<html lang="zh" class="dark">`)

	w = get(t, h, "/projects")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<html lang="en">`)

	assert.Equal(t, http.StatusOK, get(t, h, "/blog").Code)
	assert.Equal(t, http.StatusOK, get(t, h, "/projects/charity-box").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/projects/no-such-project").Code)
}
