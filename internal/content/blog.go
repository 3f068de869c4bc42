package content

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

//go:embed blog/*.md
var embeddedBlog embed.FS

const blogDateLayout = "2006-01-02"

var blogCategories = []models.BlogCategory{
	{ID: "tech", Label: i18n.Text{En: "Tech", Zh: "技术"}},
	{ID: "travel", Label: i18n.Text{En: "Travel", Zh: "旅行"}},
	{ID: "learning", Label: i18n.Text{En: "Learning", Zh: "学习"}},
}

// BlogCategories returns the blog filter categories, without the "all" entry
func BlogCategories() []models.BlogCategory {
	out := make([]models.BlogCategory, len(blogCategories))
	copy(out, blogCategories)
	return out
}

// EmbeddedBlog returns the blog posts compiled into the binary
func EmbeddedBlog() fs.FS {
	sub, err := fs.Sub(embeddedBlog, "blog")
	if err != nil {
		panic(err)
	}
	return sub
}

type postMatter struct {
	Title    string   `yaml:"title"`
	Excerpt  string   `yaml:"excerpt"`
	Date     string   `yaml:"date"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	ReadTime int      `yaml:"read_time"`
}

type postFile struct {
	matter postMatter
	html   string
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// LoadBlogPosts reads every "<id>.<lang>.md" file at the root of fsys and
// merges each English/Chinese pair into one post. A post missing either
// language is an error. Posts are returned newest first.
func LoadBlogPosts(fsys fs.FS) ([]models.BlogPost, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, errors.Wrap(err, "list blog posts")
	}

	files := make(map[string]map[i18n.Language]postFile)
	for _, name := range names {
		id, lang, err := splitPostName(name)
		if err != nil {
			return nil, err
		}
		pf, err := readPost(fsys, name)
		if err != nil {
			return nil, err
		}
		if files[id] == nil {
			files[id] = make(map[i18n.Language]postFile, 2)
		}
		files[id][lang] = pf
	}

	posts := make([]models.BlogPost, 0, len(files))
	for id, byLang := range files {
		post, err := mergePost(id, byLang)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Date.Equal(posts[j].Date) {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

func splitPostName(name string) (string, i18n.Language, error) {
	base := strings.TrimSuffix(path.Base(name), ".md")
	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		return "", 0, errors.Errorf("blog post %s: expected <id>.<lang>.md", name)
	}
	lang, ok := i18n.Parse(base[dot+1:])
	if !ok {
		return "", 0, errors.Errorf("blog post %s: unknown language %q", name, base[dot+1:])
	}
	return base[:dot], lang, nil
}

func readPost(fsys fs.FS, name string) (postFile, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return postFile{}, errors.Wrapf(err, "read blog post %s", name)
	}

	var matter postMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		return postFile{}, errors.Wrapf(err, "parse frontmatter of %s", name)
	}

	var html bytes.Buffer
	if err := markdown.Convert(body, &html); err != nil {
		return postFile{}, errors.Wrapf(err, "render %s", name)
	}
	return postFile{matter: matter, html: html.String()}, nil
}

func mergePost(id string, byLang map[i18n.Language]postFile) (models.BlogPost, error) {
	en, okEn := byLang[i18n.English]
	zh, okZh := byLang[i18n.Chinese]
	if !okEn || !okZh {
		return models.BlogPost{}, errors.Errorf("blog post %s: needs both %s.en.md and %s.zh.md", id, id, id)
	}
	if en.matter.Date != zh.matter.Date || en.matter.Category != zh.matter.Category {
		return models.BlogPost{}, errors.Errorf("blog post %s: date and category must match across languages", id)
	}

	date, err := time.Parse(blogDateLayout, en.matter.Date)
	if err != nil {
		return models.BlogPost{}, errors.Wrapf(err, "blog post %s: bad date", id)
	}
	if !knownBlogCategory(en.matter.Category) {
		return models.BlogPost{}, errors.Errorf("blog post %s: unknown category %q", id, en.matter.Category)
	}

	post := models.BlogPost{
		ID:              id,
		Title:           i18n.Text{En: en.matter.Title, Zh: zh.matter.Title},
		Excerpt:         i18n.Text{En: en.matter.Excerpt, Zh: zh.matter.Excerpt},
		Body:            i18n.Text{En: en.html, Zh: zh.html},
		Tags:            en.matter.Tags,
		Date:            date,
		ReadTimeMinutes: en.matter.ReadTime,
		Category:        en.matter.Category,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if !i18n.Complete(post.Title) {
		return models.BlogPost{}, errors.Errorf("blog post %s: title needs both languages", id)
	}
	return post, nil
}

func knownBlogCategory(id string) bool {
	for _, c := range blogCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}
