package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/taxonomy"
)

// ErrPostNotFound is returned when a blog post id is unknown
var ErrPostNotFound = errors.New("post not found")

// BlogService serves blog posts. The post set can be swapped at runtime when
// the blog directory is watched.
type BlogService struct {
	mu         sync.RWMutex
	posts      []models.BlogPost
	categories []models.BlogCategory
}

// NewBlogService creates a new BlogService
func NewBlogService(posts []models.BlogPost, categories []models.BlogCategory) *BlogService {
	return &BlogService{posts: posts, categories: categories}
}

// Replace swaps the whole post set
func (s *BlogService) Replace(posts []models.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
}

// Categories returns the blog filter categories
func (s *BlogService) Categories() []models.BlogCategory {
	out := make([]models.BlogCategory, len(s.categories))
	copy(out, s.categories)
	return out
}

// BlogQuery filters List. An empty or "all" Category does not filter.
type BlogQuery struct {
	Category string
	Search   string
	Language i18n.Language
}

// List returns the posts in the category whose title (in the query language)
// or any tag contains the search text, case-insensitively
func (s *BlogService) List(q BlogQuery) []models.BlogPost {
	s.mu.RLock()
	posts := s.posts
	s.mu.RUnlock()

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))
	return lo.Filter(posts, func(p models.BlogPost, _ int) bool {
		if q.Category != "" && q.Category != taxonomy.All && p.Category != q.Category {
			return false
		}
		if needle == "" {
			return true
		}
		if strings.Contains(fold.String(i18n.Resolve(p.Title, q.Language)), needle) {
			return true
		}
		return lo.SomeBy(p.Tags, func(tag string) bool {
			return strings.Contains(fold.String(tag), needle)
		})
	})
}

// Get returns a post by id
func (s *BlogService) Get(id string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPostNotFound, id)
}
