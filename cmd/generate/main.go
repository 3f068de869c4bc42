package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"guangoku.dev/internal/content"
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

// Snapshot is everything the site serves, in both languages
type Snapshot struct {
	Categories     []models.Category     `json:"categories" yaml:"categories"`
	Tags           []models.Tag          `json:"tags" yaml:"tags"`
	Projects       []models.Project      `json:"projects" yaml:"projects"`
	Slugs          []models.SlugEntry    `json:"slugs" yaml:"slugs"`
	BlogCategories []models.BlogCategory `json:"blog_categories" yaml:"blog_categories"`
	BlogPosts      []models.BlogPost     `json:"blog_posts" yaml:"blog_posts"`
	Contacts       []models.ContactLink  `json:"contacts" yaml:"contacts"`
	ArtCategories  []models.ArtCategory  `json:"art_categories" yaml:"art_categories"`
	ArtPieces      []models.ArtPiece     `json:"art_pieces" yaml:"art_pieces"`
	Resume         models.Resume         `json:"resume" yaml:"resume"`
}

// projectCard is one row of a per-language project index
type projectCard struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    models.CategoryID `json:"category"`
	ImageURL    string            `json:"image_url"`
}

func buildSnapshot() (*Snapshot, error) {
	posts, err := content.LoadBlogPosts(content.EmbeddedBlog())
	if err != nil {
		return nil, err
	}
	reg := content.Registry()
	return &Snapshot{
		Categories:     reg.Categories(),
		Tags:           reg.Tags(),
		Projects:       content.Projects(),
		Slugs:          content.Slugs(),
		BlogCategories: content.BlogCategories(),
		BlogPosts:      posts,
		Contacts:       content.ContactLinks(),
		ArtCategories:  content.ArtCategories(),
		ArtPieces:      content.ArtPieces(),
		Resume:         content.Resume(),
	}, nil
}

func projectCards(s *Snapshot, lang i18n.Language) []projectCard {
	slugByID := lo.SliceToMap(s.Slugs, func(e models.SlugEntry) (string, string) {
		return e.ID, e.Slug
	})
	return lo.Map(s.Projects, func(p models.Project, _ int) projectCard {
		return projectCard{
			ID:          p.ID,
			Slug:        slugByID[p.ID],
			Title:       i18n.Resolve(p.Title, lang),
			Description: i18n.Resolve(p.Description, lang),
			Category:    p.Category,
			ImageURL:    p.ImageURL,
		}
	})
}

// writeSnapshot validates the content and writes content.json, content.yaml
// and one projects.<lang>.json per language into dir
func writeSnapshot(dir string, out io.Writer) error {
	if violations := content.ValidateSite(); len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintln(out, v)
		}
		return fmt.Errorf("%d content violations", len(violations))
	}

	snapshot, err := buildSnapshot()
	if err != nil {
		return err
	}

	// Ensure output directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := map[string]func() ([]byte, error){
		"content.json": func() ([]byte, error) { return json.MarshalIndent(snapshot, "", "  ") },
		"content.yaml": func() ([]byte, error) { return yaml.Marshal(snapshot) },
	}
	for _, lang := range i18n.Languages {
		cards := projectCards(snapshot, lang)
		files[fmt.Sprintf("projects.%s.json", lang.Code())] = func() ([]byte, error) {
			return json.MarshalIndent(cards, "", "  ")
		}
	}

	names := lo.Keys(files)
	sort.Strings(names)
	for _, name := range names {
		data, err := files[name]()
		if err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		fmt.Fprintf(out, "  Created %s\n", name)
	}

	fmt.Fprintf(out, "Done! %d projects, %d posts\n", len(snapshot.Projects), len(snapshot.BlogPosts))
	return nil
}

func newGenerateCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Exports the site content as JSON and YAML",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSnapshot(outDir, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func main() {
	if err := newGenerateCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
