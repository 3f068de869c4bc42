package main

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"guangoku.dev/internal/config"
	"guangoku.dev/internal/content"
	"guangoku.dev/internal/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the state shared by the subcommands once config is loaded
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Bilingual portfolio server",
		Long: `portfolio serves the bilingual (English/Chinese) portfolio site: the project
catalog, blog, taxonomy and visitor preferences, behind a JSON API and the
single-page app shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")

	root.AddCommand(newServeCmd(a), newValidateCmd(a))
	return root
}

func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Level:           level,
		TimeFormat:      time.Kitchen,
	})
	return nil
}

// blogSource is blog_dir when set, else the posts built into the binary
func (a *app) blogSource() fs.FS {
	if a.cfg.BlogDir != "" {
		return os.DirFS(a.cfg.BlogDir)
	}
	return content.EmbeddedBlog()
}

func (a *app) loadBlog() ([]models.BlogPost, error) {
	posts, err := content.LoadBlogPosts(a.blogSource())
	if err != nil {
		return nil, fmt.Errorf("failed to load blog posts: %w", err)
	}
	return posts, nil
}
