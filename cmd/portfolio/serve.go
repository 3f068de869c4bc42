package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"guangoku.dev/internal/content"
	"guangoku.dev/internal/handlers"
	"guangoku.dev/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the site and API",
		Long: `serve checks the content for dangling references, then starts the HTTP server.
With --watch and a blog_dir configured, blog posts are reloaded when their
files change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.ServerAddr = addr
			}
			if cmd.Flags().Changed("watch") {
				a.cfg.Watch = watch
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server_addr)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload blog posts from blog_dir on change")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	registry := content.Registry()
	projects, slugs := content.Projects(), content.Slugs()

	if violations := content.ValidateSite(); len(violations) > 0 {
		for _, v := range violations {
			a.logger.Error("Content violation", "project", v.ProjectID, "field", v.Field, "message", v.Message)
		}
		return fmt.Errorf("refusing to serve: %d content violations", len(violations))
	}

	posts, err := a.loadBlog()
	if err != nil {
		return err
	}
	blog := services.NewBlogService(posts, content.BlogCategories())
	a.logger.Info("Content loaded", "projects", len(projects), "posts", len(posts))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.cfg.Watch {
		if a.cfg.BlogDir == "" {
			a.logger.Warn("Watch requested but blog_dir is not set, serving embedded posts")
		} else {
			go func() {
				if err := services.WatchBlog(ctx, a.cfg.BlogDir, blog, a.logger); err != nil {
					a.logger.Error("Blog watcher stopped", "error", err)
				}
			}()
		}
	}

	router := handlers.SetupRoutes(a.cfg, handlers.Dependencies{
		Projects: services.NewProjectService(projects, slugs, registry),
		Blog:     blog,
		Gallery:  services.NewGalleryService(content.ArtPieces(), content.ArtCategories()),
		Resume:   content.Resume(),
		Contacts: content.ContactLinks(),
		Logger:   a.logger,
	})

	srv := &http.Server{
		Addr:              a.cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server listening", "addr", a.cfg.ServerAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
