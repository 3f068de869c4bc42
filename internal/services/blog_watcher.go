package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"guangoku.dev/internal/content"
)

const blogReloadDebounce = 500 * time.Millisecond

// WatchBlog reloads the posts in dir into svc whenever a file there changes.
// A reload that fails keeps the previous posts. It blocks until ctx is done.
func WatchBlog(ctx context.Context, dir string, svc *BlogService, logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create blog watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info("Watching blog directory", "dir", dir)

	reload := func() {
		posts, err := content.LoadBlogPosts(os.DirFS(dir))
		if err != nil {
			logger.Error("Blog reload failed, keeping previous posts", "err", err)
			return
		}
		svc.Replace(posts)
		logger.Info("Blog reloaded", "posts", len(posts))
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Blog change detected", "file", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(blogReloadDebounce, reload)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Blog watcher error", "err", err)
		}
	}
}
