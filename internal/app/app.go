// Package app implements the application layer for splice.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/splice/internal/adapters/watcher" //nolint:depguard // Debouncer drives watch mode
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
	"go.trai.ch/splice/internal/engine/index"
	"go.trai.ch/splice/internal/engine/lifecycle"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	driver       *lifecycle.Driver
	renderers    ports.RendererFactory
	watcher      ports.Watcher
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance writing reports to stdout.
func New(
	loader ports.ConfigLoader,
	driver *lifecycle.Driver,
	renderers ports.RendererFactory,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		driver:       driver,
		renderers:    renderers,
		watcher:      w,
		logger:       log,
		out:          os.Stdout,
	}
}

// WithOutput redirects reports to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// Dir is the directory the workspace is discovered from.
	Dir string
	// Mode overrides the mode of the workfile when set.
	Mode string
	// Format is the report format: text, json or yaml.
	Format string
	// Color is auto, always or never.
	Color string
	// Watch re-runs resolution whenever a configuration file changes.
	Watch bool
}

// IndexOptions configuration for the Index method.
type IndexOptions struct {
	Dir    string
	Format string
	Color  string
}

// Resolve loads the workspace, substitutes local references for matching external
// dependencies and renders the report.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	if opts.Mode != "" {
		if _, err := domain.ParseMode(opts.Mode); err != nil {
			return err
		}
	}

	renderer, err := a.renderers.NewRenderer(opts.Format, opts.Color)
	if err != nil {
		return err
	}

	if opts.Watch {
		return a.watch(ctx, opts, renderer)
	}
	_, err = a.resolveOnce(ctx, opts, renderer)
	return err
}

// Index evaluates every unit and renders the resulting export index.
func (a *App) Index(ctx context.Context, opts IndexOptions) error {
	renderer, err := a.renderers.NewRenderer(opts.Format, opts.Color)
	if err != nil {
		return err
	}

	ws, err := a.load(opts.Dir)
	if err != nil {
		return err
	}

	if err := a.driver.EvaluateAll(ctx, ws); err != nil {
		return zerr.Wrap(err, domain.ErrResolutionFailed.Error())
	}

	return renderer.RenderIndex(a.out, index.Build(ws.Units()).Snapshot())
}

// resolveOnce returns the loaded workspace even when resolution fails afterwards.
func (a *App) resolveOnce(ctx context.Context, opts ResolveOptions, renderer ports.Renderer) (*domain.Workspace, error) {
	ws, err := a.load(opts.Dir)
	if err != nil {
		return nil, err
	}

	mode := ws.Mode()
	if opts.Mode != "" {
		if mode, err = domain.ParseMode(opts.Mode); err != nil {
			return ws, err
		}
	}

	report, err := a.driver.Run(ctx, ws, mode)
	if err != nil {
		return ws, zerr.Wrap(err, domain.ErrResolutionFailed.Error())
	}

	return ws, renderer.RenderReport(a.out, ws, report)
}

func (a *App) load(dir string) (*domain.Workspace, error) {
	ws, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return ws, nil
}

// watch resolves once, then again after every debounced burst of configuration changes,
// until ctx is canceled. Failed runs are logged and do not end the loop.
func (a *App) watch(ctx context.Context, opts ResolveOptions, renderer ports.Renderer) error {
	root, err := a.configLoader.DiscoverRoot(opts.Dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	ws, err := a.resolveOnce(ctx, opts, renderer)
	if err != nil {
		a.logger.Error(err)
	}
	if ws != nil {
		// A workfile may point root at a directory above itself.
		root = commonRoot(root, ws.Root())
	}

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	a.logger.Info("watching " + root + " for configuration changes")

	changes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case changes <- paths:
		default:
		}
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		defer func() {
			_ = a.watcher.Stop()
		}()

		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-changes:
				a.logger.Info(fmt.Sprintf("%d configuration file(s) changed, resolving again", len(paths)))
				if _, err := a.resolveOnce(gctx, opts, renderer); err != nil {
					if errors.Is(err, context.Canceled) {
						return nil
					}
					a.logger.Error(err)
				}
			}
		}
	})

	return g.Wait()
}

// commonRoot returns the deepest directory containing both a and b.
func commonRoot(a, b string) string {
	a, b = filepath.Clean(a), filepath.Clean(b)
	for {
		rel, err := filepath.Rel(a, b)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return a
		}
		parent := filepath.Dir(a)
		if parent == a {
			return a
		}
		a = parent
	}
}
