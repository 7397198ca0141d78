// Package di wires the runtime services together. Everything is constructed
// once, up front, and injected explicitly; there is no ambient global state.
package di

import (
	"context"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	zhttp "github.com/goliatone/go-zettel/internal/http"
	"github.com/goliatone/go-zettel/internal/logging"
	"github.com/goliatone/go-zettel/internal/logging/gologger"
	"github.com/goliatone/go-zettel/internal/render"
	"github.com/goliatone/go-zettel/internal/runtimeconfig"
	"github.com/goliatone/go-zettel/internal/store"
	"github.com/goliatone/go-zettel/internal/theme"
	"github.com/goliatone/go-zettel/internal/view"
	"github.com/goliatone/go-zettel/pkg/interfaces"
)

// Container holds the constructed runtime services.
type Container struct {
	cfg runtimeconfig.Config

	provider   interfaces.LoggerProvider
	renderer   interfaces.Renderer
	notes      *store.Store
	links      *view.LinkBuilder
	viewer     *view.Viewer
	api        *zhttp.API
	stylesheet string
}

// Option overrides a container dependency, primarily for tests and embedding
// hosts.
type Option func(*Container)

// WithLoggerProvider injects a logger provider instead of the configured one.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.provider = provider
	}
}

// WithRenderer injects a Markdown renderer instead of the configured engine.
func WithRenderer(renderer interfaces.Renderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// NewContainer validates cfg and constructs every service. The note store
// load happens here: the container is only returned once the collection is
// fully built, so consumers never observe a partially loaded store.
func NewContainer(ctx context.Context, cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.provider = provider
	}

	if c.renderer == nil {
		c.renderer = render.New(render.Options{
			Extensions:  cfg.Render.Extensions,
			HardWraps:   cfg.Render.HardWraps,
			SafeMode:    cfg.Render.SafeMode,
			DisableMath: cfg.Render.DisableMath,
		})
	}

	notes, err := store.Load(ctx, store.Config{
		BasePath:  cfg.Content.Dir,
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
		FailFast:  cfg.Content.FailFast,
	}, c.renderer, c.provider)
	if err != nil {
		return nil, err
	}
	c.notes = notes

	links, err := buildLinks(cfg)
	if err != nil {
		return nil, err
	}
	c.links = links
	c.viewer = view.NewViewer(links)

	stylesheet, err := theme.Stylesheet(theme.Config{
		Dir:               cfg.Theme.Dir,
		Name:              cfg.Theme.Name,
		Variant:           cfg.Theme.Variant,
		CSSVariablePrefix: cfg.Theme.CSSVariablePrefix,
	})
	if err != nil {
		return nil, err
	}
	c.stylesheet = stylesheet

	c.api = zhttp.NewAPI(notes, c.viewer, stylesheet, c.provider)
	return c, nil
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "noop":
		return noopProvider{}, nil
	default:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	}
}

func buildLinks(cfg runtimeconfig.Config) (*view.LinkBuilder, error) {
	group := strings.TrimSpace(cfg.HTTP.RouteGroup)
	if group == "" {
		group = "frontend"
	}

	routes := cfg.Routes
	if routes == nil {
		base := strings.TrimRight(cfg.HTTP.BaseURL, "/") + joinBase(cfg.HTTP.BasePath)
		routes = view.DefaultRouteConfig(base, group)
	}

	manager := urlkit.NewRouteManager(routes)
	return view.NewLinkBuilder(manager, group)
}

func joinBase(basePath string) string {
	trimmed := strings.Trim(strings.TrimSpace(basePath), "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

// LoggerProvider returns the active logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.provider
}

// Renderer returns the active Markdown renderer.
func (c *Container) Renderer() interfaces.Renderer {
	return c.renderer
}

// Store returns the loaded note store.
func (c *Container) Store() *store.Store {
	return c.notes
}

// Viewer returns the presentation adapter.
func (c *Container) Viewer() *view.Viewer {
	return c.viewer
}

// API returns the HTTP surface.
func (c *Container) API() *zhttp.API {
	return c.api
}

// Stylesheet returns the assembled CSS document.
func (c *Container) Stylesheet() string {
	return c.stylesheet
}

// Config returns the validated runtime configuration.
func (c *Container) Config() runtimeconfig.Config {
	return c.cfg
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
