// Package runtimeconfig defines the module configuration surface and its
// validation rules. The root package re-exports these types so hosts never
// import internal paths.
package runtimeconfig

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	urlkit "github.com/goliatone/go-urlkit"
)

var (
	ErrContentDirRequired     = errors.New("config: content directory is required")
	ErrLoggingProviderUnknown = errors.New("config: unknown logging provider")
	ErrLoggingLevelInvalid    = errors.New("config: invalid logging level")
	ErrLoggingFormatInvalid   = errors.New("config: invalid logging format")
)

const configValidationCode = "CONFIG_VALIDATION_FAILED"

// Config is the full runtime configuration.
type Config struct {
	Content ContentConfig
	Render  RenderConfig
	Theme   ThemeConfig
	HTTP    HTTPConfig
	Logging LoggingConfig
	// Routes overrides the default urlkit route table when hosts mount the
	// module behind their own URL scheme.
	Routes *urlkit.Config
}

// ContentConfig controls the startup directory scan.
type ContentConfig struct {
	// Dir is the content root holding note documents.
	Dir string
	// Pattern is the discovery glob (defaults to "*.md").
	Pattern string
	// Recursive enables sub-directory traversal.
	Recursive bool
	// FailFast aborts the load on the first unparseable document instead of
	// skipping it.
	FailFast bool
}

// RenderConfig controls Markdown engine assembly.
type RenderConfig struct {
	Extensions  []string
	HardWraps   bool
	SafeMode    bool
	DisableMath bool
}

// ThemeConfig selects the optional stylesheet theme manifest.
type ThemeConfig struct {
	Dir               string
	Name              string
	Variant           string
	CSSVariablePrefix string
}

// HTTPConfig shapes the served routes.
type HTTPConfig struct {
	// BasePath prefixes every endpoint (e.g. "/api").
	BasePath string
	// BaseURL roots generated hrefs; empty yields host-relative links.
	BaseURL string
	// RouteGroup names the urlkit group used for href building.
	RouteGroup string
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	// Provider is "gologger" or "noop".
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the runtime defaults: flat scan of ./notes, GFM
// rendering with math spans, JSON logging at info.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:     "notes",
			Pattern: "*.md",
		},
		HTTP: HTTPConfig{
			BasePath:   "/api",
			RouteGroup: "frontend",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate checks the configuration, returning a validation-category error
// naming the offending field.
func (c Config) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return wrapValidation(err)
	}
	if err := c.Logging.Validate(); err != nil {
		return wrapValidation(err)
	}
	return nil
}

// Validate ensures the content scan is actionable.
func (c ContentConfig) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return ErrContentDirRequired
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Pattern, validation.Required),
	)
}

// Validate checks provider, level, and format against the supported sets.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Provider)) {
	case "", "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal").
			ErrorObject(validation.NewError("config.logging.level", ErrLoggingLevelInvalid.Error()))),
		validation.Field(&c.Format, validation.In("", "json", "console", "pretty").
			ErrorObject(validation.NewError("config.logging.format", ErrLoggingFormatInvalid.Error()))),
	)
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "configuration validation failed").
		WithTextCode(configValidationCode)
}
