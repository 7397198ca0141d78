package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zettel "github.com/goliatone/go-zettel"
	"github.com/goliatone/go-zettel/internal/logging"
)

func main() {
	var (
		addr         = flag.String("addr", ":3000", "Listen address for the HTTP server")
		contentDir   = flag.String("content-dir", "notes", "Path to the note content root")
		pattern      = flag.String("pattern", "*.md", "Glob pattern applied when discovering note files")
		recursive    = flag.Bool("recursive", false, "Traverse sub-directories of the content root")
		failFast     = flag.Bool("fail-fast", false, "Abort startup on the first unparseable note instead of skipping it")
		basePath     = flag.String("base-path", "/api", "URL prefix for the note endpoints")
		baseURL      = flag.String("base-url", "", "Absolute base URL for generated hrefs (empty for host-relative links)")
		themeDir     = flag.String("theme-dir", "", "Optional go-theme manifest directory for the stylesheet")
		themeVariant = flag.String("theme-variant", "", "Theme variant (e.g. dark)")
		logLevel     = flag.String("log-level", "info", "Log level (trace|debug|info|warn|error|fatal)")
		logFormat    = flag.String("log-format", "json", "Log format (json|console|pretty)")
	)

	flag.Parse()

	cfg := zettel.DefaultConfig()
	cfg.Content.Dir = *contentDir
	cfg.Content.Pattern = *pattern
	cfg.Content.Recursive = *recursive
	cfg.Content.FailFast = *failFast
	cfg.HTTP.BasePath = *basePath
	cfg.HTTP.BaseURL = *baseURL
	cfg.Theme.Dir = *themeDir
	cfg.Theme.Variant = *themeVariant
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	module, err := zettel.New(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap note module: %v", err)
	}

	logger := logging.ModuleLogger(module.Container().LoggerProvider(), "")

	report := module.Report()
	logger.Info("notes loaded", "count", report.Loaded, "skipped", len(report.Skipped))
	for _, skipped := range report.Skipped {
		logger.Warn("note skipped", "path", skipped.Path, "reason", skipped.Reason.Error())
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           module.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", *addr, "base_path", *basePath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Fatalf("shutdown: %v", err)
		}
	}
}
