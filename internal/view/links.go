package view

import (
	"fmt"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route names the link builder resolves against its urlkit group.
const (
	RouteNotes  = "notes"
	RouteNote   = "note"
	RouteAsset  = "asset"
	RouteStyles = "styles"
)

// DefaultRouteConfig returns the route table for the read surface, rooted at
// baseURL. Hosts embedding the module can swap their own urlkit config in.
func DefaultRouteConfig(baseURL, group string) *urlkit.Config {
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    group,
				BaseURL: baseURL,
				Paths: map[string]string{
					RouteNotes:  "/notes",
					RouteNote:   "/notes/:id",
					RouteAsset:  "/notes/:id/assets/:name",
					RouteStyles: "/styles.css",
				},
			},
		},
	}
}

// LinkBuilder renders hrefs for notes and attachments through go-urlkit.
// A nil builder is valid and yields empty hrefs, keeping the view layer
// usable without route configuration.
type LinkBuilder struct {
	group *urlkit.Group
}

// NewLinkBuilder resolves the named route group from the manager. The lookup
// is panic-guarded because urlkit panics on unknown groups.
func NewLinkBuilder(manager *urlkit.RouteManager, group string) (*LinkBuilder, error) {
	if manager == nil {
		return nil, fmt.Errorf("view: route manager not configured")
	}
	resolved, err := lookupGroup(manager, group)
	if err != nil {
		return nil, err
	}
	return &LinkBuilder{group: resolved}, nil
}

// NoteURL returns the href for a note detail page, or "" when the route
// cannot be built.
func (b *LinkBuilder) NoteURL(id string) string {
	return b.build(RouteNote, map[string]any{"id": id})
}

// AssetURL returns the href for a note attachment, or "" when the route
// cannot be built.
func (b *LinkBuilder) AssetURL(id, name string) string {
	return b.build(RouteAsset, map[string]any{"id": id, "name": name})
}

// StylesURL returns the href for the stylesheet endpoint.
func (b *LinkBuilder) StylesURL() string {
	return b.build(RouteStyles, nil)
}

func (b *LinkBuilder) build(route string, params map[string]any) string {
	if b == nil || b.group == nil {
		return ""
	}

	builder, err := safeBuilder(b.group, route)
	if err != nil || builder == nil {
		return ""
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}

	url, err := builder.Build()
	if err != nil {
		return ""
	}
	return url
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("view: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("view: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}
