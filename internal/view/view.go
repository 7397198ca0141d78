// Package view maps store records into the shapes the HTTP layer serves.
// Reference resolution depends only on the TitleResolver capability, never on
// the store type, so the adapter is testable against a plain map.
package view

import (
	"github.com/goliatone/go-zettel/pkg/interfaces"
)

// UnknownTitle is the sentinel title for dangling references. Dangling links
// stay visible in the output instead of being dropped.
const UnknownTitle = "unknown"

// ReferenceView is a resolved cross-reference entry.
type ReferenceView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Href  string `json:"href,omitempty"`
}

// AssetView is a render-ready attachment entry.
type AssetView struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Href     string `json:"href,omitempty"`
}

// NoteView is the full detail projection of a note.
type NoteView struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Tags       []string        `json:"tags"`
	References []ReferenceView `json:"references"`
	Assets     []AssetView     `json:"assets,omitempty"`
	BodyHTML   string          `json:"body_html"`
	Href       string          `json:"href,omitempty"`
}

// Viewer assembles detail views. A Viewer with a nil link builder emits views
// without hrefs.
type Viewer struct {
	links *LinkBuilder
}

// NewViewer constructs a Viewer using the supplied link builder, which may be
// nil.
func NewViewer(links *LinkBuilder) *Viewer {
	return &Viewer{links: links}
}

// Note builds the detail view for a record, resolving each reference id
// through the resolver.
func (v *Viewer) Note(record *interfaces.Note, resolver interfaces.TitleResolver) NoteView {
	out := NoteView{
		ID:         record.ID,
		Title:      record.Title,
		Tags:       append([]string(nil), record.Tags...),
		References: ResolveReferences(record.References, resolver),
		BodyHTML:   string(record.BodyHTML),
	}

	if out.Tags == nil {
		out.Tags = []string{}
	}

	for _, asset := range record.Assets {
		entry := AssetView{Name: asset.Name, MimeType: asset.MimeType}
		if v != nil && v.links != nil {
			entry.Href = v.links.AssetURL(record.ID, asset.Name)
		}
		out.Assets = append(out.Assets, entry)
	}

	if v != nil && v.links != nil {
		out.Href = v.links.NoteURL(record.ID)
		for i := range out.References {
			if out.References[i].Title != UnknownTitle {
				out.References[i].Href = v.links.NoteURL(out.References[i].ID)
			}
		}
	}

	return out
}

// ResolveReferences maps reference ids onto {id, title} entries in display
// order. Unresolved ids keep their place with the UnknownTitle sentinel.
func ResolveReferences(ids []string, resolver interfaces.TitleResolver) []ReferenceView {
	out := make([]ReferenceView, 0, len(ids))
	for _, id := range ids {
		entry := ReferenceView{ID: id, Title: UnknownTitle}
		if resolver != nil {
			if title, ok := resolver.ResolveTitle(id); ok {
				entry.Title = title
			}
		}
		out = append(out, entry)
	}
	return out
}
