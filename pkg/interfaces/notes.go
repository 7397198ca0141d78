package interfaces

import "time"

// Note is a single Zettelkasten entry as loaded from disk. The record is
// immutable after the startup load; accessors hand out defensive copies so
// callers can never reach the store's interior slices.
type Note struct {
	// ID uniquely identifies the note across the loaded set. It is the lookup
	// key and the URL segment for the detail endpoint.
	ID string `json:"id"`
	// Title is the human readable display title.
	Title string `json:"title"`
	// Tags carry display labels; source order is preserved but not meaningful.
	Tags []string `json:"tags"`
	// References lists ids of other notes in display order. Targets are not
	// validated at parse time and may dangle.
	References []string `json:"references"`
	// Body is the raw Markdown body exactly as it appeared after the closing
	// front-matter delimiter.
	Body []byte `json:"-"`
	// BodyHTML is the rendered body, computed once at load time.
	BodyHTML []byte `json:"-"`
	// Assets enumerates files found in the note's sibling assets directory.
	Assets []Asset `json:"assets,omitempty"`
	// FilePath records the source path relative to the content root.
	FilePath string `json:"-"`
	// LastModified is the source file's modification time at load.
	LastModified time.Time `json:"-"`
}

// Clone returns a deep copy of the note so store consumers can never mutate
// the canonical record.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	out := *n
	out.Tags = append([]string(nil), n.Tags...)
	out.References = append([]string(nil), n.References...)
	out.Assets = append([]Asset(nil), n.Assets...)
	out.Body = append([]byte(nil), n.Body...)
	out.BodyHTML = append([]byte(nil), n.BodyHTML...)
	return &out
}

// Summary reduces a note to the listing fields so the list endpoint never
// pays rendering or reference-resolution cost.
func (n *Note) Summary() NoteSummary {
	return NoteSummary{
		ID:    n.ID,
		Title: n.Title,
		Tags:  append([]string(nil), n.Tags...),
	}
}

// NoteSummary is the listing projection of a note.
type NoteSummary struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// Asset describes a file attached to a note via its `<stem>.assets` directory.
type Asset struct {
	// Name is the file name inside the assets directory.
	Name string `json:"name"`
	// Path is the asset location relative to the content root.
	Path string `json:"path"`
	// MimeType is guessed from the file extension.
	MimeType string `json:"mime_type"`
}

// Renderer converts raw Markdown into an HTML fragment. Rendering is pure and
// deterministic and must never fail: unsupported input degrades to literal
// text instead of returning an error.
type Renderer interface {
	Render(markdown []byte) []byte
}

// TitleResolver resolves a note id to its display title. The presentation
// layer depends on this capability rather than on the store type so reference
// resolution stays testable in isolation.
type TitleResolver interface {
	ResolveTitle(id string) (string, bool)
}

// NoteReader is the read surface the HTTP layer consumes. Implementations are
// safe for unsynchronized concurrent use once constructed.
type NoteReader interface {
	TitleResolver
	List() []NoteSummary
	Get(id string) (*Note, error)
}
