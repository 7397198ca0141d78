package store

import (
	"io/fs"
	"mime"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-zettel/pkg/interfaces"
)

const assetsDirSuffix = ".assets"

// scanAssets lists the files in the note's sibling assets directory
// (`<stem>.assets/`). A missing directory is the common case and yields nil;
// entries are sorted by name so the record is deterministic.
func scanAssets(fsys fs.FS, notePath string) []interfaces.Asset {
	ext := path.Ext(notePath)
	dir := strings.TrimSuffix(notePath, ext) + assetsDirSuffix

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}

	var assets []interfaces.Asset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		assets = append(assets, interfaces.Asset{
			Name:     name,
			Path:     path.Join(dir, name),
			MimeType: guessMimeType(name),
		})
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Name < assets[j].Name
	})
	return assets
}

// guessMimeType resolves a content type from the file extension alone,
// falling back to a generic binary type.
func guessMimeType(name string) string {
	mimeType := mime.TypeByExtension(path.Ext(name))
	if mimeType == "" {
		return "application/octet-stream"
	}
	return mimeType
}
