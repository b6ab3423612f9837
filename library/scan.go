package library

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fyne.io/fyne/v2/storage"
	"github.com/FyshOS/fancyfs"
)

var (
	romExtensions     = []string{".gb", ".gbc", ".gba", ".zip"}
	artworkExtensions = []string{".png", ".jpg", ".jpeg"}
)

// Scan lists the games directly inside dir. ROM files become games titled
// after their file name, with box art taken from an image sharing the base
// name. Sub-folders are games too, using the folder's cover art when it has
// one. onProgress, if set, is called after each directory entry.
func Scan(dir string, onProgress func(done, total int)) ([]Game, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	artwork := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if slices.Contains(artworkExtensions, ext) {
			base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			if _, ok := artwork[base]; !ok {
				artwork[base] = filepath.Join(dir, e.Name())
			}
		}
	}

	games := make([]Game, 0)
	for i, e := range entries {
		if g, ok := gameForEntry(dir, e, artwork); ok {
			games = append(games, g)
		}
		if onProgress != nil {
			onProgress(i+1, len(entries))
		}
	}
	return games, nil
}

func gameForEntry(dir string, e os.DirEntry, artwork map[string]string) (Game, bool) {
	name := e.Name()
	if strings.HasPrefix(name, ".") {
		return Game{}, false
	}
	path := filepath.Join(dir, name)

	if e.IsDir() {
		return Game{Title: name, Path: path, Artwork: folderArtwork(path)}, true
	}

	ext := filepath.Ext(name)
	if !slices.Contains(romExtensions, strings.ToLower(ext)) {
		return Game{}, false
	}
	base := strings.TrimSuffix(name, ext)
	return Game{Title: titleFromName(base), Path: path, Artwork: artwork[base]}, true
}

func folderArtwork(path string) string {
	details, err := fancyfs.DetailsForFolder(storage.NewFileURI(path))
	if err != nil || details == nil || details.BackgroundURI == nil {
		return ""
	}
	return details.BackgroundURI.Path()
}

// titleFromName turns "super_mario-land" into "super mario land".
func titleFromName(base string) string {
	title := strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(title), " ")
}
