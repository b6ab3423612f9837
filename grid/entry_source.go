package grid

import (
	"image"

	"fyne.io/fyne/v2"
)

// Entry is one game shown by an EntrySource.
type Entry struct {
	Title   string
	Artwork string // path of the box art image, may be empty
}

// EntrySource is a DataSource over a fixed list of entries, rendered as Cells
// with box art loaded through the ThumbnailManager.
type EntrySource struct {
	entries    []Entry
	thumbnails *ThumbnailManager
}

// NewEntrySource creates a source using the shared thumbnail manager.
func NewEntrySource(entries []Entry) *EntrySource {
	s := &EntrySource{
		entries:    entries,
		thumbnails: GetThumbnailManager(),
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Artwork != "" {
			paths = append(paths, e.Artwork)
		}
	}
	s.thumbnails.Prewarm(paths)
	return s
}

func (s *EntrySource) Count() int {
	return len(s.entries)
}

func (s *EntrySource) TitleForIndex(index int) string {
	if index < 0 || index >= len(s.entries) {
		return ""
	}
	return s.entries[index].Title
}

func (s *EntrySource) ElementForIndex(int) VisualHandle {
	return NewCell()
}

// Thumbnail delivers the box art on the UI goroutine.
func (s *EntrySource) Thumbnail(index int, callback func(image.Image)) {
	if index < 0 || index >= len(s.entries) || s.entries[index].Artwork == "" {
		return
	}
	path := s.entries[index].Artwork
	if img := s.thumbnails.LoadMemoryOnly(path); img != nil {
		callback(img)
		return
	}
	s.thumbnails.Load(path, func(img image.Image) {
		fyne.Do(func() {
			callback(img)
		})
	})
}

// Entry returns the entry at index.
func (s *EntrySource) Entry(index int) (Entry, bool) {
	if index < 0 || index >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[index], true
}

var _ DataSource = (*EntrySource)(nil)
