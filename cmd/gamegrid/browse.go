package main

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/alexballas/xpagegrid/grid"
	"github.com/alexballas/xpagegrid/library"
	"github.com/spf13/cobra"
)

const libraryDirKey = "xpagegrid:libraryDir"

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Show the catalog as a paged grid",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := gridConfig()
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		a := app.NewWithID("io.github.alexballas.xpagegrid")
		w := a.NewWindow("Games")
		newBrowser(a, w, store, cfg).start()
		w.Resize(fyne.NewSize(800, 480))
		w.ShowAndRun()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

type browser struct {
	app    fyne.App
	window fyne.Window
	store  *library.Store

	games    []library.Game
	selected *grid.Cell
	status   *widget.Label
	grid     *grid.PagedGrid
}

func newBrowser(a fyne.App, w fyne.Window, store *library.Store, cfg grid.Config) *browser {
	b := &browser{
		app:    a,
		window: w,
		store:  store,
		status: widget.NewLabel(""),
	}
	b.grid = grid.NewPagedGrid(cfg, grid.NewEntrySource(nil), grid.DelegateFunc(b.didSelect))

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), b.chooseLibrary),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
			if dir := b.libraryDir(); dir != "" {
				b.scan(dir)
			}
		}),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.NavigateBackIcon(), b.grid.Engine().PreviousPage),
		widget.NewToolbarAction(theme.NavigateNextIcon(), b.grid.Engine().NextPage),
	)
	w.SetContent(container.NewBorder(toolbar, b.status, nil, nil, b.grid))
	return b
}

func (b *browser) libraryDir() string {
	if libraryDir != "" {
		return libraryDir
	}
	return b.app.Preferences().String(libraryDirKey)
}

// start shows the stored catalog, scanning the library folder when the
// catalog is empty.
func (b *browser) start() {
	n, err := b.store.Count()
	if err != nil {
		fyne.LogError("could not count games", err)
	}
	if n > 0 {
		b.reload()
		return
	}
	if dir := b.libraryDir(); dir != "" {
		b.scan(dir)
		return
	}
	b.status.SetText("Choose a folder of games to start")
}

func (b *browser) chooseLibrary() {
	chooseFolder(b.window, func(dir string, err error) {
		if err != nil {
			dialog.ShowError(err, b.window)
			return
		}
		if dir == "" {
			return
		}
		b.app.Preferences().SetString(libraryDirKey, dir)
		b.scan(dir)
	})
}

func (b *browser) scan(dir string) {
	b.status.SetText("Scanning " + dir)
	go func() {
		n, err := scanInto(b.store, dir, false)
		fyne.Do(func() {
			if err != nil {
				slog.Error("scan failed", "dir", dir, "error", err)
				dialog.ShowError(err, b.window)
				return
			}
			slog.Info("library scanned", "dir", dir, "games", n)
			b.reload()
		})
	}()
}

// reload shows the catalog from the store.
func (b *browser) reload() {
	games, err := b.store.Games()
	if err != nil {
		dialog.ShowError(err, b.window)
		return
	}
	b.games = games
	b.selected = nil

	entries := make([]grid.Entry, len(games))
	for i, g := range games {
		entries[i] = grid.Entry{Title: g.Title, Artwork: g.Artwork}
	}
	b.grid.Engine().SetDataSource(grid.NewEntrySource(entries))
	b.status.SetText(b.summary())
}

func (b *browser) summary() string {
	switch len(b.games) {
	case 0:
		return "No games found"
	case 1:
		return "1 game"
	}
	return fmt.Sprintf("%d games", len(b.games))
}

func (b *browser) didSelect(index int, handle grid.VisualHandle) {
	if index < 0 || index >= len(b.games) {
		return
	}
	if b.selected != nil {
		b.selected.SetHighlighted(false)
	}
	if cell, ok := handle.(*grid.Cell); ok {
		cell.SetHighlighted(true)
		b.selected = cell
	}
	game := b.games[index]
	b.status.SetText(game.Title + " - " + game.Path)
}
