package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexballas/xpagegrid/grid"
	"github.com/alexballas/xpagegrid/library"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func main() {
	dbPath := pflag.StringP("database", "d", defaultDatabasePath(), "catalog database file")
	dir := pflag.StringP("library", "l", "", "scan this folder instead of reading the catalog")
	logFile := pflag.String("log", "", "write debug logs to this file")
	pflag.Parse()

	if err := setupLogging(*logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	games, err := loadGames(*dbPath, *dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := newModel(games, grid.GetThumbnailManager())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.source.send = p.Send
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging keeps the alternate screen clean: logs go to a file or nowhere.
func setupLogging(path string) error {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}
	f, err := tea.LogToFile(path, "gamegrid-term")
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

func loadGames(dbPath, dir string) ([]library.Game, error) {
	if dir != "" {
		return library.Scan(dir, nil)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("could not create %s: %w", filepath.Dir(dbPath), err)
	}
	store, err := library.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", dbPath, err)
	}
	defer store.Close()
	return store.Games()
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gamegrid.sqlite"
	}
	return filepath.Join(dir, "gamegrid", "games.sqlite")
}
