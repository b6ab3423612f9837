package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexballas/xpagegrid/library"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Scan a folder of games into the catalog",
	Long: `Scan lists the ROMs and game folders inside dir, pairs them with box art
and replaces the catalog with the result. Without dir the --library folder is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir := libraryDir
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			return errors.New("no library folder, pass one or set --library")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := scanInto(store, dir, true)
		if err != nil {
			return err
		}
		fmt.Printf("%d games in %s\n", n, dbPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func openStore() (*library.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("could not create %s: %w", filepath.Dir(dbPath), err)
	}
	store, err := library.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not open %s as sqlite file: %w", dbPath, err)
	}
	return store, nil
}

// scanInto replaces the catalog with the games found in dir.
func scanInto(store *library.Store, dir string, showProgress bool) (int, error) {
	var progress func(done, total int)
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(-1, "Scanning "+dir)
		progress = func(done, total int) {
			if done == 1 {
				bar.ChangeMax(total)
			}
			if err := bar.Add(1); err != nil {
				slog.Error("could not update progress bar", "error", err)
			}
		}
	}

	games, err := library.Scan(dir, progress)
	if bar != nil {
		if err := bar.Finish(); err != nil {
			slog.Error("could not finish progress bar", "error", err)
		}
	}
	if err != nil {
		return 0, err
	}

	slog.Debug("scan finished", "dir", dir, "games", len(games))
	if err := store.Replace(games); err != nil {
		return 0, fmt.Errorf("could not store catalog: %w", err)
	}
	return len(games), nil
}
