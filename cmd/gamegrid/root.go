package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/alexballas/xpagegrid/grid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	libraryDir string
	dbPath     string
	cellWidth  float32
	cellHeight float32
	cellMargin float32
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gamegrid",
	Short: "Browse a folder of games as pages of box art",
	Long: `gamegrid scans a folder of ROMs into a small catalog and shows it as a
paged grid that is flipped through with swipes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd, args)
		setupLogging()
	},
}

// Execute runs the root command. It is called once by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := grid.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gamegrid.toml)")
	flags.StringVarP(&libraryDir, "library", "l", "", "folder holding the games")
	flags.StringVarP(&dbPath, "database", "d", defaultDatabasePath(), "catalog database file")
	flags.Float32Var(&cellWidth, "cell-width", defaults.CellSize.Width, "cell width")
	flags.Float32Var(&cellHeight, "cell-height", defaults.CellSize.Height, "cell height")
	flags.Float32Var(&cellMargin, "cell-margin", defaults.CellMargin, "gap between cells")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gamegrid.sqlite"
	}
	return filepath.Join(dir, "gamegrid", "games.sqlite")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".gamegrid")
	}
	viper.SetEnvPrefix("gamegrid")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("could not read config file", "error", err)
			os.Exit(1)
		}
	}
}

// bindFlags copies config values into flags that were not given on the
// command line.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Config keys drop the hyphens: cellwidth = 96
		configName := strings.ReplaceAll(f.Name, "-", "")
		if f.Changed {
			return
		}

		var val any
		switch {
		case viper.IsSet(configName):
			val = viper.Get(configName)
		case viper.IsSet(f.Name):
			val = viper.Get(f.Name)
		default:
			return
		}

		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			slog.Error("could not apply config value", "flag", f.Name, "error", err)
			os.Exit(1)
		}
		slog.Debug("flag set from config", "flag", f.Name, "value", val)
	})
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// gridConfig builds the grid configuration from the cell flags.
func gridConfig() (grid.Config, error) {
	cfg := grid.DefaultConfig()
	cfg.CellSize = fyne.NewSize(cellWidth, cellHeight)
	cfg.CellMargin = cellMargin
	if err := cfg.Validate(); err != nil {
		return grid.Config{}, err
	}
	return cfg, nil
}
