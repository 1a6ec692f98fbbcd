package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/yasbtint/internal/colour"
	"github.com/jmylchreest/yasbtint/internal/config"
	"github.com/jmylchreest/yasbtint/internal/palette"
	"github.com/jmylchreest/yasbtint/internal/pywal"
	"github.com/jmylchreest/yasbtint/internal/wallpaper"
	"github.com/jmylchreest/yasbtint/internal/yasb"
)

var (
	// Apply command flags
	applyWallpaper  string
	applySlot       string
	applyCacheDir   string
	applyYasbDir    string
	applyBackends   []string
	applyConfigPath string
	applyDryRun     bool
)

// newApplyCmd represents the apply command.
func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Update YASB theme colours from the current wallpaper",
		Long: `Update YASB theme colours from the current wallpaper.

The wallpaper is located through the platform (or taken from --wallpaper),
handed to pywal for palette generation, and the selected accent plus the
palette background are substituted into styles.css and config.yaml under
the YASB config directory.

Examples:
  # Standard run against the current wallpaper
  yasbtint apply

  # Force a specific palette slot
  yasbtint apply --accent-slot color5

  # Use an explicit image and see what would change
  yasbtint apply --wallpaper ~/Pictures/wall.jpg --dry-run

  # Restrict pywal to a single backend
  yasbtint apply --backend wal`,
		RunE: runApply,
	}

	cmd.Flags().StringVarP(&applyWallpaper, "wallpaper", "w", "", "wallpaper image (default: ask the platform)")
	cmd.Flags().StringVar(&applySlot, "accent-slot", "", "force a palette slot (e.g. color4)")
	cmd.Flags().StringVar(&applyCacheDir, "cache-dir", "", "pywal cache directory (default: ~/.cache/wal)")
	cmd.Flags().StringVar(&applyYasbDir, "yasb-dir", "", "YASB config directory (default: ~/.config/yasb)")
	cmd.Flags().StringSliceVar(&applyBackends, "backend", nil, "pywal backends to try, in order (default: colorthief,wal,haishoku)")
	cmd.Flags().StringVar(&applyConfigPath, "config", "", "config file (default: ~/.config/yasbtint/config.toml)")
	cmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "report the chosen accent without writing files")

	return cmd
}

// runApply executes the apply command: wallpaper -> palette -> accent ->
// config files, strictly in that order.
func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(applyConfigPath)
	if err != nil {
		return err
	}
	overlayFlags(cfg)

	cmd.Flags().Visit(func(f *pflag.Flag) {
		logger.Debug("flag override", "flag", f.Name, "value", f.Value.String())
	})

	writer := yasb.NewWriter(cfg.YasbDir, logger)
	if err := writer.Ensure(); err != nil {
		return err
	}

	wallpaperPath := cfg.Wallpaper
	if wallpaperPath == "" {
		wallpaperPath, err = wallpaper.Current(logger)
		if err != nil {
			return err
		}
	}

	format, err := wallpaper.Probe(wallpaperPath)
	if err != nil {
		return err
	}
	logger.Debug("wallpaper image verified", "path", wallpaperPath, "format", format)

	runner, err := pywal.ResolveRunner()
	if err != nil {
		return err
	}

	cacheDir, err := pywal.CacheDir(cfg.CacheDir)
	if err != nil {
		return err
	}

	loader := pywal.NewLoader(runner, cacheDir, cfg.Backends, logger)
	doc, err := loader.Generate(ctx, wallpaperPath)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	backgroundHex, ok := doc.Background()
	if !ok {
		return palette.Errorf("could not determine background colour from wal palette")
	}
	background, err := colour.ParseHex(backgroundHex)
	if err != nil {
		return err
	}

	accent, err := colour.ChooseAccent(doc.Colors, doc.Special, background, colour.SelectorOptions{
		OverrideSlot: cfg.AccentSlot,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	accentRGB, err := colour.ParseHex(accent)
	if err != nil {
		return err
	}

	if applyDryRun {
		fmt.Printf("Would apply accent %s (background %s) to %s and %s\n",
			accentRGB.Hex(), background.Hex(), writer.StylesheetPath(), writer.ConfigPath())
		return nil
	}

	count, err := writer.Apply(accentRGB.Hex(), background)
	if err != nil {
		return err
	}

	noun := "entries"
	if count == 1 {
		noun = "entry"
	}
	color.New(color.FgGreen).Printf("✓ Applied accent %s (%d widget colour %s updated)\n", accentRGB.Hex(), count, noun)
	logger.Debug("theme refresh complete, YASB watchers should reload automatically")

	return nil
}

// overlayFlags applies command-line flags on top of the loaded config.
// Precedence: defaults < config file < environment < flags.
func overlayFlags(cfg *config.Config) {
	if applySlot != "" {
		cfg.AccentSlot = applySlot
	}
	if applyCacheDir != "" {
		cfg.CacheDir = applyCacheDir
	}
	if applyYasbDir != "" {
		cfg.YasbDir = applyYasbDir
	}
	if len(applyBackends) > 0 {
		cfg.Backends = applyBackends
	}
	if applyWallpaper != "" {
		cfg.Wallpaper = applyWallpaper
	}
}
