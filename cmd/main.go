package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cli/browser"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Zachdehooge/sicily-map/internal/config"
	"github.com/Zachdehooge/sicily-map/internal/generator"
	"github.com/Zachdehooge/sicily-map/internal/logger"
	"github.com/Zachdehooge/sicily-map/internal/progress"
)

// Version is set via ldflags at build time.
var Version = "dev"

var (
	cfgFile     string
	outputFile  string
	verbose     bool
	openBrowser bool
	watchMode   bool
	logFormat   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sicily-map",
		Short: "Render an interactive map of Sicilian municipalities",
		Long: `sicily-map reads the municipality and province shapefiles and
generates a static HTML page with a Leaflet map and a searchable sidebar
of every cumuni, grouped and coloured by province.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(logger.Options{Verbose: verbose, Format: logFormat, Output: cmd.ErrOrStderr()})
		},
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				cmd.PrintErrln(err)
				os.Exit(1)
			}

			if err := generateMapHTML(cmd, cfg); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to generate map: %w", err))
				os.Exit(1)
			}

			if cfg.OpenBrowser && !watchMode {
				openInBrowser(cmd, cfg.Output)
			}

			if watchMode {
				if err := runWatchMode(cmd, cfg); err != nil {
					cmd.PrintErrln(fmt.Errorf("watch failed: %w", err))
					os.Exit(1)
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output HTML file path (overrides config)")
	rootCmd.Flags().BoolVar(&openBrowser, "open", true, "Open the generated map in the default browser")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Regenerate the map whenever an input file changes")

	addListCmd(rootCmd)
	addInitCmd(rootCmd)
	addVersionCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `sicily-map init` to create a config file", err)
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = outputFile
	}
	if f := cmd.Flags().Lookup("open"); f != nil && f.Changed {
		cfg.OpenBrowser = openBrowser
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// generateMapHTML runs one full generation pass.
func generateMapHTML(cmd *cobra.Command, cfg *config.Config) error {
	var reporter progress.Reporter = progress.Nop{}
	if verbose {
		reporter = progress.NewReporter()
	}

	sum, err := generator.Run(cfg, reporter)
	if err != nil {
		return err
	}

	cmd.Println(fmt.Sprintf("Map of %d places in %d provinces saved to %s (%s)",
		sum.Places, sum.Provinces, sum.Output, humanize.Bytes(uint64(sum.Bytes))))
	return nil
}

func openInBrowser(cmd *cobra.Command, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if err := browser.OpenFile(abs); err != nil {
		logger.L().Warn("could not open browser", "path", abs, "error", err)
		cmd.Println(fmt.Sprintf("Open file://%s to view the map", abs))
	}
}

// addVersionCmd adds a 'version' subcommand.
func addVersionCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of sicily-map",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(fmt.Sprintf("sicily-map %s", Version))
		},
	})
}

// addInitCmd adds an 'init' subcommand that writes the default config file.
func addInitCmd(rootCmd *cobra.Command) {
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(cfgFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
			}
			if err := config.DefaultConfig().Save(cfgFile); err != nil {
				return err
			}
			cmd.Println(fmt.Sprintf("Config written to %s", cfgFile))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
