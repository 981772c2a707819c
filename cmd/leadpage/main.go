package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"leadpage-engine/internal/config"
	"leadpage-engine/internal/generate"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagDataDir string
	flagLimit   int
)

var rootCmd = &cobra.Command{
	Use:          "leadpage",
	Short:        "Static landing page generator for lead lists",
	Long:         "leadpage reads leads from a CSV file and generates one static HTML landing page per lead, tracking processed slugs so no page is ever generated twice.",
	RunE:         runGenerate,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("leadpage %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $LEADPAGE_DATA_DIR or .)")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 0, "override the batch size for this run")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dataDir, cfg, err := loadSetup()
	if err != nil {
		return err
	}

	// Advisory lock: the scheduler is supposed to serialize runs, but if
	// two invocations do overlap the loser exits as a clean no-op
	// instead of racing for the tracking file.
	lock := flock.New(filepath.Join(dataDir, "leadpage.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		log.Printf("[lock] another run is active, nothing to do")
		return nil
	}
	defer lock.Unlock()

	if flagLimit > 0 {
		cfg.Generator.BatchSize = flagLimit
	}

	runner := generate.Runner{Cfg: cfg, DataDir: dataDir, Now: time.Now}
	_, err = runner.Run()
	return err
}

// loadSetup resolves the data dir, bootstraps the user config on first
// run and returns the validated config.
func loadSetup() (string, config.Config, error) {
	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = os.Getenv("LEADPAGE_DATA_DIR")
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", config.Config{}, fmt.Errorf("create data dir: %w", err)
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		var err error
		cfgPath, err = config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
		if err != nil {
			return "", config.Config{}, fmt.Errorf("config bootstrap: %w", err)
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return "", config.Config{}, fmt.Errorf("config load (%s): %w", cfgPath, err)
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		return "", config.Config{}, fmt.Errorf("config validation failed (%s)", cfgPath)
	}

	return dataDir, cfg, nil
}
