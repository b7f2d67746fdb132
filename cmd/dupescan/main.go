package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/dupescan/internal/cleaner"
	"github.com/fenilsonani/dupescan/internal/config"
	"github.com/fenilsonani/dupescan/internal/fingerprint"
	"github.com/fenilsonani/dupescan/internal/platform"
	"github.com/fenilsonani/dupescan/internal/reporter"
	"github.com/fenilsonani/dupescan/internal/scanner"
	"github.com/fenilsonani/dupescan/internal/security"
	"github.com/fenilsonani/dupescan/internal/ui"
	"github.com/fenilsonani/dupescan/internal/walker"
	"github.com/fenilsonani/dupescan/pkg/utils"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath  string
	verbose     bool
	minSizeFlag string
	outputFmt   string
	outputFile  string
	interactive bool
	expectToken string
	force       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dupescan",
	Short: "Duplicate file finder",
	Long: `Dupescan finds files with identical content across your user directories,
groups them by the storage they waste, and can safely delete the copies you
no longer need.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for duplicate files",
	Long: `Scans the configured directories, groups files with identical content,
and reports the wasted space per group. Nothing is deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		platformInfo, err := platform.GetInfo()
		if err != nil {
			return fmt.Errorf("failed to get platform info: %w", err)
		}

		minSize, err := minSizeBytes(cfg)
		if err != nil {
			return err
		}

		engine, err := buildEngine(cfg, platformInfo)
		if err != nil {
			return err
		}

		if interactive {
			deleter := buildDeleter(cfg, platformInfo)
			return ui.Run(engine, deleter, minSize)
		}

		fmt.Println("Scanning for duplicates...")
		result := engine.ScanDuplicates(minSize)

		format := reporter.ParseFormat(pickFormat(cmd, cfg))
		if outputFile != "" {
			if err := reporter.SaveToFile(result, outputFile, format); err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", outputFile)
			return nil
		}

		return reporter.New(os.Stdout, format).Report(result)
	},
}

var largeCmd = &cobra.Command{
	Use:   "large",
	Short: "Find the largest files",
	Long:  `Scans the configured directories and lists the largest files by category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		platformInfo, err := platform.GetInfo()
		if err != nil {
			return fmt.Errorf("failed to get platform info: %w", err)
		}

		minSize, err := minSizeBytes(cfg)
		if err != nil {
			return err
		}

		engine, err := buildEngine(cfg, platformInfo)
		if err != nil {
			return err
		}

		categories := scanner.NewCategoryTable(cfg.LargeFileCategories)
		files := engine.ScanLargeFiles(minSize, categories)

		format := reporter.ParseFormat(pickFormat(cmd, cfg))
		return reporter.New(os.Stdout, format).ReportLargeFiles(files)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a single duplicate file",
	Long: `Deletes exactly one file, refusing paths under protected system
locations. Deletion is permanent; there is no trash or undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		platformInfo, err := platform.GetInfo()
		if err != nil {
			return fmt.Errorf("failed to get platform info: %w", err)
		}

		if !force {
			fmt.Printf("Permanently delete %s? (y/N): ", path)
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Delete cancelled")
				return nil
			}
		}

		deleter := buildDeleter(cfg, platformInfo)

		if cfg.VerifyBeforeDelete && expectToken == "" {
			return fmt.Errorf("verify_before_delete is enabled: pass --expect with the fingerprint from the scan")
		}

		var msg string
		if expectToken != "" {
			msg, err = deleter.DeleteVerified(path, expectToken)
		} else {
			msg, err = deleter.Delete(path)
		}
		if err != nil {
			color.Red("✗ %v", err)
			return err
		}

		color.Green("✓ %s", msg)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath := configPath
		if cfgPath == "" {
			var err error
			cfgPath, err = config.GetConfigPath()
			if err != nil {
				return err
			}
		}

		fmt.Printf("Config file: %s\n\n", cfgPath)

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		return encoder.Encode(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	scanCmd.Flags().StringVar(&minSizeFlag, "min-size", "", "minimum file size to consider (e.g. 1MB)")
	scanCmd.Flags().StringVar(&outputFmt, "output", "", "output format (summary, table, json, yaml)")
	scanCmd.Flags().StringVar(&outputFile, "file", "", "save report to file")
	scanCmd.Flags().BoolVar(&interactive, "interactive", false, "browse results in an interactive view")

	largeCmd.Flags().StringVar(&minSizeFlag, "min-size", "", "minimum file size to list (e.g. 100MB)")
	largeCmd.Flags().StringVar(&outputFmt, "output", "", "output format (table, json, yaml)")

	deleteCmd.Flags().StringVar(&expectToken, "expect", "", "fingerprint the file must still match before deletion")
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(largeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cfgPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	return config.Load(cfgPath)
}

// minSizeBytes resolves the minimum file size: the --min-size flag wins over
// the configured value.
func minSizeBytes(cfg *config.Config) (int64, error) {
	if minSizeFlag != "" {
		size, err := utils.ParseSize(minSizeFlag)
		if err != nil {
			return 0, fmt.Errorf("invalid --min-size: %w", err)
		}
		return size, nil
	}
	return cfg.MinFileSizeBytes()
}

func pickFormat(cmd *cobra.Command, cfg *config.Config) string {
	if outputFmt != "" {
		return outputFmt
	}
	return cfg.OutputFormat
}

func buildEngine(cfg *config.Config, platformInfo *platform.Info) (*scanner.Engine, error) {
	strategy, err := fingerprint.ForName(cfg.FingerprintStrategy)
	if err != nil {
		return nil, err
	}

	roots := cfg.ScanRoots
	if len(roots) == 0 {
		roots = platformInfo.ScanRoots
	}

	opts := walker.Options{
		MaxDepth:    cfg.MaxDepth,
		ExcludeDirs: cfg.ExcludeDirs,
		SkipHidden:  cfg.SkipHidden,
	}

	log := logrus.WithField("component", "scanner")
	return scanner.New(roots, opts, strategy, log), nil
}

func buildDeleter(cfg *config.Config, platformInfo *platform.Info) *cleaner.Deleter {
	markers := append([]string{}, platformInfo.ProtectedMarkers...)
	markers = append(markers, cfg.ProtectedMarkers...)
	protected := security.NewProtectedList(markers)

	strategy, err := fingerprint.ForName(cfg.FingerprintStrategy)
	if err != nil {
		strategy = fingerprint.Sampled{}
	}

	log := logrus.WithField("component", "cleaner")
	return cleaner.New(protected, strategy, log)
}
