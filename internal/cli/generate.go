package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/stubgen/stubgen/internal/acquire"
	"github.com/stubgen/stubgen/internal/config"
	"github.com/stubgen/stubgen/internal/generator"
	"github.com/stubgen/stubgen/internal/report"
)

var (
	outputFlag    string
	stubsPathFlag string
	quietFlag     bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the PHP builtins JSON artifact",
	Long: `Generate clones a pinned revision of phpstorm-stubs (or reuses an
existing checkout), scans every stub file for function, class, method and
constant declarations, and writes the deduplicated inventory as JSON.

Examples:
  # Clone phpstorm-stubs and generate data/php_builtins.json
  stubgen generate

  # Reuse an existing checkout (skips the clone)
  stubgen generate --stubs-path /path/to/phpstorm-stubs

  # Write the artifact somewhere else
  stubgen generate --output /tmp/php_builtins.json
`,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output JSON file path (default from config)")
	generateCmd.Flags().StringVarP(&stubsPathFlag, "stubs-path", "s", "", "Path to existing phpstorm-stubs clone (skips download)")
	generateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling generation...")
		cancel()
	}()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gen := generator.New(cfg, NewCLIProgressReporter(quietFlag))

	rep, err := gen.Run(ctx, stubsPathFlag, outputFlag)
	if err != nil {
		var acqErr *acquire.AcquisitionError
		if errors.As(err, &acqErr) {
			return fmt.Errorf("failed to acquire stubs: %w", err)
		}
		return err
	}

	if !quietFlag {
		printSummary(rep, outputPathOr(cfg, outputFlag))
	}
	return nil
}

func outputPathOr(cfg *config.Config, override string) string {
	if override != "" {
		return override
	}
	return cfg.Output.Path
}

func printSummary(rep *report.Report, path string) {
	fmt.Printf("\n✓ Generated %s\n", path)
	fmt.Printf("  Functions: %d\n", rep.Stats.Functions)
	fmt.Printf("  Classes:   %d\n", rep.Stats.Classes)
	fmt.Printf("  Methods:   %d\n", rep.Stats.Methods)
	fmt.Printf("  Constants: %d\n", rep.Stats.Constants)
	fmt.Printf("  Total unique symbols: %d\n", rep.Stats.TotalUnique)
}
