// Command catalogctl runs storefront catalog queries against dataset files from a terminal.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/dataset"
	"github.com/Lixing-Zhang/pavilion-catalog/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalOptions are the persistent flags shared by every subcommand
type globalOptions struct {
	files   []string
	timeout time.Duration
	json    bool
	verbose bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Query and validate Pavilion catalog datasets",
		Long: `catalogctl loads catalog datasets the same way the API server does and
runs listing, search and slug lookups against them.

Without --file the embedded seed catalog is used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			log, err := logger.NewWithConfig(logger.Config{Level: level, Encoding: "console", DisableStacktrace: true})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringSliceVarP(&opts.files, "file", "f", nil, "dataset file or URL (repeatable, merged in order)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout for loading remote datasets")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newProductsCmd(opts),
		newSearchCmd(opts),
		newResolveCmd(opts),
		newFacetsCmd(opts),
		newValidateCmd(opts),
	)
	return root
}

// loadCatalog builds a snapshot from the configured files, or the seed when there are none
func (o *globalOptions) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	provider := dataset.NewProvider(dataset.NewLoader(o.timeout), o.files)
	c, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("catalog loaded",
		zap.String("version", c.Version),
		zap.Strings("files", o.files),
		zap.Int("products", len(c.Products)),
	)
	return c, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
