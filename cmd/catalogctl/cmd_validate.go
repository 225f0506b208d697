package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate datasets without serving them",
		Long: `Merges every --file in order and runs the same checks as a server reload:
unique ids, unique active slugs, and references between products,
brands, categories and gallery media. Every problem is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, c)
			}
			fmt.Fprintf(out, "Catalog OK (version %s)\n", c.Version)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "categories\t%d\n", len(c.Categories))
			fmt.Fprintf(tw, "subcategories\t%d\n", len(c.Subcategories))
			fmt.Fprintf(tw, "brands\t%d\n", len(c.Brands))
			fmt.Fprintf(tw, "products\t%d (%d active)\n", len(c.Products), len(catalog.Active(c.Products)))
			fmt.Fprintf(tw, "albums\t%d\n", len(c.Albums))
			fmt.Fprintf(tw, "media\t%d\n", len(c.Media))
			return tw.Flush()
		},
	}
}
