package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/spf13/cobra"
)

func newFacetsCmd(opts *globalOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Show brand counts and the price range for a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			products := catalog.FilterByScope(c.Products, c.Categories, catalog.Scope{CategoryID: category})
			counts := catalog.BrandCounts(products)
			bounds, hasBounds := catalog.PriceBounds(products)

			out := cmd.OutOrStdout()
			if opts.json {
				result := struct {
					Brands      []catalog.BrandCount `json:"brands"`
					PriceBounds *catalog.PriceRange  `json:"priceBounds,omitempty"`
				}{Brands: counts}
				if hasBounds {
					result.PriceBounds = &bounds
				}
				return writeJSON(out, result)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "BRAND\tPRODUCTS")
			for _, bc := range counts {
				fmt.Fprintf(tw, "%s\t%d\n", bc.BrandID, bc.Count)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if hasBounds {
				fmt.Fprintf(out, "price range: %d - %d\n", bounds.Min, bounds.Max)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category id (empty for all products)")
	return cmd
}
