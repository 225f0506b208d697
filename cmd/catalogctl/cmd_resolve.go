package main

import (
	"fmt"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/spf13/cobra"
)

var resolveKinds = []string{"category", "subcategory", "brand", "product", "album", "job", "page"}

func newResolveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "resolve <kind> <slug>",
		Short:     "Look up an active entity by slug",
		Long:      "Resolves a slug the way storefront URLs do. kind is one of category, subcategory, brand, product, album, job or page.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: resolveKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			kind, slug := args[0], args[1]
			var (
				found any
				ok    bool
			)
			switch kind {
			case "category":
				found, ok = catalog.Resolve(c.Categories, slug)
			case "subcategory":
				found, ok = catalog.Resolve(c.Subcategories, slug)
			case "brand":
				found, ok = catalog.Resolve(c.Brands, slug)
			case "product":
				found, ok = catalog.Resolve(c.Products, slug)
			case "album":
				found, ok = catalog.Resolve(c.Albums, slug)
			case "job":
				found, ok = catalog.Resolve(c.Jobs, slug)
			case "page":
				found, ok = catalog.Resolve(c.Pages, slug)
			default:
				return fmt.Errorf("unknown kind %q (want one of %v)", kind, resolveKinds)
			}
			if !ok {
				return fmt.Errorf("%s %q not found", kind, slug)
			}
			return writeJSON(cmd.OutOrStdout(), found)
		},
	}
}
