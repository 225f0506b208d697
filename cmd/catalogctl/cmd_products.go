package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/spf13/cobra"
)

type productsOptions struct {
	sportType   string
	category    string
	subcategory string
	brands      []string
	min         int64
	max         int64
	query       string
	sort        string
	limit       int
}

func newProductsCmd(opts *globalOptions) *cobra.Command {
	po := &productsOptions{}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products the way the products page does",
		Long: `Runs a listing query: scope (sport type, category, subcategory), then
brands, then price range, then text search, then sort.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			q := catalog.ProductQuery{
				Scope: catalog.Scope{
					CategoryID:    po.category,
					SubcategoryID: po.subcategory,
					SportType:     models.SportType(po.sportType),
				},
				BrandIDs: catalog.BrandSet(po.brands...),
				Search:   po.query,
				Sort:     catalog.ParseSortKey(po.sort),
			}
			if cmd.Flags().Changed("min") {
				q.MinPrice = &po.min
			}
			if cmd.Flags().Changed("max") {
				q.MaxPrice = &po.max
			}

			products := c.Query(q)
			if po.limit > 0 {
				products = catalog.Limit(products, po.limit)
			}
			return printProducts(cmd.OutOrStdout(), products, opts.json)
		},
	}

	cmd.Flags().StringVar(&po.sportType, "type", "", "sport type (team, individual, fitness, indoor, apparel)")
	cmd.Flags().StringVar(&po.category, "category", "", "category id")
	cmd.Flags().StringVar(&po.subcategory, "subcategory", "", "subcategory id")
	cmd.Flags().StringSliceVar(&po.brands, "brand", nil, "brand id (repeatable)")
	cmd.Flags().Int64Var(&po.min, "min", 0, "minimum effective price")
	cmd.Flags().Int64Var(&po.max, "max", 0, "maximum effective price")
	cmd.Flags().StringVarP(&po.query, "query", "q", "", "text search")
	cmd.Flags().StringVar(&po.sort, "sort", string(catalog.SortFeatured), "sort key (featured, price-asc, price-desc, name)")
	cmd.Flags().IntVar(&po.limit, "limit", 0, "show at most n products")
	return cmd
}

func newSearchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search active products by name, brand, description or sku",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			return printProducts(cmd.OutOrStdout(), catalog.SearchText(c.Products, args[0]), opts.json)
		},
	}
}

func printProducts(w io.Writer, products []models.Product, asJSON bool) error {
	if asJSON {
		return writeJSON(w, products)
	}
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tBRAND\tPRICE\tMRP\tOFF\tFEATURED")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d%%\t%t\n",
			p.Slug, p.Brand, catalog.EffectivePrice(p), p.MRP, catalog.ProductDiscount(p), p.Featured)
	}
	return tw.Flush()
}
