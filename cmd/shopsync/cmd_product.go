package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/api"
	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/slug"
)

var (
	productCategory string
	productSearch   string
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Browse the storefront catalog",
}

var productListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List active catalog products",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		products, err := a.API.ListProducts(cmd.Context(), api.CatalogFilter{
			Category: productCategory,
			Search:   productSearch,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSKU\tTITLE\tPRICE\tSTOCK")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
				p.ID, p.SKU, p.Title, formatMinorUnits(p.UnitPrice()), p.Stock)
		}
		w.Flush()
		return nil
	},
}

var productShowCmd = &cobra.Command{
	Use:   "show <id|slug|title>",
	Short: "Show one product, looked up by id or slug",
	Long: `Show one product. A numeric argument is treated as a product id;
anything else is normalized to slug form and resolved against the slug
lookup endpoint, so "Block Print Kurta" finds block-print-kurta.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		arg := strings.Join(args, " ")
		var product *domain.Product
		if id, convErr := strconv.ParseInt(arg, 10, 64); convErr == nil {
			product, err = a.API.GetProduct(cmd.Context(), id)
		} else {
			product, err = a.API.GetProductBySlug(cmd.Context(), slug.Normalize(arg))
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s (#%d, %s)\n", product.Title, product.ID, product.SKU)
		fmt.Printf("Price: %s", formatMinorUnits(product.UnitPrice()))
		if product.IsOnSale {
			fmt.Printf(" (on sale, was %s)", formatMinorUnits(product.OriginalPrice))
		}
		fmt.Println()
		fmt.Printf("Stock: %d\n", product.Stock)
		if len(product.Sizes) > 0 {
			fmt.Printf("Sizes: %s\n", strings.Join(product.Sizes, ", "))
		}
		if len(product.Colors) > 0 {
			fmt.Printf("Colors: %s\n", strings.Join(product.Colors, ", "))
		}
		return nil
	},
}

var productSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List storefront sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		sections, err := a.API.ListSections(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tNAME\tPRODUCTS")
		for _, s := range sections {
			fmt.Fprintf(w, "%s\t%s\t%d\n", s.Slug, s.Name, s.ProductCount)
		}
		w.Flush()
		return nil
	},
}

func init() {
	productListCmd.Flags().StringVar(&productCategory, "category", "", "filter by section slug")
	productListCmd.Flags().StringVar(&productSearch, "search", "", "filter by title substring")

	productCmd.AddCommand(productListCmd, productShowCmd, productSectionsCmd)
}
