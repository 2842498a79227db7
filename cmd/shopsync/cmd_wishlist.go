package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Inspect and mutate the wishlist",
}

var wishlistListCmd = &cobra.Command{
	Use:   "ls",
	Short: "Fetch the wishlist from the server and list its lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Wishlist.Fetch(cmd.Context()); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LINE\tPRODUCT\tPRICE")
		for _, line := range a.Wishlist.Lines() {
			title, price := "(unknown)", int64(0)
			if line.Product != nil {
				title = line.Product.Title
				price = line.Product.UnitPrice()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", line.ID, title, formatMinorUnits(price))
		}
		w.Flush()
		return nil
	},
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		product, err := a.API.GetProduct(cmd.Context(), productID)
		if err != nil {
			return err
		}
		if err := a.Wishlist.Add(cmd.Context(), product); err != nil {
			return err
		}
		fmt.Printf("Added %s to wishlist\n", product.Title)
		return nil
	},
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "rm <line-id>",
	Short: "Remove a wishlist line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lineID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid line id %q", args[0])
		}

		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Wishlist.Remove(cmd.Context(), lineID); err != nil {
			return err
		}
		fmt.Printf("Removed wishlist line %d\n", lineID)
		return nil
	},
}

func init() {
	wishlistCmd.AddCommand(wishlistListCmd, wishlistAddCmd, wishlistRemoveCmd)
}
