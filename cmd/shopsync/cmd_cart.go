package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
)

var (
	cartAddQuantity int
	cartAddSize     string
	cartAddColor    string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Inspect and mutate the cart",
}

var cartListCmd = &cobra.Command{
	Use:   "ls",
	Short: "Fetch the cart from the server and list its lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Cart.Fetch(cmd.Context()); err != nil {
			return err
		}
		printCartLines(a.Cart.Lines(), a.Cart.Subtotal())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product variant to the cart",
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
		if err := a.Cart.Add(cmd.Context(), product, cartAddQuantity, cartAddSize, cartAddColor); err != nil {
			return err
		}
		fmt.Printf("Added %s x%d\n", product.Title, cartAddQuantity)
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "rm <line-id>",
	Short: "Remove a cart line",
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

		if err := a.Cart.Remove(cmd.Context(), lineID); err != nil {
			return err
		}
		fmt.Printf("Removed line %d\n", lineID)
		return nil
	},
}

var cartQuantityCmd = &cobra.Command{
	Use:   "qty <line-id> <quantity>",
	Short: "Set a cart line's quantity (0 removes the line)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lineID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid line id %q", args[0])
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}

		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Cart.UpdateQuantity(cmd.Context(), lineID, quantity); err != nil {
			return err
		}
		fmt.Printf("Line %d set to quantity %d\n", lineID, quantity)
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Cart.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Cart cleared")
		return nil
	},
}

var cartTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "Fetch the cart and print its subtotal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Cart.Fetch(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("%d items, subtotal %s\n", a.Cart.ItemCount(), formatMinorUnits(a.Cart.Subtotal()))
		return nil
	},
}

func printCartLines(lines []domain.CartLine, subtotal int64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tPRODUCT\tVARIANT\tQTY\tUNIT\tTOTAL")
	for _, line := range lines {
		title, unit := "(unknown)", int64(0)
		if line.Product != nil {
			title = line.Product.Title
			unit = line.Product.UnitPrice()
		}
		variant := line.Size
		if line.Color != "" {
			if variant != "" {
				variant += "/"
			}
			variant += line.Color
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			line.ID, title, variant, line.Quantity,
			formatMinorUnits(unit), formatMinorUnits(unit*int64(line.Quantity)))
	}
	fmt.Fprintf(w, "\t\t\t\t\t%s\n", formatMinorUnits(subtotal))
	w.Flush()
}

func formatMinorUnits(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}

func init() {
	cartAddCmd.Flags().IntVar(&cartAddQuantity, "qty", 1, "quantity to add")
	cartAddCmd.Flags().StringVar(&cartAddSize, "size", "", "variant size")
	cartAddCmd.Flags().StringVar(&cartAddColor, "color", "", "variant color")

	cartCmd.AddCommand(cartListCmd, cartAddCmd, cartRemoveCmd, cartQuantityCmd, cartClearCmd, cartTotalCmd)
}
