package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/api"
)

var (
	authEmail    string
	authPassword string
	authName     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and pull the account's cart and wishlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.Session.Login(cmd.Context(), api.Credentials{
			Email:    authEmail,
			Password: authPassword,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Email)
		fmt.Printf("Cart: %d items, wishlist: %d items\n",
			a.Cart.ItemCount(), len(a.Wishlist.Lines()))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and start an authenticated session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.Session.Register(cmd.Context(), api.Registration{
			Name:     authName,
			Email:    authEmail,
			Password: authPassword,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Registered %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session, keeping the server-side cart intact",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Session.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and store state",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Printf("Session:  %s (%s)\n", a.SessionID, a.Session.State())
		if user := a.Session.User(); user != nil {
			fmt.Printf("Account:  %s (%s)\n", user.Name, user.Email)
		}
		fmt.Printf("Cart:     %d lines, %d items, subtotal %s\n",
			len(a.Cart.Lines()), a.Cart.ItemCount(), formatMinorUnits(a.Cart.Subtotal()))
		fmt.Printf("Wishlist: %d lines\n", len(a.Wishlist.Lines()))
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVar(&authEmail, "email", "", "account email")
		cmd.Flags().StringVar(&authPassword, "password", "", "account password")
		_ = cmd.MarkFlagRequired("email")
		_ = cmd.MarkFlagRequired("password")
	}
	registerCmd.Flags().StringVar(&authName, "name", "", "display name")
	_ = registerCmd.MarkFlagRequired("name")
}
