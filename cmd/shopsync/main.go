package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/app"
	"github.com/SkDevilS/E-Commerce-Web-Application/internal/config"
	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
)

// rootCmd is the entry point for the shopsync CLI, a thin driver around the
// cart and wishlist stores.
var rootCmd = &cobra.Command{
	Use:   "shopsync",
	Short: "Storefront cart and wishlist sync client",
	Long: `shopsync keeps a local, optimistic copy of a storefront account's cart
and wishlist in sync with the backend API.

Configuration comes from the environment: API_BASE_URL selects the backend,
REDIS_ADDR (optional) enables persisted snapshots, SESSION_ID pins the
snapshot slot for a recurring session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, statusCmd, cartCmd, wishlistCmd, productCmd, doctorCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", apperrors.Message(err))
		os.Exit(1)
	}
}

// buildApp loads configuration and wires the application for one invocation.
func buildApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg)
}
