package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Probe the storefront API and snapshot backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		report := a.Health().Run(cmd.Context())

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CHECK\tSTATUS\tLATENCY\tERROR")
		for name, result := range report.Checks {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				name, result.Status, result.Duration.Round(1e6), result.Error)
		}
		w.Flush()

		if report.Status == health.StatusDown {
			return fmt.Errorf("one or more checks failed")
		}
		fmt.Println("All checks passed")
		return nil
	},
}
