package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salesdesk",
	Short: "Salesdesk - retail sales data service",
	Long: `Salesdesk is a REST service over a retail sales database: people,
customers, a product catalog and sales orders.

Run it as a server for the JSON API, or use the CLI commands to set up
the schema and seed sample data.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
