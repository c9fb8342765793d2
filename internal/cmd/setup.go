package cmd

import (
	"fmt"

	"github.com/cycleworks/salesdesk/internal/config"
	"github.com/cycleworks/salesdesk/internal/database"
	"github.com/spf13/cobra"
)

var (
	dropFirst bool
	wipeData  bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the database schema",
	Long: `Creates the sales schema: people and contact tables, stores,
territories, customers, the product catalog and the sales order tables.

Existing tables are left in place unless --drop-first is given.`,
	RunE: setupSchema,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
	setupCmd.Flags().BoolVar(&wipeData, "wipe-data", false, "Delete all rows, keep the schema")
}

func setupSchema(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if wipeData {
		fmt.Println("🗑️  Deleting all rows...")
		if err := db.CleanupData(); err != nil {
			return fmt.Errorf("failed to clean up data: %w", err)
		}
		fmt.Println("✅ Data wiped")
		return nil
	}

	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to set up schema: %w", err)
	}

	fmt.Println("✅ Database setup complete!")
	return nil
}
