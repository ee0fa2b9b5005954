package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lord-charite/blogApp/internal/config"
	"github.com/lord-charite/blogApp/internal/database"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize blogapp configuration and database",
	Long:  `Creates the ~/.blogapp directory with config.yaml and the SQLite database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	// Create directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Create config
	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	// Create database
	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s/blogapp.db\n", dir)

	fmt.Println("\nBlogapp initialized! Next steps:")
	fmt.Println("  blogapp run               Interpret commands from stdin")
	fmt.Println("  blogapp show <blog>       Render a blog's threads")

	return nil
}
