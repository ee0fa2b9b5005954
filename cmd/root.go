package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blogapp",
	Short: "Interpret commands for a toy blogging platform",
	Long: `Blogapp reads line-oriented commands (post, comment, delete, show,
find), keeps posts and threaded comments in a document store, and
renders hierarchical views.

Run 'blogapp run' to interpret a command stream from stdin.`,
}

func init() {
	rootCmd.Version = "0.1.0"
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
