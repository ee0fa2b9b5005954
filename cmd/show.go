// cmd/show.go
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lord-charite/blogApp/internal/config"
	"github.com/lord-charite/blogApp/internal/parser"
	"github.com/lord-charite/blogApp/internal/processor"
)

var showCmd = &cobra.Command{
	Use:   "show <blog>",
	Short: "Render a blog's posts and comment threads",
	Long:  `Display every post of a blog with its full comment tree, newest post first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger()
	defer log.Sync()

	ctx := context.Background()
	st := openStore(ctx, cfg, log)
	defer closeStore(ctx, st, log)

	proc := processor.New(st, os.Stdout, os.Stderr, log)
	return proc.Execute(ctx, parser.Command{Name: parser.CmdShow, Blog: args[0]})
}
