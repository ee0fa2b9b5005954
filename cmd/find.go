// cmd/find.go
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lord-charite/blogApp/internal/config"
	"github.com/lord-charite/blogApp/internal/parser"
	"github.com/lord-charite/blogApp/internal/processor"
)

var findCmd = &cobra.Command{
	Use:   "find <blog> <term>",
	Short: "Search a blog's posts and comments",
	Long: `Render the posts whose body or tags contain the term, with their
matching reply chains, followed by matching comments that had no
matching post. Matching is a case-sensitive substring check.`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
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
	return proc.Execute(ctx, parser.Command{
		Name:       parser.CmdFind,
		Blog:       args[0],
		SearchTerm: args[1],
	})
}
