// cmd/run.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lord-charite/blogApp/internal/config"
	"github.com/lord-charite/blogApp/internal/processor"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Interpret a command stream",
	Long: `Reads one command per line from stdin (or a file, if given) and
applies it to the document store. Rendered views go to stdout,
diagnostics to stderr. Errors skip the offending line and processing
continues.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger()
	defer log.Sync()

	ctx := context.Background()
	st := openStore(ctx, cfg, log)
	defer closeStore(ctx, st, log)

	input := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open command file: %w", err)
		}
		defer f.Close()
		input = f
	}

	proc := processor.New(st, os.Stdout, os.Stderr, log)
	return proc.Run(ctx, input)
}
