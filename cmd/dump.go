// cmd/dump.go
package cmd

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/lord-charite/blogApp/internal/config"
	"github.com/lord-charite/blogApp/internal/document"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <blog>",
	Short: "Dump a blog's documents as JSON lines",
	Long:  `Write every document of a blog to stdout, one JSON object per line, in insertion order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger()
	defer log.Sync()

	ctx := context.Background()
	st := openStore(ctx, cfg, log)
	defer closeStore(ctx, st, log)

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	enc := json.NewEncoder(os.Stdout)

	for _, kind := range []document.Kind{document.KindPost, document.KindComment} {
		docs, err := st.FindByBlogAndKind(ctx, args[0], kind)
		if err != nil {
			return fmt.Errorf("failed to read documents: %w", err)
		}
		for _, d := range docs {
			if err := enc.Encode(d); err != nil {
				return err
			}
		}
	}

	return nil
}
