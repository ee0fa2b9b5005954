// cmd/blogs.go
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lord-charite/blogApp/internal/config"
	"github.com/lord-charite/blogApp/internal/document"
)

var blogsCmd = &cobra.Command{
	Use:   "blogs",
	Short: "List stored blogs",
	Long:  `List every blog in the store with its post and comment counts.`,
	RunE:  runBlogs,
}

func init() {
	rootCmd.AddCommand(blogsCmd)
}

func runBlogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger()
	defer log.Sync()

	ctx := context.Background()
	st := openStore(ctx, cfg, log)
	defer closeStore(ctx, st, log)

	blogs, err := st.Blogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list blogs: %w", err)
	}

	if len(blogs) == 0 {
		fmt.Println("No blogs found. Run 'blogapp run' to interpret some commands.")
		return nil
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-24s  %6s  %8s", "BLOG", "POSTS", "COMMENTS")))
	fmt.Println(strings.Repeat("─", 44))

	for _, blog := range blogs {
		posts, err := st.FindByBlogAndKind(ctx, blog, document.KindPost)
		if err != nil {
			return err
		}
		comments, err := st.FindByBlogAndKind(ctx, blog, document.KindComment)
		if err != nil {
			return err
		}

		name := blog
		if len(name) > 24 {
			name = name[:21] + "..."
		}

		fmt.Printf(" %s  %s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-24s", name)),
			countStyle.Render(fmt.Sprintf("%6d", len(posts))),
			countStyle.Render(fmt.Sprintf("%8d", len(comments))),
		)
	}

	return nil
}
