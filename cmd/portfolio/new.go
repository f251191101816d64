package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eltonpeixoto/portfolio"
	"github.com/eltonpeixoto/portfolio/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a draft post",
	Long: `Create <content>/<slug>.md from the post template, with the slug derived
from the title. The post starts unpublished. Existing files are never overwritten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		slug, _ := cmd.Flags().GetString("slug")
		if slug == "" {
			slug = portfolio.Slugify(title)
		}

		path, err := scaffold.WritePost(contentDir, slug, scaffold.PostData{
			Title: title,
			Date:  time.Now(),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  %s %s\n", green("created"), path)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Set %s in the front matter when it is ready, then preview with:\n", bold("published: true"))
		fmt.Fprintf(out, "  portfolio serve --drafts\n")
		return nil
	},
}

func init() {
	newCmd.Flags().String("slug", "", "file name without .md (default: derived from the title)")
	rootCmd.AddCommand(newCmd)
}
