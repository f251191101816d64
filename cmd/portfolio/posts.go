package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eltonpeixoto/portfolio/content"
	"github.com/eltonpeixoto/portfolio/markdown"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List posts",
	Long:  `List published posts, newest first. --all includes drafts; --tag filters by exact tag.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		tag, _ := cmd.Flags().GetString("tag")

		l, err := newLoader()
		if err != nil {
			return err
		}
		var posts []content.Post
		if all {
			posts, err = l.ListAllPosts(cmd.Context())
		} else {
			posts, err = l.ListPosts(cmd.Context())
		}
		if err != nil {
			return err
		}
		posts = content.FilterByTag(posts, tag)

		out := cmd.OutOrStdout()
		if len(posts) == 0 {
			fmt.Fprintln(out, "No posts found.")
			return nil
		}
		return writePostTable(out, posts)
	},
}

func writePostTable(out io.Writer, posts []content.Post) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, p := range posts {
		title := bold(p.Title)
		if !p.Published {
			title += " " + yellow("(rascunho)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			faint(p.Date.Format("2006-01-02")),
			cyan(p.Slug),
			faint(content.ReadingTime(p.Content)),
			title)
	}
	return w.Flush()
}

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a post",
	Long:  `Display a post's front matter and its body rendered for the terminal. Drafts are included.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")

		l, err := newLoader()
		if err != nil {
			return err
		}
		post, err := l.GetPostAny(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get post %q: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", bold(post.Title))
		fmt.Fprintf(out, "%s %s  %s %s\n",
			faint("Data:"), content.FormatDate(post.Date, ""),
			faint("Autor:"), post.Author)
		if len(post.Tags) > 0 {
			fmt.Fprintf(out, "%s %s\n", faint("Tags:"), cyan(strings.Join(post.Tags, ", ")))
		}
		if !post.Published {
			fmt.Fprintln(out, yellow("Rascunho"))
		}

		body, err := markdown.Terminal(post.Content, width)
		if err != nil {
			// Raw markdown beats no output.
			body = post.Content
		}
		fmt.Fprint(out, body)
		return nil
	},
}

func init() {
	postsCmd.Flags().Bool("all", false, "include unpublished posts")
	postsCmd.Flags().String("tag", "", "only posts with this tag")
	showCmd.Flags().Int("width", 80, "word wrap width")
	rootCmd.AddCommand(postsCmd, showCmd)
}
