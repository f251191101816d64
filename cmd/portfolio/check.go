package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eltonpeixoto/portfolio/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every post file",
	Long: `Parse every markdown file in the content directory and report the ones
that fail. Exits non-zero when any file is broken. --watch keeps running and
re-checks whenever a post file changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")

		l, err := newLoader(content.WithFailurePolicy(content.SkipInvalid))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !watch {
			return runCheck(cmd.Context(), out, l)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runCheck(ctx, out, l); err != nil {
			fmt.Fprintf(out, "%s %v\n", red("✗"), err)
		}
		fmt.Fprintf(out, "%s\n", faint("watching "+contentDir+" (ctrl-c to stop)"))
		return content.Watch(ctx, contentDir, 0, func(ev content.Event) {
			fmt.Fprintf(out, "\n%s %s %s\n", faint(ev.Op.String()), cyan(ev.Slug), faint(ev.Path))
			if err := runCheck(ctx, out, l); err != nil {
				fmt.Fprintf(out, "%s %v\n", red("✗"), err)
			}
		})
	},
}

// runCheck prints one line per broken file and a summary. The error is
// non-nil when any file failed.
func runCheck(ctx context.Context, out io.Writer, l *content.Loader) error {
	problems, err := l.Check(ctx)
	if err != nil {
		return err
	}
	slugs, err := l.Slugs()
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Fprintf(out, "%s %s: %v\n", red("✗"), p.Path, p.Err)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d of %d post files failed to load", len(problems), len(slugs))
	}
	fmt.Fprintf(out, "%s %d post files OK\n", green("✓"), len(slugs))
	return nil
}

func init() {
	checkCmd.Flags().Bool("watch", false, "re-check when post files change")
	rootCmd.AddCommand(checkCmd)
}
