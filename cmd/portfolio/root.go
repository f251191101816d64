package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eltonpeixoto/portfolio"
	"github.com/eltonpeixoto/portfolio/content"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

var contentDir string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal site with a markdown blog",
	Long: `portfolio serves a personal site (profile, projects, contact) and a blog
read from a directory of markdown files with YAML front matter.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any error in red.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contentDir, "content", "c",
		portfolio.EnvOr("PORTFOLIO_CONTENT", "content/posts"), "directory of markdown posts")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the portfolio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s\n", version)
	},
}

// newLoader builds a loader for CLI use. Dates without an offset are read in
// PORTFOLIO_TZ when set.
func newLoader(opts ...content.Option) (*content.Loader, error) {
	if tz := os.Getenv("PORTFOLIO_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("PORTFOLIO_TZ: %w", err)
		}
		opts = append(opts, content.WithLocation(loc))
	}
	return content.New(contentDir, opts...), nil
}
