package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/eltonpeixoto/portfolio"
	"github.com/eltonpeixoto/portfolio/content"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Serve the site over HTTP. Flags default from PORTFOLIO_* environment
variables; posts are re-read on every request, so edits show up on reload.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		siteFile, _ := cmd.Flags().GetString("site")
		staticDir, _ := cmd.Flags().GetString("static")
		drafts, _ := cmd.Flags().GetBool("drafts")
		policyFlag, _ := cmd.Flags().GetString("on-error")

		policy, err := content.ParseFailurePolicy(policyFlag)
		if err != nil {
			return err
		}
		cfg := portfolio.SiteConfig{
			Name:          os.Getenv("PORTFOLIO_NAME"),
			URL:           os.Getenv("PORTFOLIO_URL"),
			Author:        os.Getenv("PORTFOLIO_AUTHOR"),
			Addr:          addr,
			ContentDir:    contentDir,
			SiteFile:      siteFile,
			FailurePolicy: policy,
			PreviewDrafts: drafts,
			SessionSecret: os.Getenv("PORTFOLIO_SESSION_SECRET"),
			CookieSecure:  envBool("PORTFOLIO_COOKIE_SECURE"),
		}
		if tz := os.Getenv("PORTFOLIO_TZ"); tz != "" {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return err
			}
			cfg.Location = loc
		}

		app := portfolio.New(cfg, portfolio.DefaultViews(), portfolio.WithStaticDir(staticDir))
		app.Echo.Logger.SetLevel(log.INFO)
		if drafts {
			app.Echo.Logger.Warn("draft preview enabled: unpublished posts are reachable by URL")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- app.Start() }()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.Shutdown(shutdownCtx)
	},
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func init() {
	serveCmd.Flags().String("addr", portfolio.EnvOr("PORTFOLIO_ADDR", ":3000"), "listen address")
	serveCmd.Flags().String("site", portfolio.EnvOr("PORTFOLIO_SITE", "site.yaml"), "profile YAML (bundled profile when missing)")
	serveCmd.Flags().String("static", portfolio.EnvOr("PORTFOLIO_STATIC", "public"), "directory served under /public/")
	serveCmd.Flags().Bool("drafts", envBool("PORTFOLIO_DRAFTS"), "serve unpublished posts by URL")
	serveCmd.Flags().String("on-error", portfolio.EnvOr("PORTFOLIO_ON_ERROR", "fail-all"), "broken post files: fail-all or skip-invalid")
	rootCmd.AddCommand(serveCmd)
}
