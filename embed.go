package portfolio

import "embed"

// EmbeddedAssets contains the static assets shipped with the site:
// site.css and theme.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
