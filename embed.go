package memo

import "embed"

// EmbeddedAssets contains static assets shipped with the site:
// tocspy.js (loads tocspy.wasm) and toc.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
