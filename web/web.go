package web

import "embed"

// Static holds the embedded web/static directory.
// The app mounts it via fs.Sub(Static, "static").
//
//go:embed static
var Static embed.FS
