// Package web holds the HTML templates and static assets, embedded so the
// binary runs from any working directory.
package web

import "embed"

//go:embed templates static
var FS embed.FS
