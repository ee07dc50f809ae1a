// Package web carries the server-rendered page templates.
package web

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS
