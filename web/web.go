// Package web embeds the single-page frontend served for all non-API routes.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
