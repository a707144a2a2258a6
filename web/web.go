// Package web содержит страницу с формой сокращения ссылок.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
