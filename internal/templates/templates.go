// Package templates embeds the HTML pages so the binary does not depend on
// the working directory it is started from.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
