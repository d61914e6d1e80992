// embed.go sits at the module root because //go:embed only reaches files in
// the package directory and below.
package main

import "embed"

//go:embed data/game.yaml
var dataFS embed.FS
