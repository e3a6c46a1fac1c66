// Package boards provides the embedded board profiles: LED pins, analog
// input bands and remote-control codes for each supported wiring.
package boards

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
