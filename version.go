package patterns

import (
	_ "embed"
)

// Version is the release of the patterns module, read from the VERSION file.
//
//go:embed VERSION
var Version string
