// Package all registers all shell commands.
package all

import (
	// command packages
	_ "github.com/robotalks/trommel.go/pkg/cli/cmds/drum"
	_ "github.com/robotalks/trommel.go/pkg/cli/cmds/uart"
)
