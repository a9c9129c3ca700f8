package main

import (
	"os"

	"github.com/golangdaddy/fleet/pkg/cmds"
	"github.com/golangdaddy/fleet/pkg/fleet"
	"github.com/golangdaddy/fleet/pkg/logflags"
	"github.com/golangdaddy/fleet/pkg/messages"
	"github.com/golangdaddy/fleet/pkg/ui"
)

// openWindow runs the ebiten fleet window
func openWindow(g *fleet.Garage, catalog *messages.Catalog, opts cmds.WindowOptions) error {
	return ui.Run(g, catalog, opts.StepKm, opts.StepLiters)
}

func main() {
	err := cmds.New(openWindow).Execute()
	// PersistentPostRun is skipped when a command fails
	logflags.Close()
	if err != nil {
		os.Exit(1)
	}
}
