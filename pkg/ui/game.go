package ui

import (
	"errors"

	"github.com/golangdaddy/fleet/pkg/dashboard"
	"github.com/golangdaddy/fleet/pkg/fleet"
	"github.com/golangdaddy/fleet/pkg/logflags"
	"github.com/golangdaddy/fleet/pkg/messages"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// Game implements ebiten.Game interface.
type Game struct {
	screen *FleetScreen
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	err := g.screen.Update()
	if errors.Is(err, dashboard.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the fleet window over garage and blocks until it is closed.
func Run(garage *fleet.Garage, catalog *messages.Catalog, stepKm, stepLiters int) error {
	log := logflags.UILogger()
	game := &Game{
		screen: NewFleetScreen(dashboard.New(garage, catalog, stepKm, stepLiters)),
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Fleet")
	log.Infof("opening window for %s", garage)
	// RunGame returns nil when Update returns ebiten.Termination
	return ebiten.RunGame(game)
}
