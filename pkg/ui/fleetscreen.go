package ui

import (
	"image/color"

	"github.com/golangdaddy/fleet/pkg/dashboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FleetScreen lists the garage and forwards key presses to a dashboard
type FleetScreen struct {
	dash *dashboard.Dashboard
}

// NewFleetScreen creates a screen over d
func NewFleetScreen(d *dashboard.Dashboard) *FleetScreen {
	return &FleetScreen{dash: d}
}

// keyActions maps keys to dashboard actions
var keyActions = []struct {
	key    ebiten.Key
	action dashboard.Action
}{
	{ebiten.KeyArrowUp, dashboard.ActionUp},
	{ebiten.KeyArrowDown, dashboard.ActionDown},
	{ebiten.KeyS, dashboard.ActionStart},
	{ebiten.KeyD, dashboard.ActionDrive},
	{ebiten.KeyR, dashboard.ActionRefuel},
	{ebiten.KeyEscape, dashboard.ActionQuit},
}

// Update handles input for the fleet screen
func (fs *FleetScreen) Update() error {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			if err := fs.dash.Handle(ka.action); err != nil {
				return err
			}
		}
	}
	return nil
}

// Draw renders the fleet screen
func (fs *FleetScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(width) / 2

	screen.Fill(color.RGBA{40, 40, 50, 255})

	titleColor := color.RGBA{255, 200, 0, 255} // Yellow/gold
	catalog := fs.dash.Catalog()
	drawTextCentered(screen, catalog.WindowTitle, centerX, 30, 32, titleColor)

	rows := fs.dash.Rows()
	if len(rows) == 0 {
		drawTextCentered(screen, catalog.WindowEmpty, centerX, float64(height)/2, 18, color.RGBA{255, 255, 255, 255})
		return
	}

	// Vehicle list
	rowWidth := float64(width) - 80
	rowHeight := 36.0
	rowX := 40.0
	rowY := 90.0
	for _, r := range rows {
		bgColor := color.RGBA{40, 40, 60, 255}
		textColor := color.RGBA{200, 200, 200, 255}
		if r.Selected {
			bgColor = color.RGBA{60, 100, 140, 255}
			textColor = color.RGBA{200, 240, 255, 255}
		}
		drawPanel(screen, rowX, rowY, rowWidth, rowHeight, bgColor, color.RGBA{80, 80, 100, 255})
		drawTextAt(screen, r.Label, rowX+12, rowY+rowHeight/2-8, 16, textColor)
		rowY += rowHeight + 8
	}

	drawTextAt(screen, fs.dash.TotalsLine(), rowX, rowY+8, 16, color.RGBA{150, 150, 200, 255})

	// Recent messages, newest last
	historyY := float64(height) - 170
	for _, line := range fs.dash.History() {
		drawTextAt(screen, line, rowX, historyY, 14, color.RGBA{100, 255, 100, 255})
		historyY += 20
	}

	instructionColor := color.RGBA{150, 150, 150, 255}
	drawTextCentered(screen, catalog.WindowHelp, centerX, float64(height)-40, 14, instructionColor)
}
