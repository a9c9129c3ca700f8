// Package dashboard is the input-independent state behind the fleet window.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/fleet/pkg/fleet"
	"github.com/golangdaddy/fleet/pkg/logflags"
	"github.com/golangdaddy/fleet/pkg/messages"
)

// Action is a user command coming from whatever input device drives the window
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionStart
	ActionDrive
	ActionRefuel
	ActionQuit
)

// ErrQuit is returned by Handle when the user asks to leave
var ErrQuit = errors.New("quit")

// historySize is how many message lines are kept for display
const historySize = 5

// Row is one vehicle as it should be displayed
type Row struct {
	Name     string
	Label    string
	Selected bool
}

// Dashboard tracks the selected vehicle and the recent console lines
type Dashboard struct {
	garage     *fleet.Garage
	console    *fleet.Console
	history    *history
	selected   int
	stepKm     int
	stepLiters int
	log        logflags.Logger
}

// New creates a dashboard over g. Drive and refuel actions use stepKm and
// stepLiters per invocation.
func New(g *fleet.Garage, catalog *messages.Catalog, stepKm, stepLiters int) *Dashboard {
	h := &history{max: historySize}
	return &Dashboard{
		garage:     g,
		console:    fleet.NewConsole(h, catalog),
		history:    h,
		stepKm:     stepKm,
		stepLiters: stepLiters,
		log:        logflags.UILogger(),
	}
}

// Handle applies a single action. Vehicle rejections are shown in the
// history, not returned.
func (d *Dashboard) Handle(a Action) error {
	entries := d.garage.Entries()
	if len(entries) == 0 {
		if a == ActionQuit {
			return ErrQuit
		}
		return nil
	}

	switch a {
	case ActionNone:
		return nil
	case ActionQuit:
		return ErrQuit
	case ActionUp:
		d.selected--
		if d.selected < 0 {
			d.selected = len(entries) - 1
		}
		return nil
	case ActionDown:
		d.selected++
		if d.selected >= len(entries) {
			d.selected = 0
		}
		return nil
	}

	if d.selected >= len(entries) {
		d.selected = len(entries) - 1
	}
	e := entries[d.selected]
	var err error
	switch a {
	case ActionStart:
		err = d.console.StartEngine(e.Vehicle)
	case ActionDrive:
		err = d.console.Drive(e.Vehicle, d.stepKm)
	case ActionRefuel:
		err = d.console.Refuel(e.Vehicle, d.stepLiters)
	default:
		return fmt.Errorf("unknown action %d", a)
	}
	if err != nil {
		d.log.WithField("vehicle", e.Name).WithError(err).Debugf("action %d rejected", a)
	}
	return nil
}

// Selected returns the index of the highlighted vehicle
func (d *Dashboard) Selected() int {
	return d.selected
}

// Rows describes every vehicle in display order
func (d *Dashboard) Rows() []Row {
	entries := d.garage.Entries()
	rows := make([]Row, len(entries))
	catalog := d.console.Catalog()
	for i, e := range entries {
		label := fmt.Sprintf(catalog.WindowRow, e.Name, e.Vehicle.Make(), e.Vehicle.Model(),
			catalog.KindName[e.Vehicle.Kind()], e.Vehicle.FuelLevel())
		rows[i] = Row{Name: e.Name, Label: label, Selected: i == d.selected}
	}
	return rows
}

// History returns the most recent console lines, oldest first
func (d *Dashboard) History() []string {
	return d.history.lines()
}

// Totals returns the car and truck counts of the garage
func (d *Dashboard) Totals() (cars, trucks int) {
	return d.garage.TotalCars(), d.garage.TotalTrucks()
}

// TotalsLine returns the car and truck counts worded for display
func (d *Dashboard) TotalsLine() string {
	cars, trucks := d.Totals()
	return fmt.Sprintf(d.console.Catalog().WindowTotals, cars, trucks)
}

// Catalog returns the catalog that words the window
func (d *Dashboard) Catalog() *messages.Catalog {
	return d.console.Catalog()
}

// history is an io.Writer that keeps the last max complete lines
type history struct {
	max     int
	buf     []string
	partial string
}

func (h *history) Write(p []byte) (int, error) {
	s := h.partial + string(p)
	parts := strings.Split(s, "\n")
	h.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		h.buf = append(h.buf, line)
	}
	if len(h.buf) > h.max {
		h.buf = h.buf[len(h.buf)-h.max:]
	}
	return len(p), nil
}

func (h *history) lines() []string {
	out := make([]string, len(h.buf))
	copy(out, h.buf)
	return out
}
