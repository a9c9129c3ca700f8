// Package scenario replays a scripted sequence of vehicle operations.
package scenario

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/fleet/pkg/config"
	"github.com/golangdaddy/fleet/pkg/fleet"
	"github.com/golangdaddy/fleet/pkg/logflags"
	"github.com/golangdaddy/fleet/pkg/vehicle"
)

// Step actions
const (
	ActionStart   = "start"
	ActionDrive   = "drive"
	ActionRefuel  = "refuel"
	ActionSetFuel = "set-fuel"
	ActionInfo    = "info"
	ActionFuel    = "fuel"
	ActionTotals  = "totals"
	ActionSummary = "summary"
)

// Errors that stop a run
var (
	ErrUnknownKind   = errors.New("unknown vehicle kind")
	ErrUnknownAction = errors.New("unknown action")
	ErrNoVehicle     = errors.New("action needs a vehicle")
)

// Report tallies what happened during a run
type Report struct {
	Executed int // steps run, including rejected ones
	Rejected int // steps whose operation was refused by the vehicle
}

// Build constructs every vehicle in c inside g
func Build(c *config.Config, g *fleet.Garage) error {
	for _, spec := range c.Vehicles {
		var err error
		switch spec.Kind {
		case vehicle.KindCar.String():
			_, err = g.NewCar(spec.Name, spec.Make, spec.Model, spec.Fuel, spec.Passengers)
		case vehicle.KindTruck.String():
			_, err = g.NewTruck(spec.Name, spec.Make, spec.Model, spec.Fuel, spec.Cargo)
		default:
			err = fmt.Errorf("%w %q", ErrUnknownKind, spec.Kind)
		}
		if err != nil {
			return fmt.Errorf("vehicle %q: %w", spec.Name, err)
		}
	}
	return nil
}

// Run builds the vehicles of c in g and executes its steps through con.
// Vehicle rejections are soft: they are reported and counted and the run
// goes on. Configuration problems stop the run with an error.
func Run(c *config.Config, g *fleet.Garage, con *fleet.Console) (Report, error) {
	log := logflags.ScenarioLogger()
	var report Report

	if err := Build(c, g); err != nil {
		return report, err
	}
	log.Debugf("built %d vehicles", g.Count())

	for i, step := range c.Steps {
		err := runStep(step, g, con)
		report.Executed++
		if err == nil {
			continue
		}
		if isRejection(err) {
			report.Rejected++
			log.WithField("step", i+1).WithError(err).Infof("%s on %q rejected", step.Action, step.Vehicle)
			continue
		}
		return report, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
	}
	log.Debugf("executed %d steps, %d rejected", report.Executed, report.Rejected)
	return report, nil
}

func runStep(step config.Step, g *fleet.Garage, con *fleet.Console) error {
	switch step.Action {
	case ActionTotals:
		con.PrintTotals(g)
		return nil
	case ActionSummary:
		con.PrintSummary(g)
		return nil
	}

	if step.Vehicle == "" {
		if !knownAction(step.Action) {
			return fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
		}
		return ErrNoVehicle
	}
	v, err := g.Get(step.Vehicle)
	if err != nil {
		return err
	}

	switch step.Action {
	case ActionStart:
		return con.StartEngine(v)
	case ActionDrive:
		return con.Drive(v, step.Amount)
	case ActionRefuel:
		return con.Refuel(v, step.Amount)
	case ActionSetFuel:
		return con.SetFuelLevel(v, step.Amount)
	case ActionInfo:
		con.PrintInfo(v)
		return nil
	case ActionFuel:
		con.PrintFuelLevel(v)
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
}

func knownAction(action string) bool {
	switch action {
	case ActionStart, ActionDrive, ActionRefuel, ActionSetFuel, ActionInfo, ActionFuel, ActionTotals, ActionSummary:
		return true
	}
	return false
}

func isRejection(err error) bool {
	for _, target := range []error{
		vehicle.ErrNoFuel,
		vehicle.ErrInvalidRefuelAmount,
		vehicle.ErrFuelOverflow,
		vehicle.ErrInsufficientFuel,
		vehicle.ErrInvalidDistance,
		vehicle.ErrInvalidFuelLevel,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
