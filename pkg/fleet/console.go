package fleet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/golangdaddy/fleet/pkg/logflags"
	"github.com/golangdaddy/fleet/pkg/messages"
	"github.com/golangdaddy/fleet/pkg/vehicle"
	"github.com/olekukonko/tablewriter"
)

// Console runs vehicle operations and reports each outcome as one line of
// text. Rejected operations leave the vehicle untouched; the error is both
// printed and returned so callers can act on it.
type Console struct {
	out     io.Writer
	catalog *messages.Catalog
	log     logflags.Logger
}

// NewConsole creates a console writing catalog lines to out
func NewConsole(out io.Writer, catalog *messages.Catalog) *Console {
	return &Console{
		out:     out,
		catalog: catalog,
		log:     logflags.GarageLogger(),
	}
}

// Catalog returns the message catalog in use
func (c *Console) Catalog() *messages.Catalog {
	return c.catalog
}

// StartEngine starts the engine of v
func (c *Console) StartEngine(v vehicle.Vehicle) error {
	err := v.StartEngine()
	if err != nil {
		return c.reject(v, "start", err)
	}
	c.printf(c.catalog.EngineStarted[v.Kind()], v.Make(), v.Model())
	return nil
}

// Drive drives v for distance km
func (c *Console) Drive(v vehicle.Vehicle, distance int) error {
	before := v.FuelLevel()
	if err := v.Drive(distance); err != nil {
		return c.reject(v, "drive", err)
	}
	c.logger(v).Debugf("drove %d km, fuel %d -> %d", distance, before, v.FuelLevel())
	c.printf(c.catalog.Drove[v.Kind()], distance)
	return nil
}

// Refuel adds amount liters to v
func (c *Console) Refuel(v vehicle.Vehicle, amount int) error {
	if err := v.Refuel(amount); err != nil {
		return c.reject(v, "refuel", err)
	}
	c.logger(v).Debugf("refueled %d liters, fuel now %d", amount, v.FuelLevel())
	c.printf(c.catalog.Refueled[v.Kind()], amount)
	return nil
}

// SetFuelLevel overwrites the fuel level of v
func (c *Console) SetFuelLevel(v vehicle.Vehicle, liters int) error {
	if err := v.SetFuelLevel(liters); err != nil {
		return c.reject(v, "set-fuel", err)
	}
	c.printf(c.catalog.FuelLevelSet[v.Kind()], liters)
	return nil
}

// PrintInfo prints make and model of v
func (c *Console) PrintInfo(v vehicle.Vehicle) {
	c.printf(c.catalog.Info, v.Make(), v.Model())
}

// PrintFuelLevel prints the current fuel level of v
func (c *Console) PrintFuelLevel(v vehicle.Vehicle) {
	c.printf(c.catalog.FuelLevel[v.Kind()], v.FuelLevel())
}

// PrintTotals prints how many cars and trucks g has built
func (c *Console) PrintTotals(g *Garage) {
	c.printf(c.catalog.Total[vehicle.KindCar], g.TotalCars())
	c.printf(c.catalog.Total[vehicle.KindTruck], g.TotalTrucks())
}

// PrintSummary renders every vehicle in g as a table
func (c *Console) PrintSummary(g *Garage) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(c.catalog.SummaryHeader)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, e := range g.Entries() {
		passengers, cargo := "-", "-"
		switch v := e.Vehicle.(type) {
		case *vehicle.Car:
			passengers = strconv.Itoa(v.PassengerCount())
		case *vehicle.Truck:
			cargo = strconv.Itoa(v.CargoWeight())
		}
		table.Append([]string{
			e.Name,
			e.Vehicle.Kind().String(),
			e.Vehicle.Make(),
			e.Vehicle.Model(),
			strconv.Itoa(e.Vehicle.FuelLevel()),
			passengers,
			cargo,
		})
	}
	table.Render()
}

func (c *Console) reject(v vehicle.Vehicle, op string, err error) error {
	c.logger(v).WithError(err).Warnf("%s rejected", op)
	if line, ok := c.catalog.Rejection(err); ok {
		c.printf("%s", line)
	}
	return err
}

func (c *Console) logger(v vehicle.Vehicle) logflags.Logger {
	return c.log.WithFields(logflags.Fields{
		"kind":  v.Kind().String(),
		"make":  v.Make(),
		"model": v.Model(),
	})
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
