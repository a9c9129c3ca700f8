package fleet

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golangdaddy/fleet/pkg/vehicle"
)

// Errors returned by Garage
var (
	ErrGarageFull     = errors.New("garage is at capacity")
	ErrEmptyName      = errors.New("vehicle name cannot be empty")
	ErrDuplicateName  = errors.New("vehicle name already in use")
	ErrUnknownVehicle = errors.New("no such vehicle")
)

// Entry is a vehicle together with the name it was registered under
type Entry struct {
	Name    string
	Vehicle vehicle.Vehicle
}

// Garage owns the vehicles of a fleet and the factory that built them.
// It is safe for concurrent use; the vehicles it hands out are not.
type Garage struct {
	mu       sync.Mutex
	factory  *vehicle.Factory
	entries  []Entry        // insertion order
	byName   map[string]int // name -> index into entries
	capacity int            // maximum number of vehicles (0 = unlimited)
}

// NewGarage creates an empty garage with optional capacity limit
// If capacity is 0, the garage has unlimited capacity
func NewGarage(capacity int) *Garage {
	return &Garage{
		factory:  vehicle.NewFactory(),
		byName:   make(map[string]int),
		capacity: capacity,
	}
}

// NewCar builds a car and parks it under name
func (g *Garage) NewCar(name, make, model string, fuelLevel, passengerCount int) (*vehicle.Car, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkSlot(name); err != nil {
		return nil, err
	}
	car, err := g.factory.NewCar(make, model, fuelLevel, passengerCount)
	if err != nil {
		return nil, err
	}
	g.add(name, car)
	return car, nil
}

// NewTruck builds a truck and parks it under name
func (g *Garage) NewTruck(name, make, model string, fuelLevel, cargoWeight int) (*vehicle.Truck, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkSlot(name); err != nil {
		return nil, err
	}
	truck, err := g.factory.NewTruck(make, model, fuelLevel, cargoWeight)
	if err != nil {
		return nil, err
	}
	g.add(name, truck)
	return truck, nil
}

// checkSlot runs before construction so a rejected add never bumps a counter
func (g *Garage) checkSlot(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := g.byName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if g.capacity > 0 && len(g.entries) >= g.capacity {
		return ErrGarageFull
	}
	return nil
}

func (g *Garage) add(name string, v vehicle.Vehicle) {
	g.byName[name] = len(g.entries)
	g.entries = append(g.entries, Entry{Name: name, Vehicle: v})
}

// Get returns the vehicle parked under name
func (g *Garage) Get(name string) (vehicle.Vehicle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVehicle, name)
	}
	return g.entries[i].Vehicle, nil
}

// FindByMakeModel searches for a vehicle by make and model
// Returns the first match and its name, or nil and "" if not found
func (g *Garage) FindByMakeModel(make, model string) (vehicle.Vehicle, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.entries {
		if e.Vehicle.Make() == make && e.Vehicle.Model() == model {
			return e.Vehicle, e.Name
		}
	}
	return nil, ""
}

// Entries returns a copy of the garage contents in insertion order
func (g *Garage) Entries() []Entry {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Count returns the number of vehicles in the garage
func (g *Garage) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

// IsFull returns true if the garage is at capacity
func (g *Garage) IsFull() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.capacity > 0 && len(g.entries) >= g.capacity
}

// TotalCars returns how many cars this garage has built
func (g *Garage) TotalCars() int {
	return g.factory.TotalCars()
}

// TotalTrucks returns how many trucks this garage has built
func (g *Garage) TotalTrucks() int {
	return g.factory.TotalTrucks()
}

// String returns a string representation of the garage
func (g *Garage) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	countStr := fmt.Sprintf("%d", len(g.entries))
	if g.capacity > 0 {
		countStr = fmt.Sprintf("%d/%d", len(g.entries), g.capacity)
	}
	return fmt.Sprintf("Garage: %s vehicles, Cars: %d, Trucks: %d",
		countStr, g.factory.TotalCars(), g.factory.TotalTrucks())
}
