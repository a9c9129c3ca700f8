package vehicle

import (
	"fmt"
	"math"
)

// Kind identifies one of the closed set of vehicle variants
type Kind int

const (
	KindCar Kind = iota
	KindTruck
)

// String returns the lower-case variant name
func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindTruck:
		return "truck"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fuelable is implemented by anything that can take on fuel
type Fuelable interface {
	Refuel(amount int) error
}

// Driveable is implemented by anything that burns fuel to cover distance
type Driveable interface {
	Drive(distance int) error
}

// Vehicle is the behavior shared by every variant
type Vehicle interface {
	Fuelable
	Driveable

	Kind() Kind
	Make() string
	Model() string
	Info() string
	FuelLevel() int
	SetFuelLevel(liters int) error
	StartEngine() error
	// FuelRequired is the number of liters Drive would consume for distance km
	FuelRequired(distance int) int
}

// base holds the state common to all variants and is embedded by Car and Truck
type base struct {
	make      string
	model     string
	fuelLevel int // liters, never negative
}

func newBase(make, model string, fuelLevel int) (base, error) {
	if fuelLevel < 0 {
		return base{}, fmt.Errorf("%w: %d", ErrInvalidFuelLevel, fuelLevel)
	}
	return base{make: make, model: model, fuelLevel: fuelLevel}, nil
}

// Make returns the manufacturer
func (b *base) Make() string {
	return b.make
}

// Model returns the model name
func (b *base) Model() string {
	return b.model
}

// Info returns a one-line description of make and model
func (b *base) Info() string {
	return fmt.Sprintf("Make: %s, Model: %s", b.make, b.model)
}

// FuelLevel returns the current fuel level in liters
func (b *base) FuelLevel() int {
	return b.fuelLevel
}

// SetFuelLevel overwrites the fuel level.
// Negative values are rejected and leave the level unchanged.
func (b *base) SetFuelLevel(liters int) error {
	if liters < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFuelLevel, liters)
	}
	b.fuelLevel = liters
	return nil
}

func (b *base) startEngine() error {
	if b.fuelLevel > 0 {
		return nil
	}
	return ErrNoFuel
}

func (b *base) refuel(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRefuelAmount, amount)
	}
	if amount > math.MaxInt-b.fuelLevel {
		return fmt.Errorf("%w: %d + %d liters", ErrFuelOverflow, b.fuelLevel, amount)
	}
	b.fuelLevel += amount // no tank capacity
	return nil
}

// drive burns distance/kmPerLiter liters, truncating partial liters
func (b *base) drive(distance, kmPerLiter int) error {
	if distance < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDistance, distance)
	}
	required := distance / kmPerLiter
	if b.fuelLevel < required {
		return fmt.Errorf("%w: need %d liters, have %d", ErrInsufficientFuel, required, b.fuelLevel)
	}
	b.fuelLevel -= required
	return nil
}
