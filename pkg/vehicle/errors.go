package vehicle

import "errors"

var (
	// ErrInvalidFuelLevel is returned when a fuel level below zero is requested
	ErrInvalidFuelLevel = errors.New("fuel level cannot be negative")
	// ErrInvalidRefuelAmount is returned when a refuel amount is zero or negative
	ErrInvalidRefuelAmount = errors.New("refuel amount must be positive")
	// ErrInsufficientFuel is returned when a trip needs more fuel than is in the tank
	ErrInsufficientFuel = errors.New("insufficient fuel for trip")
	// ErrInvalidDistance is returned for negative trip distances
	ErrInvalidDistance = errors.New("distance cannot be negative")
	// ErrFuelOverflow is returned when a refuel would exceed the largest representable level
	ErrFuelOverflow = errors.New("fuel level would overflow")
	// ErrNoFuel is returned when the engine is started on an empty tank
	ErrNoFuel = errors.New("no fuel to start engine")
)
