package vehicle

var _ Vehicle = (*Truck)(nil)

// TruckKmPerLiter is how far a truck travels on one liter
const TruckKmPerLiter = 5

// Truck is a cargo vehicle
type Truck struct {
	base
	cargoWeight int // kg, informational only
}

// Kind always returns KindTruck
func (truck *Truck) Kind() Kind {
	return KindTruck
}

// CargoWeight returns the cargo weight in kg
func (truck *Truck) CargoWeight() int {
	return truck.cargoWeight
}

// StartEngine succeeds when there is any fuel in the tank
func (truck *Truck) StartEngine() error {
	return truck.startEngine()
}

// Refuel adds amount liters to the tank
func (truck *Truck) Refuel(amount int) error {
	return truck.refuel(amount)
}

// Drive burns one liter per 5 km. The tank is untouched when the trip is rejected.
func (truck *Truck) Drive(distance int) error {
	return truck.drive(distance, TruckKmPerLiter)
}

// FuelRequired returns the liters a trip of distance km would consume
func (truck *Truck) FuelRequired(distance int) int {
	return distance / TruckKmPerLiter
}
