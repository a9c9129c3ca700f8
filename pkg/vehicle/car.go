package vehicle

var _ Vehicle = (*Car)(nil)

// CarKmPerLiter is how far a car travels on one liter
const CarKmPerLiter = 10

// Car is a passenger vehicle
type Car struct {
	base
	passengerCount int
}

// Kind always returns KindCar
func (car *Car) Kind() Kind {
	return KindCar
}

// PassengerCount returns the seating capacity
func (car *Car) PassengerCount() int {
	return car.passengerCount
}

// StartEngine succeeds when there is any fuel in the tank
func (car *Car) StartEngine() error {
	return car.startEngine()
}

// Refuel adds amount liters to the tank
func (car *Car) Refuel(amount int) error {
	return car.refuel(amount)
}

// Drive burns one liter per 10 km. The tank is untouched when the trip is rejected.
func (car *Car) Drive(distance int) error {
	return car.drive(distance, CarKmPerLiter)
}

// FuelRequired returns the liters a trip of distance km would consume
func (car *Car) FuelRequired(distance int) int {
	return distance / CarKmPerLiter
}
