package vehicle

import "sync/atomic"

// Factory constructs vehicles and keeps a running count per variant.
// Counters only ever go up and are safe for concurrent construction.
type Factory struct {
	totalCars   atomic.Int64
	totalTrucks atomic.Int64
}

// NewFactory creates a factory with both counters at zero
func NewFactory() *Factory {
	return &Factory{}
}

// NewCar builds a car. A negative fuel level is rejected and not counted.
func (f *Factory) NewCar(make, model string, fuelLevel, passengerCount int) (*Car, error) {
	b, err := newBase(make, model, fuelLevel)
	if err != nil {
		return nil, err
	}
	f.totalCars.Add(1)
	return &Car{base: b, passengerCount: passengerCount}, nil
}

// NewTruck builds a truck. A negative fuel level is rejected and not counted.
func (f *Factory) NewTruck(make, model string, fuelLevel, cargoWeight int) (*Truck, error) {
	b, err := newBase(make, model, fuelLevel)
	if err != nil {
		return nil, err
	}
	f.totalTrucks.Add(1)
	return &Truck{base: b, cargoWeight: cargoWeight}, nil
}

// TotalCars returns how many cars this factory has built
func (f *Factory) TotalCars() int {
	return int(f.totalCars.Load())
}

// TotalTrucks returns how many trucks this factory has built
func (f *Factory) TotalTrucks() int {
	return int(f.totalTrucks.Load())
}

// Total returns how many vehicles of kind k this factory has built
func (f *Factory) Total(k Kind) int {
	switch k {
	case KindCar:
		return f.TotalCars()
	case KindTruck:
		return f.TotalTrucks()
	}
	return 0
}
