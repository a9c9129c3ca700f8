package config

// Default returns the demonstration scenario: one car and one truck are
// started, driven and refueled, then the fleet totals are printed.
func Default() *Config {
	return &Config{
		Vehicles: []VehicleSpec{
			{Name: "car", Kind: "car", Make: "Toyota", Model: "Corolla", Fuel: 50, Passengers: 5},
			{Name: "truck", Kind: "truck", Make: "Volvo", Model: "FH", Fuel: 80, Cargo: 10000},
		},
		Steps: []Step{
			{Vehicle: "car", Action: "start"},
			{Vehicle: "car", Action: "drive", Amount: 100},
			{Vehicle: "car", Action: "refuel", Amount: 20},
			{Vehicle: "car", Action: "fuel"},
			{Vehicle: "truck", Action: "start"},
			{Vehicle: "truck", Action: "drive", Amount: 150},
			{Vehicle: "truck", Action: "refuel", Amount: 50},
			{Vehicle: "truck", Action: "fuel"},
			{Action: "totals"},
		},
	}
}
