package fleet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/golangdaddy/fleet/pkg/messages"
	"github.com/golangdaddy/fleet/pkg/vehicle"
)

func newTestConsole(t *testing.T, lang string) (*Console, *bytes.Buffer) {
	t.Helper()
	catalog, err := messages.Lookup(lang)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	return NewConsole(&buf, catalog), &buf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestConsoleDemoSequence(t *testing.T) {
	con, buf := newTestConsole(t, "en")
	g := NewGarage(0)
	car, _ := g.NewCar("car", "Toyota", "Corolla", 50, 5)
	truck, _ := g.NewTruck("truck", "Volvo", "FH", 80, 10000)

	for _, err := range []error{
		con.StartEngine(car), con.Drive(car, 100), con.Refuel(car, 20),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	con.PrintFuelLevel(car)
	for _, err := range []error{
		con.StartEngine(truck), con.Drive(truck, 150), con.Refuel(truck, 50),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	con.PrintFuelLevel(truck)
	con.PrintTotals(g)

	want := []string{
		"Engine of the car Toyota Corolla started.",
		"Car drove 100 km.",
		"Car refueled with 20 liters.",
		"Car fuel level: 60",
		"Engine of the truck Volvo FH started.",
		"Truck drove 150 km.",
		"Truck refueled with 50 liters.",
		"Truck fuel level: 100",
		"Total cars: 1",
		"Total trucks: 1",
	}
	got := lines(buf)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if car.FuelLevel() != 60 || truck.FuelLevel() != 100 {
		t.Fatalf("fuel levels %d/%d, want 60/100", car.FuelLevel(), truck.FuelLevel())
	}
}

func TestConsoleRejections(t *testing.T) {
	con, buf := newTestConsole(t, "en")
	g := NewGarage(0)
	car, _ := g.NewCar("car", "Toyota", "Corolla", 5, 5)

	if err := con.Drive(car, 100); !errors.Is(err, vehicle.ErrInsufficientFuel) {
		t.Fatalf("Drive: got %v", err)
	}
	if err := con.Refuel(car, 0); !errors.Is(err, vehicle.ErrInvalidRefuelAmount) {
		t.Fatalf("Refuel: got %v", err)
	}
	if err := con.SetFuelLevel(car, -1); !errors.Is(err, vehicle.ErrInvalidFuelLevel) {
		t.Fatalf("SetFuelLevel: got %v", err)
	}
	if err := con.SetFuelLevel(car, 0); err != nil {
		t.Fatalf("SetFuelLevel(0): %v", err)
	}
	if err := con.StartEngine(car); !errors.Is(err, vehicle.ErrNoFuel) {
		t.Fatalf("StartEngine: got %v", err)
	}

	want := []string{
		"Not enough fuel for the trip.",
		"Fuel amount must be positive.",
		"Fuel level cannot be negative.",
		"Car fuel level set to 0.",
		"No fuel to start the engine.",
	}
	if got := lines(buf); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestConsoleRussian(t *testing.T) {
	con, buf := newTestConsole(t, "ru")
	g := NewGarage(0)
	truck, _ := g.NewTruck("truck", "Volvo", "FH", 80, 10000)
	con.PrintInfo(truck)
	con.Drive(truck, 150)
	con.PrintTotals(g)

	want := []string{
		"Марка: Volvo, Модель: FH",
		"Грузовик проехал 150 км.",
		"Всего легковых автомобилей: 0",
		"Всего грузовиков: 1",
	}
	if got := lines(buf); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestConsoleSummary(t *testing.T) {
	con, buf := newTestConsole(t, "en")
	g := NewGarage(0)
	g.NewCar("car", "Toyota", "Corolla", 50, 5)
	g.NewTruck("truck", "Volvo", "FH", 80, 10000)
	con.PrintSummary(g)

	out := buf.String()
	for _, want := range []string{"Name", "Passengers", "Corolla", "Volvo", "10000", "80"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in summary:\n%s", want, out)
		}
	}
	if n := len(lines(buf)); n < 4 {
		t.Fatalf("expected header, separator and two rows; got %d lines:\n%s", n, out)
	}
}
