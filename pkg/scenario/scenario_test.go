package scenario

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/golangdaddy/fleet/pkg/config"
	"github.com/golangdaddy/fleet/pkg/fleet"
	"github.com/golangdaddy/fleet/pkg/messages"
)

func run(t *testing.T, c *config.Config, lang string) (string, Report, *fleet.Garage, error) {
	t.Helper()
	catalog, err := messages.Lookup(lang)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	g := fleet.NewGarage(0)
	report, err := Run(c, g, fleet.NewConsole(&buf, catalog))
	return buf.String(), report, g, err
}

func TestRunDefault(t *testing.T) {
	out, report, g, err := run(t, config.Default(), "en")
	if err != nil {
		t.Fatal(err)
	}
	want := `Engine of the car Toyota Corolla started.
Car drove 100 km.
Car refueled with 20 liters.
Car fuel level: 60
Engine of the truck Volvo FH started.
Truck drove 150 km.
Truck refueled with 50 liters.
Truck fuel level: 100
Total cars: 1
Total trucks: 1
`
	if out != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if report.Executed != 9 || report.Rejected != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
	if g.TotalCars() != 1 || g.TotalTrucks() != 1 {
		t.Fatalf("totals %d/%d", g.TotalCars(), g.TotalTrucks())
	}
}

func TestRunDefaultRussian(t *testing.T) {
	out, _, _, err := run(t, config.Default(), "ru")
	if err != nil {
		t.Fatal(err)
	}
	want := `Двигатель автомобиля Toyota Corolla заведен.
Легковой автомобиль проехал 100 км.
Легковой автомобиль заправлен на 20 литров.
Уровень топлива в легковом автомобиле: 60
Двигатель грузовика Volvo FH заведен.
Грузовик проехал 150 км.
Грузовик заправлен на 50 литров.
Уровень топлива в грузовике: 100
Всего легковых автомобилей: 1
Всего грузовиков: 1
`
	if out != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunSoftRejections(t *testing.T) {
	c := &config.Config{
		Vehicles: []config.VehicleSpec{
			{Name: "low", Kind: "car", Make: "Toyota", Model: "Corolla", Fuel: 5, Passengers: 5},
		},
		Steps: []config.Step{
			{Vehicle: "low", Action: "drive", Amount: 100},
			{Vehicle: "low", Action: "refuel", Amount: 0},
			{Vehicle: "low", Action: "set-fuel", Amount: -3},
			{Vehicle: "low", Action: "fuel"},
			{Vehicle: "low", Action: "info"},
		},
	}
	out, report, g, err := run(t, c, "en")
	if err != nil {
		t.Fatal(err)
	}
	if report.Executed != 5 || report.Rejected != 3 {
		t.Fatalf("unexpected report %+v", report)
	}
	v, _ := g.Get("low")
	if v.FuelLevel() != 5 {
		t.Fatalf("rejected steps changed fuel to %d", v.FuelLevel())
	}
	if !strings.HasSuffix(out, "Car fuel level: 5\nMake: Toyota, Model: Corolla\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunHardErrors(t *testing.T) {
	base := []config.VehicleSpec{{Name: "car", Kind: "car", Make: "Toyota", Model: "Corolla", Fuel: 5}}
	tests := []struct {
		name     string
		vehicles []config.VehicleSpec
		steps    []config.Step
		wantErr  error
	}{
		{"Test unknown kind", []config.VehicleSpec{{Name: "bus", Kind: "bus"}}, nil, ErrUnknownKind},
		{"Test duplicate vehicle", append(base, base...), nil, fleet.ErrDuplicateName},
		{"Test unknown vehicle", base, []config.Step{{Vehicle: "ghost", Action: "start"}}, fleet.ErrUnknownVehicle},
		{"Test unknown action", base, []config.Step{{Vehicle: "car", Action: "fly"}}, ErrUnknownAction},
		{"Test unknown action without vehicle", base, []config.Step{{Action: "fly"}}, ErrUnknownAction},
		{"Test missing vehicle", base, []config.Step{{Action: "drive", Amount: 10}}, ErrNoVehicle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := run(t, &config.Config{Vehicles: tt.vehicles, Steps: tt.steps}, "en")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunRefuelOverflowIsRejected(t *testing.T) {
	data := []byte(`
vehicles:
  - name: full
    kind: truck
    make: Volvo
    model: FH
    fuel: 9223372036854775807
steps:
  - vehicle: full
    action: refuel
    amount: 1
  - vehicle: full
    action: fuel
`)
	c, err := config.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	out, report, g, err := run(t, c, "en")
	if err != nil {
		t.Fatal(err)
	}
	if report.Rejected != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	v, _ := g.Get("full")
	if v.FuelLevel() != math.MaxInt {
		t.Fatalf("fuel level changed to %d", v.FuelLevel())
	}
	if !strings.HasPrefix(out, "Fuel level would overflow.\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
