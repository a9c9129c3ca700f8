package fleet

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/golangdaddy/fleet/pkg/vehicle"
)

func TestGarageBuildsAndCounts(t *testing.T) {
	g := NewGarage(0)
	if _, err := g.NewCar("car", "Toyota", "Corolla", 50, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := g.NewTruck("truck", "Volvo", "FH", 80, 10000); err != nil {
		t.Fatal(err)
	}
	if g.TotalCars() != 1 || g.TotalTrucks() != 1 {
		t.Fatalf("expected 1 car and 1 truck; got %d/%d", g.TotalCars(), g.TotalTrucks())
	}
	if g.Count() != 2 {
		t.Fatalf("Count() = %d", g.Count())
	}

	v, err := g.Get("truck")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != vehicle.KindTruck || v.FuelLevel() != 80 {
		t.Fatalf("Get(truck) returned %s with fuel %d", v.Kind(), v.FuelLevel())
	}

	entries := g.Entries()
	if len(entries) != 2 || entries[0].Name != "car" || entries[1].Name != "truck" {
		t.Fatalf("Entries() not in insertion order: %+v", entries)
	}
}

func TestGarageRejections(t *testing.T) {
	tests := []struct {
		name    string
		add     func(g *Garage) error
		wantErr error
	}{
		{"Test empty name", func(g *Garage) error {
			_, err := g.NewCar("", "Toyota", "Corolla", 1, 1)
			return err
		}, ErrEmptyName},
		{"Test duplicate name", func(g *Garage) error {
			_, err := g.NewTruck("first", "Volvo", "FH", 1, 1)
			return err
		}, ErrDuplicateName},
		{"Test capacity", func(g *Garage) error {
			_, err := g.NewTruck("third", "Volvo", "FH", 1, 1)
			return err
		}, ErrGarageFull},
		{"Test negative fuel", func(g *Garage) error {
			_, err := g.NewCar("other", "Toyota", "Corolla", -1, 1)
			return err
		}, vehicle.ErrInvalidFuelLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGarage(2)
			g.NewCar("first", "Toyota", "Corolla", 1, 1)
			if tt.wantErr == ErrGarageFull {
				g.NewCar("second", "Honda", "Civic", 1, 1)
			}
			cars, trucks := g.TotalCars(), g.TotalTrucks()

			if err := tt.add(g); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if g.TotalCars() != cars || g.TotalTrucks() != trucks {
				t.Fatalf("rejected add changed totals to %d/%d", g.TotalCars(), g.TotalTrucks())
			}
		})
	}
}

func TestGarageGetUnknown(t *testing.T) {
	if _, err := NewGarage(0).Get("ghost"); !errors.Is(err, ErrUnknownVehicle) {
		t.Fatalf("got %v, want %v", err, ErrUnknownVehicle)
	}
}

func TestGarageFindByMakeModel(t *testing.T) {
	g := NewGarage(0)
	g.NewCar("car", "Toyota", "Corolla", 50, 5)
	g.NewTruck("truck", "Volvo", "FH", 80, 10000)

	v, name := g.FindByMakeModel("Volvo", "FH")
	if v == nil || name != "truck" {
		t.Fatalf("FindByMakeModel(Volvo, FH) = %v, %q", v, name)
	}
	if v, name := g.FindByMakeModel("Volvo", "FM"); v != nil || name != "" {
		t.Fatalf("expected no match; got %v, %q", v, name)
	}
}

func TestGarageString(t *testing.T) {
	g := NewGarage(3)
	g.NewCar("car", "Toyota", "Corolla", 50, 5)
	if got, want := g.String(), "Garage: 1/3 vehicles, Cars: 1, Trucks: 0"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if g.IsFull() {
		t.Fatalf("garage with 1/3 reported full")
	}
	if got, want := NewGarage(0).String(), "Garage: 0 vehicles, Cars: 0, Trucks: 0"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestGarageConcurrentAdds(t *testing.T) {
	const n = 200
	g := NewGarage(0)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				g.NewCar(fmt.Sprintf("car-%d", i), "Toyota", "Corolla", 10, 4)
			} else {
				g.NewTruck(fmt.Sprintf("truck-%d", i), "Volvo", "FH", 10, 100)
			}
		}(i)
	}
	wg.Wait()
	if g.Count() != n || g.TotalCars() != n/2 || g.TotalTrucks() != n/2 {
		t.Fatalf("count=%d cars=%d trucks=%d", g.Count(), g.TotalCars(), g.TotalTrucks())
	}
}
