// Package messages holds the console wording for every vehicle operation.
package messages

import (
	"errors"
	"fmt"
	"sort"

	"github.com/golangdaddy/fleet/pkg/vehicle"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned by Lookup for a language without a catalog
var ErrUnknownLanguage = errors.New("unknown language")

// Catalog is the set of format strings for one language.
// Per-kind maps hold the lines whose wording names the variant.
type Catalog struct {
	Lang string

	Info              string                  // make, model
	EngineStarted     map[vehicle.Kind]string // make, model
	NoFuelToStart     string
	Refueled          map[vehicle.Kind]string // liters
	RefuelNotPositive string
	Drove             map[vehicle.Kind]string // km
	InsufficientFuel  string
	NegativeDistance  string
	NegativeFuelLevel string
	FuelLevelSet      map[vehicle.Kind]string // liters
	FuelLevel         map[vehicle.Kind]string // liters
	Total             map[vehicle.Kind]string // count
	FuelOverflow      string
	SummaryHeader     []string

	// Window chrome
	KindName     map[vehicle.Kind]string
	WindowTitle  string
	WindowRow    string // name, make, model, kind name, liters
	WindowTotals string // cars, trucks
	WindowEmpty  string
	WindowHelp   string
}

var catalogs = map[string]*Catalog{
	"en": {
		Lang:              "en",
		Info:              "Make: %s, Model: %s",
		EngineStarted:     byKind("Engine of the car %s %s started.", "Engine of the truck %s %s started."),
		NoFuelToStart:     "No fuel to start the engine.",
		Refueled:          byKind("Car refueled with %d liters.", "Truck refueled with %d liters."),
		RefuelNotPositive: "Fuel amount must be positive.",
		Drove:             byKind("Car drove %d km.", "Truck drove %d km."),
		InsufficientFuel:  "Not enough fuel for the trip.",
		NegativeDistance:  "Distance cannot be negative.",
		NegativeFuelLevel: "Fuel level cannot be negative.",
		FuelLevelSet:      byKind("Car fuel level set to %d.", "Truck fuel level set to %d."),
		FuelLevel:         byKind("Car fuel level: %d", "Truck fuel level: %d"),
		Total:             byKind("Total cars: %d", "Total trucks: %d"),
		FuelOverflow:      "Fuel level would overflow.",
		SummaryHeader:     []string{"Name", "Kind", "Make", "Model", "Fuel (L)", "Passengers", "Cargo (kg)"},
		KindName:          byKind("car", "truck"),
		WindowTitle:       "FLEET",
		WindowRow:         "%s: %s %s (%s) - Fuel: %d L",
		WindowTotals:      "Cars: %d  Trucks: %d",
		WindowEmpty:       "Garage is empty",
		WindowHelp:        "Arrows: Select | S: Start | D: Drive | R: Refuel | Esc: Quit",
	},
	"ru": {
		Lang:              "ru",
		Info:              "Марка: %s, Модель: %s",
		EngineStarted:     byKind("Двигатель автомобиля %s %s заведен.", "Двигатель грузовика %s %s заведен."),
		NoFuelToStart:     "Нет топлива для запуска двигателя.",
		Refueled:          byKind("Легковой автомобиль заправлен на %d литров.", "Грузовик заправлен на %d литров."),
		RefuelNotPositive: "Количество топлива должно быть положительным.",
		Drove:             byKind("Легковой автомобиль проехал %d км.", "Грузовик проехал %d км."),
		InsufficientFuel:  "Недостаточно топлива для поездки.",
		NegativeDistance:  "Расстояние не может быть отрицательным.",
		NegativeFuelLevel: "Уровень топлива не может быть отрицательным.",
		FuelLevelSet:      byKind("Уровень топлива в легковом автомобиле установлен: %d.", "Уровень топлива в грузовике установлен: %d."),
		FuelLevel:         byKind("Уровень топлива в легковом автомобиле: %d", "Уровень топлива в грузовике: %d"),
		Total:             byKind("Всего легковых автомобилей: %d", "Всего грузовиков: %d"),
		FuelOverflow:      "Уровень топлива слишком велик.",
		SummaryHeader:     []string{"Имя", "Тип", "Марка", "Модель", "Топливо (л)", "Пассажиры", "Груз (кг)"},
		KindName:          byKind("легковой", "грузовик"),
		WindowTitle:       "АВТОПАРК",
		WindowRow:         "%s: %s %s (%s) - Топливо: %d л",
		WindowTotals:      "Легковых: %d  Грузовиков: %d",
		WindowEmpty:       "Гараж пуст",
		WindowHelp:        "Стрелки: Выбор | S: Запуск | D: Ехать | R: Заправка | Esc: Выход",
	},
}

func byKind(car, truck string) map[vehicle.Kind]string {
	return map[vehicle.Kind]string{
		vehicle.KindCar:   car,
		vehicle.KindTruck: truck,
	}
}

// Lookup returns the catalog for lang. An empty lang selects DefaultLanguage.
func Lookup(lang string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	c, ok := catalogs[lang]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownLanguage, lang, Languages())
	}
	return c, nil
}

// Languages lists the available catalogs in sorted order
func Languages() []string {
	langs := make([]string, 0, len(catalogs))
	for l := range catalogs {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Rejection maps a vehicle error onto its message.
// The second result is false for errors that have no wording.
func (c *Catalog) Rejection(err error) (string, bool) {
	switch {
	case errors.Is(err, vehicle.ErrNoFuel):
		return c.NoFuelToStart, true
	case errors.Is(err, vehicle.ErrInvalidRefuelAmount):
		return c.RefuelNotPositive, true
	case errors.Is(err, vehicle.ErrFuelOverflow):
		return c.FuelOverflow, true
	case errors.Is(err, vehicle.ErrInsufficientFuel):
		return c.InsufficientFuel, true
	case errors.Is(err, vehicle.ErrInvalidDistance):
		return c.NegativeDistance, true
	case errors.Is(err, vehicle.ErrInvalidFuelLevel):
		return c.NegativeFuelLevel, true
	}
	return "", false
}
