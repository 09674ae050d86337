// Package vehicle shows specialization through embedding and shared
// behavior through interfaces.
package vehicle

import "fmt"

// Describer is anything that can describe itself in one sentence.
type Describer interface {
	Describe() string
}

// Car is the base record.
type Car struct {
	Brand string
	Model string
}

// Describe implements Describer.
func (c Car) Describe() string {
	return fmt.Sprintf("This is a %s %s.", c.Brand, c.Model)
}

// ElectricCar embeds Car and replaces its description. The embedded Car is
// still reachable through the promoted fields and through c.Car.Describe.
type ElectricCar struct {
	Car
	BatteryKWh int
}

// NewElectricCar builds an ElectricCar from the base attributes plus battery
// capacity.
func NewElectricCar(brand, model string, batteryKWh int) ElectricCar {
	return ElectricCar{Car: Car{Brand: brand, Model: model}, BatteryKWh: batteryKWh}
}

// Describe implements Describer.
func (c ElectricCar) Describe() string {
	return fmt.Sprintf("This is a %s %s with a battery capacity of %d kWh.", c.Brand, c.Model, c.BatteryKWh)
}

// Vehicle is the start/stop capability.
type Vehicle interface {
	Start() string
	Stop() string
}

// Bike implements Vehicle.
type Bike struct{}

func (Bike) Start() string { return "Bike started." }
func (Bike) Stop() string  { return "Bike stopped." }

// Scooter implements Vehicle and remembers whether it is running.
type Scooter struct {
	running bool
}

func (s *Scooter) Start() string {
	if s.running {
		return "Scooter is already running."
	}
	s.running = true
	return "Scooter started."
}

func (s *Scooter) Stop() string {
	if !s.running {
		return "Scooter is already stopped."
	}
	s.running = false
	return "Scooter stopped."
}

// Running reports whether Start was called more recently than Stop.
func (s *Scooter) Running() bool { return s.running }

// Ride starts and stops v, returning both messages in order.
func Ride(v Vehicle) []string {
	return []string{v.Start(), v.Stop()}
}
