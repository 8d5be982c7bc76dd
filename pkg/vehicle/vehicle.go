package vehicle

import (
	"fmt"
	"log/slog"
)

// Vehicle is anything a Factory can produce.
type Vehicle interface {
	Make() string
	Model() string
	Region() Region
	Kind() Kind

	// StartEngine emits exactly one log record and changes nothing.
	StartEngine()
}

// spec is the immutable part shared by every vehicle.
type spec struct {
	make   string
	model  string
	region Region
	logger *slog.Logger
}

func (s spec) Make() string   { return s.make }
func (s spec) Model() string  { return s.model }
func (s spec) Region() Region { return s.region }

func (s spec) start(kind Kind, phrase string) {
	logger := s.logger
	if logger == nil {
		// Zero-value vehicles built outside a Factory.
		logger = slog.Default()
	}
	logger.Info(
		fmt.Sprintf("%s %s (%s Spec): %s", s.make, s.model, s.region, phrase),
		"make", s.make,
		"model", s.model,
		"region", s.region.String(),
		"kind", string(kind),
	)
}

// Car is a four-wheeled member of a family.
type Car struct {
	spec
}

func (c *Car) Kind() Kind { return KindCar }

// StartEngine logs the car's engine start.
func (c *Car) StartEngine() {
	c.start(KindCar, "Engine started")
}

// Motorcycle is a two-wheeled member of a family.
type Motorcycle struct {
	spec
}

func (m *Motorcycle) Kind() Kind { return KindMotorcycle }

// StartEngine logs the motorcycle's motor start.
func (m *Motorcycle) StartEngine() {
	m.start(KindMotorcycle, "Motor started")
}

var (
	_ Vehicle = (*Car)(nil)
	_ Vehicle = (*Motorcycle)(nil)
)
