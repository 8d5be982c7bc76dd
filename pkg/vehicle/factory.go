package vehicle

import (
	"fmt"
	"log/slog"
)

// Factory produces a region-tagged family of vehicles.
type Factory interface {
	CreateCar(make, model string) *Car
	CreateMotorcycle(make, model string) *Motorcycle
	Region() Region
}

// Option configures a Factory.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() *options {
	return &options{
		logger: nil, // resolved to slog.Default() at construction
	}
}

// WithLogger sets the logger the produced vehicles report through.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// regionFactory holds what every concrete factory shares.
type regionFactory struct {
	region Region
	logger *slog.Logger
}

func newRegionFactory(region Region, opts []Option) regionFactory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	return regionFactory{region: region, logger: logger}
}

func (f regionFactory) Region() Region { return f.region }

func (f regionFactory) spec(make, model string) spec {
	return spec{make: make, model: model, region: f.region, logger: f.logger}
}

func (f regionFactory) CreateCar(make, model string) *Car {
	return &Car{spec: f.spec(make, model)}
}

func (f regionFactory) CreateMotorcycle(make, model string) *Motorcycle {
	return &Motorcycle{spec: f.spec(make, model)}
}

// USFactory builds US-spec vehicles.
type USFactory struct {
	regionFactory
}

// NewUSFactory creates a factory for the US market.
func NewUSFactory(opts ...Option) *USFactory {
	return &USFactory{regionFactory: newRegionFactory(RegionUS, opts)}
}

// EUFactory builds EU-spec vehicles.
type EUFactory struct {
	regionFactory
}

// NewEUFactory creates a factory for the EU market.
func NewEUFactory(opts ...Option) *EUFactory {
	return &EUFactory{regionFactory: newRegionFactory(RegionEU, opts)}
}

var (
	_ Factory = (*USFactory)(nil)
	_ Factory = (*EUFactory)(nil)
)

// FactoryFor returns the factory that serves region.
func FactoryFor(region Region, opts ...Option) (Factory, error) {
	switch region {
	case RegionUS:
		return NewUSFactory(opts...), nil
	case RegionEU:
		return NewEUFactory(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, string(region))
	}
}

// Build asks f for the family member named by kind.
func Build(f Factory, kind Kind, make, model string) (Vehicle, error) {
	switch kind {
	case KindCar:
		return f.CreateCar(make, model), nil
	case KindMotorcycle:
		return f.CreateMotorcycle(make, model), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
