// Package fleet describes the sequence of vehicles the demo builds and starts.
package fleet

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/patterns/pkg/vehicle"
)

//go:embed fleet.yaml
var defaultManifest []byte

// Entry is one vehicle to build.
type Entry struct {
	Region vehicle.Region `yaml:"region"`
	Kind   vehicle.Kind   `yaml:"kind"`
	Make   string         `yaml:"make"`
	Model  string         `yaml:"model"`
}

// Manifest is an ordered list of vehicles.
type Manifest struct {
	Vehicles []Entry `yaml:"vehicles"`
}

// Parse decodes a YAML manifest and normalizes region and kind names.
func Parse(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("invalid manifest: %w", err)
	}

	for i, e := range m.Vehicles {
		region, err := vehicle.ParseRegion(string(e.Region))
		if err != nil {
			return Manifest{}, fmt.Errorf("entry %d: %w", i, err)
		}
		kind, err := vehicle.ParseKind(string(e.Kind))
		if err != nil {
			return Manifest{}, fmt.Errorf("entry %d: %w", i, err)
		}
		m.Vehicles[i].Region = region
		m.Vehicles[i].Kind = kind
	}
	return m, nil
}

// Default returns the manifest shipped with the binary.
func Default() (Manifest, error) {
	return Parse(bytes.NewReader(defaultManifest))
}

// Start builds every entry through its region's factory and starts it, in order.
func (m Manifest) Start(opts ...vehicle.Option) ([]vehicle.Vehicle, error) {
	started := make([]vehicle.Vehicle, 0, len(m.Vehicles))
	factories := make(map[vehicle.Region]vehicle.Factory)

	for i, e := range m.Vehicles {
		f, ok := factories[e.Region]
		if !ok {
			var err error
			f, err = vehicle.FactoryFor(e.Region, opts...)
			if err != nil {
				return started, fmt.Errorf("entry %d: %w", i, err)
			}
			factories[e.Region] = f
		}

		v, err := vehicle.Build(f, e.Kind, e.Make, e.Model)
		if err != nil {
			return started, fmt.Errorf("entry %d: %w", i, err)
		}
		v.StartEngine()
		started = append(started, v)
	}
	return started, nil
}
