package vehicle_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/patterns/pkg/vehicle"
)

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestFactories_TagRegion(t *testing.T) {
	logger, _ := newLogger()
	factories := map[vehicle.Region]vehicle.Factory{
		vehicle.RegionUS: vehicle.NewUSFactory(vehicle.WithLogger(logger)),
		vehicle.RegionEU: vehicle.NewEUFactory(vehicle.WithLogger(logger)),
	}

	for region, f := range factories {
		t.Run(region.String(), func(t *testing.T) {
			assert.Equal(t, region, f.Region())

			car := f.CreateCar("Make", "Model")
			assert.Equal(t, region, car.Region())
			assert.Equal(t, vehicle.KindCar, car.Kind())

			moto := f.CreateMotorcycle("Make", "Model")
			assert.Equal(t, region, moto.Region())
			assert.Equal(t, vehicle.KindMotorcycle, moto.Kind())
		})
	}
}

func TestStartEngine_Car(t *testing.T) {
	logger, buf := newLogger()
	car := vehicle.NewUSFactory(vehicle.WithLogger(logger)).CreateCar("Chevrolet", "Camaro")

	car.StartEngine()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "expected exactly one record")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "Chevrolet Camaro (US Spec): Engine started")
	assert.Contains(t, out, "region=US")
	assert.Contains(t, out, "kind=car")
}

func TestStartEngine_Motorcycle(t *testing.T) {
	logger, buf := newLogger()
	moto := vehicle.NewEUFactory(vehicle.WithLogger(logger)).CreateMotorcycle("Ducati", "Panigale V4")

	moto.StartEngine()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "Ducati Panigale V4 (EU Spec): Motor started")
	assert.Contains(t, out, "kind=motorcycle")
}

func TestStartEngine_DoesNotMutate(t *testing.T) {
	logger, buf := newLogger()
	car := vehicle.NewEUFactory(vehicle.WithLogger(logger)).CreateCar("Fiat", "500")

	car.StartEngine()
	car.StartEngine()

	assert.Equal(t, "Fiat", car.Make())
	assert.Equal(t, "500", car.Model())
	assert.Equal(t, vehicle.RegionEU, car.Region())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0][strings.Index(lines[0], "level="):], lines[1][strings.Index(lines[1], "level="):])
}

func TestFactory_AcceptsAnyText(t *testing.T) {
	logger, buf := newLogger()
	car := vehicle.NewUSFactory(vehicle.WithLogger(logger)).CreateCar("", "")

	car.StartEngine()
	assert.Contains(t, buf.String(), " (US Spec): Engine started")
}

func TestFactoryFor(t *testing.T) {
	f, err := vehicle.FactoryFor(vehicle.RegionEU)
	require.NoError(t, err)
	assert.IsType(t, &vehicle.EUFactory{}, f)

	f, err = vehicle.FactoryFor(vehicle.RegionUS)
	require.NoError(t, err)
	assert.IsType(t, &vehicle.USFactory{}, f)

	_, err = vehicle.FactoryFor(vehicle.Region("JP"))
	assert.ErrorIs(t, err, vehicle.ErrUnknownRegion)
}

func TestBuild(t *testing.T) {
	f := vehicle.NewUSFactory()

	v, err := vehicle.Build(f, vehicle.KindMotorcycle, "Harley-Davidson", "Sportster")
	require.NoError(t, err)
	assert.IsType(t, &vehicle.Motorcycle{}, v)
	assert.Equal(t, "Harley-Davidson", v.Make())

	_, err = vehicle.Build(f, vehicle.Kind("truck"), "Ford", "F-150")
	assert.ErrorIs(t, err, vehicle.ErrUnknownKind)
}

func TestParseRegionAndKind(t *testing.T) {
	r, err := vehicle.ParseRegion(" eu ")
	require.NoError(t, err)
	assert.Equal(t, vehicle.RegionEU, r)

	_, err = vehicle.ParseRegion("mars")
	assert.ErrorIs(t, err, vehicle.ErrUnknownRegion)

	k, err := vehicle.ParseKind("Car")
	require.NoError(t, err)
	assert.Equal(t, vehicle.KindCar, k)

	_, err = vehicle.ParseKind("boat")
	assert.ErrorIs(t, err, vehicle.ErrUnknownKind)
}

func TestStartEngine_ZeroValueUsesDefaultLogger(t *testing.T) {
	logger, buf := newLogger()
	prev := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(prev) })

	assert.NotPanics(t, func() {
		(&vehicle.Car{}).StartEngine()
		(&vehicle.Motorcycle{}).StartEngine()
	})
	assert.Contains(t, buf.String(), "Engine started")
	assert.Contains(t, buf.String(), "Motor started")
}
