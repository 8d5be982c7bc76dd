// Package vehicle builds region-specific vehicle families.
//
// A Factory fixes the region; every Car and Motorcycle it produces carries that
// region for the rest of its life. Choosing the factory chooses the family:
//
//	f := vehicle.NewUSFactory(vehicle.WithLogger(logger))
//	f.CreateCar("Chevrolet", "Camaro").StartEngine()
//	// Chevrolet Camaro (US Spec): Engine started
package vehicle
