// Package physconst holds the physical constants and unit-conversion
// factors consumed by the gravity engine and its orchestrator.
package physconst

// Fundamental constants (SI units).
const (
	// G is the Newtonian gravitational constant, m^3 kg^-1 s^-2.
	G = 0.00000000006673

	// MeanEarthRadius is the mean radius of a spherical Earth, in metres.
	MeanEarthRadius = 6378137.0
)

// Unit-conversion factors applied by the orchestrator when scaling raw
// SI output into the field's conventional unit.
const (
	// SI2MGal converts m*s^-2 to mGal.
	SI2MGal = 100000.0

	// SI2Eotvos converts s^-2 to Eötvös.
	SI2Eotvos = 1000000000.0
)
