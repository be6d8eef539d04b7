// Package core holds observation geometry and small numeric helpers shared
// by the spectrometer, the signal generators and the simulation CLI.
package core
