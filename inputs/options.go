package inputs

// Output is the set of output field switches. Every field is toggled
// independently and defaults to enabled.
type Output struct {
	WriteMesh         bool
	WriteDisplacement bool
	WriteStrain       bool
	WriteStress       bool
	WriteTemperature  bool
	WriteFlux         bool
}

// DefaultOutput returns output options with every field enabled.
func DefaultOutput() Output {
	return Output{
		WriteMesh:         true,
		WriteDisplacement: true,
		WriteStrain:       true,
		WriteStress:       true,
		WriteTemperature:  true,
		WriteFlux:         true,
	}
}

// Options holds run-time options.
type Options struct {
	Output Output
}

// DefaultOptions returns options with all defaults applied.
func DefaultOptions() Options {
	return Options{Output: DefaultOutput()}
}
