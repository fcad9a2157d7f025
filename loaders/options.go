package loaders

import "github.com/donald-e-boyce/polycrystalx/inputs"

// Options is the loader-side view of run-time options.
type Options struct {
	Input inputs.Options
}

// NewOptions creates an options loader.
func NewOptions(in inputs.Options) *Options {
	return &Options{Input: in}
}

// elasticity and heat transfer field names, in write order.
var (
	elasticityFields = []string{"mesh", "displacement", "strain", "stress"}
	heatFields       = []string{"mesh", "temperature", "flux"}
)

// ElasticityFields returns the enabled output field names for the linear
// elasticity process.
func (o *Options) ElasticityFields() []string {
	return o.enabled(elasticityFields)
}

// HeatTransferFields returns the enabled output field names for the heat
// transfer process.
func (o *Options) HeatTransferFields() []string {
	return o.enabled(heatFields)
}

func (o *Options) enabled(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if o.flag(f) {
			out = append(out, f)
		}
	}
	return out
}

func (o *Options) flag(field string) bool {
	w := o.Input.Output
	switch field {
	case "mesh":
		return w.WriteMesh
	case "displacement":
		return w.WriteDisplacement
	case "strain":
		return w.WriteStrain
	case "stress":
		return w.WriteStress
	case "temperature":
		return w.WriteTemperature
	case "flux":
		return w.WriteFlux
	}
	return false
}
