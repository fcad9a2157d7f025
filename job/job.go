// Package job loads declarative job files: a TOML description of a problem's
// boundary conditions, volumetric sources, and output options, translated
// into the records the loaders consume. Only constant-valued specifications
// are expressible in a file; anything richer is constructed programmatically.
package job

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/donald-e-boyce/polycrystalx/inputs"
)

// Process names accepted in a job file.
const (
	ProcessLinearElasticity = "linear_elasticity"
	ProcessHeatTransfer     = "heat_transfer"
)

// fileBC mirrors a boundary condition entry. Component is a pointer so an
// absent component stays distinguishable from component 0.
type fileBC struct {
	Section   string    `toml:"section"`
	Component *int      `toml:"component"`
	Value     []float64 `toml:"value"`
}

// fileFunction mirrors a constant volumetric source spec.
type fileFunction struct {
	Name  string    `toml:"name"`
	Value []float64 `toml:"value"`
}

// fileOutput mirrors the output switches; pointers keep unset flags at their
// default (enabled).
type fileOutput struct {
	WriteMesh         *bool `toml:"write_mesh"`
	WriteDisplacement *bool `toml:"write_displacement"`
	WriteStrain       *bool `toml:"write_strain"`
	WriteStress       *bool `toml:"write_stress"`
	WriteTemperature  *bool `toml:"write_temperature"`
	WriteFlux         *bool `toml:"write_flux"`
}

type fileJob struct {
	Name         string        `toml:"name"`
	Process      string        `toml:"process"`
	Displacement []fileBC      `toml:"displacement"`
	Traction     []fileBC      `toml:"traction"`
	Temperature  []fileBC      `toml:"temperature"`
	Flux         []fileBC      `toml:"flux"`
	ForceDensity *fileFunction `toml:"force_density"`
	BodyHeat     *fileFunction `toml:"body_heat"`
	Output       fileOutput    `toml:"output"`
}

// Job is a loaded and validated job file.
type Job struct {
	Name    string
	Process string

	// Exactly one of these is set, matching Process.
	Elasticity *inputs.LinearElasticity
	Heat       *inputs.HeatTransfer

	Options inputs.Options
}

// Load reads and parses a TOML job file.
func Load(path string) (*Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse parses TOML job data.
func Parse(b []byte) (*Job, error) {
	var fj fileJob
	if err := toml.Unmarshal(b, &fj); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	j := &Job{Name: fj.Name, Process: fj.Process}
	switch fj.Process {
	case ProcessLinearElasticity:
		if len(fj.Temperature) > 0 || len(fj.Flux) > 0 || fj.BodyHeat != nil {
			return nil, fmt.Errorf("job %q: heat transfer entries in a linear elasticity job", fj.Name)
		}
		dbcs, err := convertBCs("displacement", fj.Displacement)
		if err != nil {
			return nil, err
		}
		tbcs, err := convertBCs("traction", fj.Traction)
		if err != nil {
			return nil, err
		}
		j.Elasticity = &inputs.LinearElasticity{
			Name:            fj.Name,
			ForceDensity:    convertFunction(fj.ForceDensity),
			DisplacementBCs: dbcs,
			TractionBCs:     tbcs,
		}
	case ProcessHeatTransfer:
		if len(fj.Displacement) > 0 || len(fj.Traction) > 0 || fj.ForceDensity != nil {
			return nil, fmt.Errorf("job %q: elasticity entries in a heat transfer job", fj.Name)
		}
		tbcs, err := convertBCs("temperature", fj.Temperature)
		if err != nil {
			return nil, err
		}
		fbcs, err := convertBCs("flux", fj.Flux)
		if err != nil {
			return nil, err
		}
		j.Heat = &inputs.HeatTransfer{
			Name:           fj.Name,
			BodyHeat:       convertFunction(fj.BodyHeat),
			TemperatureBCs: tbcs,
			FluxBCs:        fbcs,
		}
	case "":
		return nil, fmt.Errorf("job %q: missing process", fj.Name)
	default:
		return nil, fmt.Errorf("job %q: unknown process %q", fj.Name, fj.Process)
	}

	j.Options = inputs.Options{Output: applyOutput(fj.Output)}
	return j, nil
}

func convertBCs(kind string, list []fileBC) ([]inputs.BoundaryCondition, error) {
	out := make([]inputs.BoundaryCondition, 0, len(list))
	for i, bc := range list {
		if bc.Section == "" {
			return nil, fmt.Errorf("%s entry %d: missing section", kind, i+1)
		}
		if len(bc.Value) == 0 {
			return nil, fmt.Errorf("%s on %q: missing value", kind, bc.Section)
		}
		if bc.Component != nil {
			if *bc.Component < 0 {
				return nil, fmt.Errorf("%s on %q: negative component %d", kind, bc.Section, *bc.Component)
			}
			if len(bc.Value) != 1 {
				return nil, fmt.Errorf("%s on %q: component-restricted value must be scalar, got %d values",
					kind, bc.Section, len(bc.Value))
			}
		}
		out = append(out, inputs.BoundaryCondition{
			Section:   bc.Section,
			Value:     inputs.Constant(bc.Value...),
			Component: bc.Component,
		})
	}
	return out, nil
}

func convertFunction(f *fileFunction) *inputs.Function {
	if f == nil {
		return nil
	}
	return &inputs.Function{Name: f.Name, Eval: inputs.Constant(f.Value...)}
}

func applyOutput(fo fileOutput) inputs.Output {
	out := inputs.DefaultOutput()
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.WriteMesh, fo.WriteMesh)
	set(&out.WriteDisplacement, fo.WriteDisplacement)
	set(&out.WriteStrain, fo.WriteStrain)
	set(&out.WriteStress, fo.WriteStress)
	set(&out.WriteTemperature, fo.WriteTemperature)
	set(&out.WriteFlux, fo.WriteFlux)
	return out
}
