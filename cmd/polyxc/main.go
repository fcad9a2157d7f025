package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/donald-e-boyce/polycrystalx/job"
	"github.com/donald-e-boyce/polycrystalx/loaders"
)

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:   "polyxc",
		Short: "Inspect and validate polycrystal job files",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	check := &cobra.Command{
		Use:   "check <job.toml>",
		Short: "Statically validate a job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			cmd.Flags().Visit(func(f *pflag.Flag) {
				log.Debug().Str("flag", f.Name).Str("value", f.Value.String()).Msg("flag set")
			})

			j, err := job.Load(args[0])
			if err != nil {
				return fmt.Errorf("load job: %w", err)
			}

			switch {
			case j.Elasticity != nil:
				ld := loaders.NewLinearElasticity(*j.Elasticity)
				if err := ld.Validate(); err != nil {
					return err
				}
				log.Info().
					Str("job", j.Name).
					Str("process", j.Process).
					Int("displacement_bcs", len(j.Elasticity.DisplacementBCs)).
					Int("traction_bcs", len(j.Elasticity.TractionBCs)).
					Bool("force_density", j.Elasticity.ForceDensity != nil).
					Msg("job file is valid")
			case j.Heat != nil:
				ld := loaders.NewHeatTransfer(*j.Heat)
				if err := ld.Validate(); err != nil {
					return err
				}
				log.Info().
					Str("job", j.Name).
					Str("process", j.Process).
					Int("temperature_bcs", len(j.Heat.TemperatureBCs)).
					Int("flux_bcs", len(j.Heat.FluxBCs)).
					Bool("body_heat", j.Heat.BodyHeat != nil).
					Msg("job file is valid")
			}

			opts := loaders.NewOptions(j.Options)
			if j.Elasticity != nil {
				log.Info().Strs("output_fields", opts.ElasticityFields()).Msg("output selection")
			} else {
				log.Info().Strs("output_fields", opts.HeatTransferFields()).Msg("output selection")
			}
			return nil
		},
	}
	root.AddCommand(check)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
