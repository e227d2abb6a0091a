// This file defines the "run" subcommand that resolves the selected detector
// models into a run manifest.
package cmd

import (
	"fmt"
	"os"

	"github.com/Victor-Schwan/k4-project-template/internal/config"
	"github.com/Victor-Schwan/k4-project-template/internal/detector"
	"github.com/Victor-Schwan/k4-project-template/internal/logging"
	"github.com/Victor-Schwan/k4-project-template/internal/options"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ManifestEntry is the resolved geometry of one selected detector model.
type ManifestEntry struct {
	Name          string                            `yaml:"name"` // display name per the detname flags
	Accelerator   string                            `yaml:"accelerator"`
	CrossingAngle float64                           `yaml:"crossing_angle"`
	CompactFile   string                            `yaml:"compact_file"`
	Hits          map[string]detector.HitCollection `yaml:"hits"`
}

// RunManifest is the hand-off artifact consumed by the pipeline driver.
type RunManifest struct {
	RunID   string          `yaml:"run_id"`
	Version string          `yaml:"version"`
	Models  []ManifestEntry `yaml:"models"`
}

// BuildManifest resolves the selected models into a manifest, preserving
// selection order.
func BuildManifest(reg *detector.Registry, cfg *config.Config, opts *options.Common) (*RunManifest, error) {
	if err := opts.Validate(reg); err != nil {
		return nil, err
	}
	mode, err := opts.NameMode()
	if err != nil {
		return nil, err
	}
	models, err := opts.ResolveModels(reg)
	if err != nil {
		return nil, err
	}

	manifest := &RunManifest{
		RunID:   uuid.NewString(),
		Version: opts.Version,
		Models:  make([]ManifestEntry, 0, len(models)),
	}
	for _, m := range models {
		name, err := m.Name(mode)
		if err != nil {
			return nil, err
		}
		manifest.Models = append(manifest.Models, ManifestEntry{
			Name:          name,
			Accelerator:   m.Machine.Name,
			CrossingAngle: m.CrossingAngle(),
			CompactFile:   compactPath(cfg, m),
			Hits:          m.Hits,
		})
	}
	return manifest, nil
}

// newRunCmd builds the "run" command over the given registry.
func newRunCmd(reg *detector.Registry, cfg *config.Config) *cobra.Command {
	opts := &options.Common{}
	var output string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Resolve the selected detector models into a run manifest",
		Long: `Resolves each selected detector model into its compact geometry file and
accelerator parameters and assembles the run manifest handed to the
reconstruction pipeline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := BuildManifest(reg, cfg, opts)
			if err != nil {
				return err
			}

			logging.Log.Infof("[k4reco] run %s (version %s)", manifest.RunID, manifest.Version)
			for _, e := range manifest.Models {
				logging.Log.Infof(" - %s: %s (crossing angle %g rad)",
					e.Name, e.CompactFile, e.CrossingAngle)
			}

			data, err := yaml.Marshal(manifest)
			if err != nil {
				return fmt.Errorf("failed to marshal manifest: %w", err)
			}
			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write manifest: %w", err)
			}
			logging.Log.Infof("[k4reco] manifest written to %s", output)
			return nil
		},
	}

	opts.AddFlags(runCmd, reg)
	runCmd.Flags().StringVarP(&output, "output", "o", "", "Write the run manifest to this yaml file")
	return runCmd
}
