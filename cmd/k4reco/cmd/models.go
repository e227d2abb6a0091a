// This file defines the "models" subcommands for inspecting the detector
// model catalogue.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Victor-Schwan/k4-project-template/internal/config"
	"github.com/Victor-Schwan/k4-project-template/internal/detector"
	"github.com/Victor-Schwan/k4-project-template/internal/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// compactPath resolves a model's compact file against the configured
// geometry root, if one is set.
func compactPath(cfg *config.Config, m *detector.DetectorModel) string {
	p := m.CompactFilePath()
	if cfg.GeometryRoot != "" {
		p = filepath.Join(cfg.GeometryRoot, p)
	}
	return p
}

// newModelsCmd builds the "models" command group over the given registry.
func newModelsCmd(reg *detector.Registry, cfg *config.Config) *cobra.Command {
	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect the detector model catalogue",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered detector models",
		Run: func(cmd *cobra.Command, args []string) {
			logging.Log.Infoln("Registered detector models:")
			for _, m := range reg.Models() {
				logging.Log.Infof(" - %-4s (long: %s, pub: %s, accelerator: %s)",
					m.ShortName, m.LongName, m.PubName, m.Machine.Name)
			}
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Show the full configuration of one detector model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			logging.Log.Infof("Name:           %s", m.ShortName)
			logging.Log.Infof("Long name:      %s", m.LongName)
			logging.Log.Infof("Pub name:       %s", m.PubName)
			logging.Log.Infof("Accelerator:    %s", m.Machine.Name)
			logging.Log.Infof("Crossing angle: %g rad", m.CrossingAngle())
			logging.Log.Infof("Compact file:   %s", compactPath(cfg, m))

			tags := make([]string, 0, len(m.Hits))
			for tag := range m.Hits {
				tags = append(tags, tag)
			}
			sort.Strings(tags)
			for _, tag := range tags {
				h := m.Hits[tag]
				logging.Log.Infof("Hits [%s]:      %s (prefix %s)", tag, h.Branch, h.Prefix)
			}
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the detector model catalogue as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(struct {
				Models []*detector.DetectorModel `yaml:"models"`
			}{Models: reg.Models()})
			if err != nil {
				return fmt.Errorf("failed to marshal catalogue: %w", err)
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}

	modelsCmd.AddCommand(listCmd)
	modelsCmd.AddCommand(infoCmd)
	modelsCmd.AddCommand(exportCmd)
	return modelsCmd
}
