// Package cmd provides the CLI commands for the k4reco binary.
package cmd

import (
	"fmt"

	"github.com/Victor-Schwan/k4-project-template/internal/config"
	"github.com/Victor-Schwan/k4-project-template/internal/detector"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "k4reco",
	Short: "Detector model selection for the reconstruction pipeline",
	Long:  `k4reco resolves named detector geometry models into the compact files and parameters consumed by reconstruction.`,
}

// Execute builds the detector model registry, merges site-local models from
// the configuration file, and runs the root command.
func Execute(cfg *config.Config) error {
	reg := detector.NewDefaultRegistry()
	if err := cfg.ApplyModels(reg); err != nil {
		return fmt.Errorf("invalid model configuration: %w", err)
	}

	rootCmd.AddCommand(newModelsCmd(reg, cfg))
	rootCmd.AddCommand(newRunCmd(reg, cfg))
	return rootCmd.Execute()
}
