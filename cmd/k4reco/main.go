// Command k4reco selects detector geometry models for reconstruction runs.
// It exposes the detector model catalogue, resolves compact geometry file
// paths and produces the run manifest handed to the pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/Victor-Schwan/k4-project-template/cmd/k4reco/cmd"
	"github.com/Victor-Schwan/k4-project-template/internal/config"
	"github.com/Victor-Schwan/k4-project-template/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Log.Errorf("[k4reco] Failed to load config: %v", err)
		os.Exit(1)
	}

	if err := logging.Init(); err != nil {
		logging.Log.Errorf("[k4reco] Failed to init logger: %v", err)
		os.Exit(1)
	}

	if err := cmd.Execute(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
