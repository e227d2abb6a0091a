// Package config handles loading the optional k4reco configuration file
// using Viper. The file carries the logging setup, the geometry root prefix
// and site-local detector model definitions that extend the built-in
// catalogue.
package config

import (
	"fmt"

	"github.com/Victor-Schwan/k4-project-template/internal/configloader"
	"github.com/Victor-Schwan/k4-project-template/internal/detector"
	"github.com/Victor-Schwan/k4-project-template/internal/logging"
	"github.com/spf13/viper"
)

// ModelSpec is one detector model definition from the config file. It is
// resolved against the accelerators section before registration.
type ModelSpec struct {
	ShortName   string             `mapstructure:"short_name"`
	LongName    string             `mapstructure:"long_name"`
	PubName     string             `mapstructure:"pub_name"`
	Accelerator string             `mapstructure:"accelerator"` // key into Accelerators
	Compact     string             `mapstructure:"compact"`
	Hits        map[string]HitSpec `mapstructure:"hits"`
}

// HitSpec is one sub-detector hit collection definition.
type HitSpec struct {
	Branch string `mapstructure:"branch"`
	Prefix string `mapstructure:"prefix"`
}

// AcceleratorSpec is one accelerator context definition.
type AcceleratorSpec struct {
	CompactDir    string  `mapstructure:"compact_dir"`
	CrossingAngle float64 `mapstructure:"crossing_angle"`
}

// Config holds the entire k4reco configuration file.
type Config struct {
	GeometryRoot string                     `mapstructure:"geometry_root"` // prefix prepended to resolved compact paths
	Accelerators map[string]AcceleratorSpec `mapstructure:"accelerators"`
	Models       []ModelSpec                `mapstructure:"models"`
	Logger       logging.Config             `mapstructure:"log"`
}

// Load reads the k4reco configuration file if one exists and registers it
// for global access. A missing file is not an error: defaults apply.
func Load() (*Config, error) {
	cfg := &Config{}

	path, err := configloader.ResolveConfigPath("k4reco.yaml")
	if err == nil {
		v := viper.New()
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("config unmarshal failed: %w", err)
		}
	} else {
		cfg.Logger = logging.Config{Level: "info", ToStdout: true}
	}

	configloader.ReplaceConfig(cfg)
	configloader.ReplaceConfig(&cfg.Logger)
	return cfg, nil
}

// ApplyModels registers the file-defined detector models into reg. Each
// model must reference an accelerator defined in the same file; conflicts
// with already registered aliases are reported, not overwritten.
func (c *Config) ApplyModels(reg *detector.Registry) error {
	machines := make(map[string]*detector.AcceleratorConfig, len(c.Accelerators))
	for name, spec := range c.Accelerators {
		machines[name] = &detector.AcceleratorConfig{
			Name:          name,
			CompactDir:    spec.CompactDir,
			CrossingAngle: spec.CrossingAngle,
		}
	}

	for _, spec := range c.Models {
		machine, ok := machines[spec.Accelerator]
		if !ok {
			return fmt.Errorf("model %q references unknown accelerator %q", spec.ShortName, spec.Accelerator)
		}

		hits := make(map[string]detector.HitCollection, len(spec.Hits))
		for tag, h := range spec.Hits {
			hits[tag] = detector.HitCollection{Branch: h.Branch, Prefix: h.Prefix}
		}

		model := &detector.DetectorModel{
			ShortName: spec.ShortName,
			LongName:  spec.LongName,
			PubName:   spec.PubName,
			Machine:   machine,
			Compact:   spec.Compact,
			Hits:      hits,
		}
		if err := reg.Register(model); err != nil {
			return fmt.Errorf("config model %q: %w", spec.ShortName, err)
		}
	}
	return nil
}
