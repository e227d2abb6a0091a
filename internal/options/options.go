// Package options wires the common reconstruction flags onto cobra commands
// and resolves them against a detector model registry.
package options

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Victor-Schwan/k4-project-template/internal/detector"
	"github.com/spf13/cobra"
)

// ErrNameSelection indicates contradictory display-name flags.
var ErrNameSelection = errors.New("options: long and publication name requested together")

// Common holds the flag values shared by all pipeline commands.
type Common struct {
	DetectorModels []string // selected model keys, order as given
	Version        string   // run identifier tag
	DetNameLong    bool     // display long name form
	DetNamePub     bool     // display publication name form
}

// AddFlags registers the common flags on cmd. The registry supplies the
// choice set shown in the help text.
func (o *Common) AddFlags(cmd *cobra.Command, reg *detector.Registry) {
	flags := cmd.Flags()

	flags.StringSliceVarP(&o.DetectorModels, "detectorModels", "m", []string{"v02"},
		fmt.Sprintf("Which detector model(s) to run reconstruction for (choices: %s)",
			strings.Join(reg.Keys(), ", ")))
	flags.StringVar(&o.Version, "version", "",
		"str to identify a run through the pipeline")
	flags.BoolVar(&o.DetNameLong, "detname-long", false,
		"Display detector names in their long form")
	flags.BoolVar(&o.DetNamePub, "detname-pub", false,
		"Display detector names in their publication form")

	cmd.MarkFlagRequired("version")
	cmd.MarkFlagsMutuallyExclusive("detname-long", "detname-pub")
}

// Validate checks every selected model key against the registry. Keys are
// matched case-insensitively, like the registry itself.
func (o *Common) Validate(reg *detector.Registry) error {
	for _, key := range o.DetectorModels {
		if !reg.Has(key) {
			return fmt.Errorf("unknown detector model %q (choices: %s)",
				key, strings.Join(reg.Keys(), ", "))
		}
	}
	return nil
}

// NameMode maps the display flags onto a single name selection mode.
// Cobra enforces mutual exclusion of the two flags, so the error branch is
// only reachable when the struct is populated by hand.
func (o *Common) NameMode() (detector.NameMode, error) {
	switch {
	case o.DetNameLong && o.DetNamePub:
		return detector.NameShort, ErrNameSelection
	case o.DetNameLong:
		return detector.NameLong, nil
	case o.DetNamePub:
		return detector.NamePub, nil
	default:
		return detector.NameShort, nil
	}
}

// ResolveModels looks up every selected model, preserving the given order.
func (o *Common) ResolveModels(reg *detector.Registry) ([]*detector.DetectorModel, error) {
	models := make([]*detector.DetectorModel, 0, len(o.DetectorModels))
	for _, key := range o.DetectorModels {
		m, err := reg.Get(key)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}
