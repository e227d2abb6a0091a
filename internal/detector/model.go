// Package detector defines the detector model catalogue used to select a
// geometry for reconstruction runs. A DetectorModel ties together the
// accelerator context, the compact geometry file and the hit collections
// produced by the sub-detectors.
package detector

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrModelNotFound indicates a lookup key that matches no registered alias.
	ErrModelNotFound = errors.New("detector: model not found")
	// ErrAliasConflict indicates an alias already bound to a different model.
	ErrAliasConflict = errors.New("detector: alias conflict")
	// ErrInvalidNameMode indicates an unrecognized name selection mode.
	ErrInvalidNameMode = errors.New("detector: invalid name mode")
	// ErrInvalidModel indicates a model violating the naming invariants.
	ErrInvalidModel = errors.New("detector: invalid model")
)

// NameMode selects which of a model's three equivalent names is displayed.
// The CLI exposes long and publication form as mutually exclusive flags, so
// only one mode can ever be in effect.
type NameMode int

const (
	// NameShort selects the canonical short name (e.g. "v02"). Default.
	NameShort NameMode = iota
	// NameLong selects the long form (e.g. "Ilc02").
	NameLong
	// NamePub selects the publication form (e.g. "ILD_l5_v02").
	NamePub
)

// String returns the flag-style spelling of the mode.
func (m NameMode) String() string {
	switch m {
	case NameShort:
		return "short"
	case NameLong:
		return "long"
	case NamePub:
		return "pub"
	default:
		return fmt.Sprintf("NameMode(%d)", int(m))
	}
}

// HitCollection describes one sub-detector output: the branch the hits are
// stored under and the prefix used when labelling them in displays.
type HitCollection struct {
	Branch string `yaml:"branch"` // storage branch name, e.g. "VXDTrackerHits"
	Prefix string `yaml:"prefix"` // display prefix, e.g. "VXD"
}

// AcceleratorConfig describes the collider context shared by the detector
// models designed for it.
type AcceleratorConfig struct {
	Name          string  `yaml:"name"`           // accelerator name, e.g. "ILC"
	CompactDir    string  `yaml:"compact_dir"`    // base directory of the compact geometry files
	CrossingAngle float64 `yaml:"crossing_angle"` // half beam-crossing angle in rad
}

// DetectorModel is one named detector configuration. Models are constructed
// once at startup and never mutated afterwards.
type DetectorModel struct {
	ShortName string                   `yaml:"short_name"` // canonical key, e.g. "v02"
	LongName  string                   `yaml:"long_name"`  // long form, e.g. "Ilc02"
	PubName   string                   `yaml:"pub_name"`   // publication form, e.g. "ILD_l5_v02"
	Machine   *AcceleratorConfig       `yaml:"machine"`    // accelerator context, shared between models
	Compact   string                   `yaml:"compact"`    // compact file path relative to the accelerator's dir
	Hits      map[string]HitCollection `yaml:"hits"`       // sub-detector tag -> hit collection
}

// Validate checks the naming invariants: all three names present and
// pairwise distinct under case folding, and an accelerator attached.
func (m *DetectorModel) Validate() error {
	names := []string{m.ShortName, m.LongName, m.PubName}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("%w: %q has an empty name field", ErrInvalidModel, m.ShortName)
		}
		folded := strings.ToLower(n)
		if _, dup := seen[folded]; dup {
			return fmt.Errorf("%w: %q reuses name %q", ErrInvalidModel, m.ShortName, n)
		}
		seen[folded] = struct{}{}
	}
	if m.Machine == nil {
		return fmt.Errorf("%w: %q has no accelerator", ErrInvalidModel, m.ShortName)
	}
	return nil
}

// Aliases returns the three equivalent names the model can be looked up by.
func (m *DetectorModel) Aliases() []string {
	return []string{m.ShortName, m.LongName, m.PubName}
}

// CompactFilePath joins the accelerator's compact directory with the model's
// relative geometry file path. No filesystem access is performed.
func (m *DetectorModel) CompactFilePath() string {
	return filepath.Join(m.Machine.CompactDir, m.Compact)
}

// CrossingAngle returns the accelerator's half beam-crossing angle.
func (m *DetectorModel) CrossingAngle() float64 {
	return m.Machine.CrossingAngle
}

// IsAccelerator reports whether the model belongs to the named accelerator,
// compared case-insensitively.
func (m *DetectorModel) IsAccelerator(name string) bool {
	return strings.EqualFold(m.Machine.Name, name)
}

// Name returns the model name in the requested form.
func (m *DetectorModel) Name(mode NameMode) (string, error) {
	switch mode {
	case NameShort:
		return m.ShortName, nil
	case NameLong:
		return m.LongName, nil
	case NamePub:
		return m.PubName, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidNameMode, mode)
	}
}
