package detector

// Built-in accelerator contexts. Crossing angles are the half angles in rad.
var (
	ilc = &AcceleratorConfig{
		Name:          "ILC",
		CompactDir:    "ILD/compact",
		CrossingAngle: 7.0e-3,
	}
	fccee = &AcceleratorConfig{
		Name:          "FCCee",
		CompactDir:    "FCCee/compact",
		CrossingAngle: 15.0e-3,
	}
)

// ildTrackerHits is the ILD tracker readout shared by all built-in models.
func ildTrackerHits() map[string]HitCollection {
	return map[string]HitCollection{
		"vxd": {Branch: "VXDTrackerHits", Prefix: "VXD"},
		"sit": {Branch: "SITTrackerHits", Prefix: "SIT"},
		"tpc": {Branch: "TPCCollection", Prefix: "TPC"},
		"set": {Branch: "SETTrackerHits", Prefix: "SET"},
	}
}

// builtinModels returns the hand-curated detector model catalogue.
func builtinModels() []*DetectorModel {
	return []*DetectorModel{
		{
			ShortName: "v02",
			LongName:  "Ilc02",
			PubName:   "ILD_l5_v02",
			Machine:   ilc,
			Compact:   "ILD_l5_v02.xml",
			Hits:      ildTrackerHits(),
		},
		{
			ShortName: "if1",
			LongName:  "FCC01",
			PubName:   "ILD_FCCee_v01",
			Machine:   fccee,
			Compact:   "ILD_FCCee_v01.xml",
			Hits:      ildTrackerHits(),
		},
		{
			ShortName: "if2",
			LongName:  "FCC02",
			PubName:   "ILD_FCCee_v02",
			Machine:   fccee,
			Compact:   "ILD_FCCee_v02.xml",
			Hits:      ildTrackerHits(),
		},
	}
}

// NewDefaultRegistry returns a registry seeded with the built-in models.
// The catalogue is hand-curated, so a registration failure is a programming
// error and panics.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, m := range builtinModels() {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
	return r
}
