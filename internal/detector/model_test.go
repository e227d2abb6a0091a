package detector_test

import (
	"testing"

	"github.com/Victor-Schwan/k4-project-template/internal/detector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGet(t *testing.T, reg *detector.Registry, key string) *detector.DetectorModel {
	t.Helper()
	m, err := reg.Get(key)
	require.NoError(t, err)
	return m
}

func TestName(t *testing.T) {
	reg := detector.NewDefaultRegistry()
	if2 := mustGet(t, reg, "if2")

	name, err := if2.Name(detector.NameShort)
	assert.NoError(t, err)
	assert.Equal(t, "if2", name)

	name, err = if2.Name(detector.NameLong)
	assert.NoError(t, err)
	assert.Equal(t, "FCC02", name)

	name, err = if2.Name(detector.NamePub)
	assert.NoError(t, err)
	assert.Equal(t, "ILD_FCCee_v02", name)
}

func TestNameInvalidMode(t *testing.T) {
	reg := detector.NewDefaultRegistry()
	v02 := mustGet(t, reg, "v02")

	_, err := v02.Name(detector.NameMode(42))
	assert.ErrorIs(t, err, detector.ErrInvalidNameMode)
}

func TestCompactFilePath(t *testing.T) {
	reg := detector.NewDefaultRegistry()

	v02 := mustGet(t, reg, "v02")
	assert.Equal(t, "ILD/compact/ILD_l5_v02.xml", v02.CompactFilePath())

	if1 := mustGet(t, reg, "if1")
	assert.Equal(t, "FCCee/compact/ILD_FCCee_v01.xml", if1.CompactFilePath())
}

func TestCrossingAngle(t *testing.T) {
	reg := detector.NewDefaultRegistry()

	assert.Equal(t, 7.0e-3, mustGet(t, reg, "v02").CrossingAngle())
	assert.Equal(t, 15.0e-3, mustGet(t, reg, "if1").CrossingAngle())
	assert.Equal(t, 15.0e-3, mustGet(t, reg, "if2").CrossingAngle())
}

func TestIsAccelerator(t *testing.T) {
	reg := detector.NewDefaultRegistry()
	v02 := mustGet(t, reg, "v02")

	assert.True(t, v02.IsAccelerator("ILC"))
	assert.True(t, v02.IsAccelerator("ilc"))
	assert.False(t, v02.IsAccelerator("FCCee"))
}

func TestValidate(t *testing.T) {
	machine := &detector.AcceleratorConfig{Name: "ILC", CompactDir: "ILD/compact", CrossingAngle: 7.0e-3}

	valid := &detector.DetectorModel{
		ShortName: "v03", LongName: "Ilc03", PubName: "ILD_l5_v03",
		Machine: machine, Compact: "ILD_l5_v03.xml",
	}
	assert.NoError(t, valid.Validate())

	empty := &detector.DetectorModel{ShortName: "v03", LongName: "", PubName: "ILD_l5_v03", Machine: machine}
	assert.ErrorIs(t, empty.Validate(), detector.ErrInvalidModel)

	// names must be distinct under case folding
	dup := &detector.DetectorModel{ShortName: "v03", LongName: "V03", PubName: "ILD_l5_v03", Machine: machine}
	assert.ErrorIs(t, dup.Validate(), detector.ErrInvalidModel)

	orphan := &detector.DetectorModel{ShortName: "v03", LongName: "Ilc03", PubName: "ILD_l5_v03"}
	assert.ErrorIs(t, orphan.Validate(), detector.ErrInvalidModel)
}
