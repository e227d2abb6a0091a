package detector_test

import (
	"testing"

	"github.com/Victor-Schwan/k4-project-template/internal/detector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCaseInsensitiveAliases(t *testing.T) {
	reg := detector.NewDefaultRegistry()

	v02 := mustGet(t, reg, "v02")
	for _, key := range []string{"v02", "V02", "Ilc02", "ILC02", "ild_l5_v02", "ILD_l5_v02"} {
		m, err := reg.Get(key)
		require.NoError(t, err, "key %q", key)
		assert.Same(t, v02, m, "key %q", key)
	}

	if1 := mustGet(t, reg, "if1")
	for _, key := range []string{"IF1", "fcc01", "ILD_FCCee_V01"} {
		m, err := reg.Get(key)
		require.NoError(t, err, "key %q", key)
		assert.Same(t, if1, m, "key %q", key)
	}
}

func TestGetUnknownKey(t *testing.T) {
	reg := detector.NewDefaultRegistry()

	_, err := reg.Get("nope")
	assert.ErrorIs(t, err, detector.ErrModelNotFound)
}

func TestHas(t *testing.T) {
	reg := detector.NewDefaultRegistry()

	assert.True(t, reg.Has("V02"))
	assert.True(t, reg.Has("fcc02"))
	assert.False(t, reg.Has("nope"))
}

func TestKeys(t *testing.T) {
	reg := detector.NewDefaultRegistry()

	assert.Equal(t, []string{"if1", "if2", "v02"}, reg.Keys())
}

func TestAllKeys(t *testing.T) {
	reg := detector.NewDefaultRegistry()

	assert.Equal(t, []string{
		"fcc01", "fcc02", "if1", "if2",
		"ilc02", "ild_fccee_v01", "ild_fccee_v02", "ild_l5_v02", "v02",
	}, reg.AllKeys())
}

func testModel(short, long, pub string) *detector.DetectorModel {
	return &detector.DetectorModel{
		ShortName: short,
		LongName:  long,
		PubName:   pub,
		Machine:   &detector.AcceleratorConfig{Name: "ILC", CompactDir: "ILD/compact", CrossingAngle: 7.0e-3},
		Compact:   pub + ".xml",
	}
}

func TestKeysIndependentOfRegistrationOrder(t *testing.T) {
	a := testModel("v03", "Ilc03", "ILD_l5_v03")
	b := testModel("v04", "Ilc04", "ILD_l5_v04")

	first := detector.NewRegistry()
	require.NoError(t, first.Register(a))
	require.NoError(t, first.Register(b))

	second := detector.NewRegistry()
	require.NoError(t, second.Register(b))
	require.NoError(t, second.Register(a))

	assert.Equal(t, first.Keys(), second.Keys())
	assert.Equal(t, first.AllKeys(), second.AllKeys())
}

func TestRegisterAliasConflict(t *testing.T) {
	reg := detector.NewRegistry()
	require.NoError(t, reg.Register(testModel("v03", "Ilc03", "ILD_l5_v03")))

	// differing short name but a reused long alias
	err := reg.Register(testModel("v04", "ILC03", "ILD_l5_v04"))
	assert.ErrorIs(t, err, detector.ErrAliasConflict)

	// the failed registration must not have bound anything
	assert.False(t, reg.Has("v04"))
	assert.False(t, reg.Has("ILD_l5_v04"))
}

func TestRegisterSameModelTwice(t *testing.T) {
	reg := detector.NewRegistry()
	m := testModel("v03", "Ilc03", "ILD_l5_v03")

	require.NoError(t, reg.Register(m))
	assert.NoError(t, reg.Register(m))
	assert.Len(t, reg.Models(), 1)
}

func TestRegisterInvalidModel(t *testing.T) {
	reg := detector.NewRegistry()

	err := reg.Register(testModel("v03", "v03", "ILD_l5_v03"))
	assert.ErrorIs(t, err, detector.ErrInvalidModel)
}

func TestModels(t *testing.T) {
	reg := detector.NewDefaultRegistry()

	models := reg.Models()
	require.Len(t, models, 3)
	assert.Equal(t, "if1", models[0].ShortName)
	assert.Equal(t, "if2", models[1].ShortName)
	assert.Equal(t, "v02", models[2].ShortName)
}
