package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeIsValid(t *testing.T) {
	for _, m := range []Mode{ModeTurnBased, ModeLively, ModeInformal, ModeDuelogic} {
		assert.True(t, m.IsValid(), "mode %s", m)
	}
	assert.False(t, Mode("oxford").IsValid())
	assert.False(t, Mode("").IsValid())
}

func TestModeInterruptible(t *testing.T) {
	assert.True(t, ModeLively.Interruptible())
	assert.True(t, ModeDuelogic.Interruptible())
	assert.False(t, ModeTurnBased.Interruptible())
	assert.False(t, ModeInformal.Interruptible())
}

func TestFrameworkIsValid(t *testing.T) {
	for _, f := range []Framework{
		FrameworkUtilitarian, FrameworkVirtueEthics, FrameworkDeontological,
		FrameworkPragmatic, FrameworkLibertarian, FrameworkCommunitarian,
		FrameworkCosmopolitan, FrameworkPrecautionary, FrameworkAutonomyCentered,
		FrameworkCareEthics,
	} {
		assert.True(t, f.IsValid(), "framework %s", f)
	}
	assert.False(t, Framework("stoic").IsValid())
}

func TestPacingModeIsValid(t *testing.T) {
	assert.True(t, PacingSlow.IsValid())
	assert.True(t, PacingFrantic.IsValid())
	assert.False(t, PacingMode("glacial").IsValid())
}

func TestAccountabilityAndTone(t *testing.T) {
	assert.True(t, AccountabilityStrict.IsValid())
	assert.False(t, Accountability("brutal").IsValid())
	assert.True(t, ToneHeated.IsValid())
	assert.False(t, Tone("vicious").IsValid())
}
