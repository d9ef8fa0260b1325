package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionalDropFlags_Codes(t *testing.T) {
	want := map[ConditionalDropFlags]uint8{
		CutDamage:       0x08,
		StabDamage:      0x0A,
		BashDamage:      0x0C,
		FireDamage:      0x0E,
		IceDamage:       0x10,
		VoltDamage:      0x12,
		PoisonDamage:    0x16,
		Paralyzed:       0x18,
		Blind:           0x1A,
		Berserk:         0x1C,
		CurseDamage:     0x20,
		Sleeping:        0x22,
		Petrified:       0x26,
		InstantDeath:    0x28,
		HeadBound:       0x2A,
		ArmBound:        0x2C,
		LegBound:        0x2E,
		FullyBound:      0x30,
		FirstTurn:       0x32,
		PhysicalDamage:  0x50,
		ElementalDamage: 0x52,
	}

	assert.Len(t, AllConditions, len(want))
	for c, code := range want {
		assert.Equal(t, code, c.Code(), c.String())
	}
}

func TestConditionalDropFlags_RoundTrip(t *testing.T) {
	for _, c := range AllConditions {
		parsed, err := ParseConditionalDropFlags(c.Code())
		require.NoError(t, err, c.String())
		assert.Equal(t, c, parsed)

		byName, err := ConditionByName(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, byName)

		assert.True(t, c.Valid())
		assert.NotContains(t, c.Describe(), "unknown")
	}
}

func TestParseConditionalDropFlags_Unknown(t *testing.T) {
	known := make(map[uint8]bool, len(AllConditions))
	for _, c := range AllConditions {
		known[c.Code()] = true
	}

	for code := range 256 {
		if known[uint8(code)] {
			continue
		}
		_, err := ParseConditionalDropFlags(uint8(code))
		if !errors.Is(err, ErrUnknownCondition) {
			t.Errorf("ParseConditionalDropFlags(0x%02X) err = %v, want ErrUnknownCondition", code, err)
		}
	}
}

func TestConditionalDropFlags_ZeroValue(t *testing.T) {
	var c ConditionalDropFlags
	assert.False(t, c.Valid())
	assert.Equal(t, "Unknown", c.String())
	assert.Equal(t, "unknown condition 0x00", c.Describe())

	_, err := ConditionByName("Unknown")
	assert.ErrorIs(t, err, ErrUnknownCondition)
}
