package model

import (
	"errors"
	"fmt"
)

// ErrUnknownCondition is returned when a byte is not a known conditional drop code.
var ErrUnknownCondition = errors.New("unknown conditional drop code")

// ConditionalDropFlags is the kill condition gating a conditional drop.
// Values are table codes and must never be renumbered. The zero value means
// no condition is set.
type ConditionalDropFlags uint8

const (
	CutDamage       ConditionalDropFlags = 0x08
	StabDamage      ConditionalDropFlags = 0x0A
	BashDamage      ConditionalDropFlags = 0x0C
	FireDamage      ConditionalDropFlags = 0x0E
	IceDamage       ConditionalDropFlags = 0x10
	VoltDamage      ConditionalDropFlags = 0x12
	PoisonDamage    ConditionalDropFlags = 0x16
	Paralyzed       ConditionalDropFlags = 0x18
	Blind           ConditionalDropFlags = 0x1A
	Berserk         ConditionalDropFlags = 0x1C
	CurseDamage     ConditionalDropFlags = 0x20 // unused in this edition
	Sleeping        ConditionalDropFlags = 0x22
	Petrified       ConditionalDropFlags = 0x26
	InstantDeath    ConditionalDropFlags = 0x28
	HeadBound       ConditionalDropFlags = 0x2A
	ArmBound        ConditionalDropFlags = 0x2C
	LegBound        ConditionalDropFlags = 0x2E
	FullyBound      ConditionalDropFlags = 0x30
	FirstTurn       ConditionalDropFlags = 0x32
	PhysicalDamage  ConditionalDropFlags = 0x50
	ElementalDamage ConditionalDropFlags = 0x52
)

// AllConditions lists every code in ascending order.
var AllConditions = []ConditionalDropFlags{
	CutDamage, StabDamage, BashDamage, FireDamage, IceDamage, VoltDamage,
	PoisonDamage, Paralyzed, Blind, Berserk, CurseDamage, Sleeping, Petrified,
	InstantDeath, HeadBound, ArmBound, LegBound, FullyBound, FirstTurn,
	PhysicalDamage, ElementalDamage,
}

// ParseConditionalDropFlags decodes a table code.
func ParseConditionalDropFlags(code uint8) (ConditionalDropFlags, error) {
	c := ConditionalDropFlags(code)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: 0x%02X", ErrUnknownCondition, code)
	}
	return c, nil
}

// ConditionByName resolves a symbolic name as returned by String.
func ConditionByName(name string) (ConditionalDropFlags, error) {
	for _, c := range AllConditions {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCondition, name)
}

// Code returns the table code.
func (c ConditionalDropFlags) Code() uint8 {
	return uint8(c)
}

// Valid reports whether c is one of the defined codes.
func (c ConditionalDropFlags) Valid() bool {
	return c.String() != unknownConditionName
}

const unknownConditionName = "Unknown"

// String returns the symbolic name of the code.
func (c ConditionalDropFlags) String() string {
	switch c {
	case CutDamage:
		return "CutDamage"
	case StabDamage:
		return "StabDamage"
	case BashDamage:
		return "BashDamage"
	case FireDamage:
		return "FireDamage"
	case IceDamage:
		return "IceDamage"
	case VoltDamage:
		return "VoltDamage"
	case PoisonDamage:
		return "PoisonDamage"
	case Paralyzed:
		return "Paralyzed"
	case Blind:
		return "Blind"
	case Berserk:
		return "Berserk"
	case CurseDamage:
		return "CurseDamage"
	case Sleeping:
		return "Sleeping"
	case Petrified:
		return "Petrified"
	case InstantDeath:
		return "InstantDeath"
	case HeadBound:
		return "HeadBound"
	case ArmBound:
		return "ArmBound"
	case LegBound:
		return "LegBound"
	case FullyBound:
		return "FullyBound"
	case FirstTurn:
		return "FirstTurn"
	case PhysicalDamage:
		return "PhysicalDamage"
	case ElementalDamage:
		return "ElementalDamage"
	default:
		return unknownConditionName
	}
}

// Describe returns the kill condition in words.
func (c ConditionalDropFlags) Describe() string {
	switch c {
	case CutDamage:
		return "killed by an attack that includes cut damage"
	case StabDamage:
		return "killed by an attack that includes stab damage"
	case BashDamage:
		return "killed by an attack that includes bash damage"
	case FireDamage:
		return "killed by an attack that includes fire damage"
	case IceDamage:
		return "killed by an attack that includes ice damage"
	case VoltDamage:
		return "killed by an attack that includes volt damage"
	case PoisonDamage:
		return "killed by poison damage"
	case Paralyzed:
		return "killed while paralyzed"
	case Blind:
		return "killed while blinded"
	case Berserk:
		return "killed while berserk"
	case CurseDamage:
		return "killed by curse backlash"
	case Sleeping:
		return "killed while asleep"
	case Petrified:
		return "killed while petrified"
	case InstantDeath:
		return "killed instantly"
	case HeadBound:
		return "killed with head bound"
	case ArmBound:
		return "killed with arms bound"
	case LegBound:
		return "killed with legs bound"
	case FullyBound:
		return "killed with head, arms and legs bound"
	case FirstTurn:
		return "killed on the first turn"
	case PhysicalDamage:
		return "killed by cut, stab or bash damage"
	case ElementalDamage:
		return "killed by fire, ice or volt damage"
	default:
		return fmt.Sprintf("unknown condition 0x%02X", uint8(c))
	}
}
