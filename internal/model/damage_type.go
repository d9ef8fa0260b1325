package model

// Bit positions of the damage type bitfield.
const (
	DamageBitCut uint16 = 1 << iota
	DamageBitBash
	DamageBitStab
	DamageBitFire
	DamageBitIce
	DamageBitVolt
	DamageBitAlmighty
	DamageBitNoPenalty
)

// offensiveMask covers the seven proper damage types (bits 0-6).
const offensiveMask = DamageBitCut | DamageBitBash | DamageBitStab |
	DamageBitFire | DamageBitIce | DamageBitVolt | DamageBitAlmighty

// DamageType is the damage typing of an attack.
type DamageType struct {
	Cut      bool
	Bash     bool
	Stab     bool
	Fire     bool
	Ice      bool
	Volt     bool
	Almighty bool

	// NoPenalty is a behavior flag, not a damage type (HP Cannon uses it
	// to skip back-row and arm-bind penalties).
	NoPenalty bool
}

// DamageTypeFromBitfield decodes a bitfield. Bits 8-15 are ignored.
func DamageTypeFromBitfield(bits uint16) DamageType {
	return DamageType{
		Cut:       bits&DamageBitCut != 0,
		Bash:      bits&DamageBitBash != 0,
		Stab:      bits&DamageBitStab != 0,
		Fire:      bits&DamageBitFire != 0,
		Ice:       bits&DamageBitIce != 0,
		Volt:      bits&DamageBitVolt != 0,
		Almighty:  bits&DamageBitAlmighty != 0,
		NoPenalty: bits&DamageBitNoPenalty != 0,
	}
}

// Untyped reports whether none of the seven damage types are set.
// Untyped attacks skip vulnerabilities and get no buff bonuses. NoPenalty is ignored.
func (d DamageType) Untyped() bool {
	return d.Bitfield()&offensiveMask == 0
}

// Bitfield returns the table encoding. Bits 8-15 are always zero.
func (d DamageType) Bitfield() uint16 {
	var bits uint16
	if d.Cut {
		bits |= DamageBitCut
	}
	if d.Bash {
		bits |= DamageBitBash
	}
	if d.Stab {
		bits |= DamageBitStab
	}
	if d.Fire {
		bits |= DamageBitFire
	}
	if d.Ice {
		bits |= DamageBitIce
	}
	if d.Volt {
		bits |= DamageBitVolt
	}
	if d.Almighty {
		bits |= DamageBitAlmighty
	}
	if d.NoPenalty {
		bits |= DamageBitNoPenalty
	}
	return bits
}

// String lists the set flags, e.g. "Cut|Fire", or "Untyped".
func (d DamageType) String() string {
	names := [...]struct {
		set  bool
		name string
	}{
		{d.Cut, "Cut"}, {d.Bash, "Bash"}, {d.Stab, "Stab"},
		{d.Fire, "Fire"}, {d.Ice, "Ice"}, {d.Volt, "Volt"},
		{d.Almighty, "Almighty"}, {d.NoPenalty, "NoPenalty"},
	}

	out := ""
	for _, n := range names {
		if !n.set {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	if d.Untyped() {
		if out == "" {
			return "Untyped"
		}
		return "Untyped|" + out
	}
	return out
}
