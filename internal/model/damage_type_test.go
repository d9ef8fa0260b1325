package model

import "testing"

func TestDamageType_Bitfield(t *testing.T) {
	tests := []struct {
		name        string
		dt          DamageType
		wantBits    uint16
		wantUntyped bool
	}{
		{"empty", DamageType{}, 0, true},
		{"cut and fire", DamageType{Cut: true, Fire: true}, 9, false},
		{"no penalty only", DamageType{NoPenalty: true}, 128, true},
		{"almighty", DamageType{Almighty: true}, 64, false},
		{"all", DamageType{true, true, true, true, true, true, true, true}, 0xFF, false},
		{"physical", DamageType{Cut: true, Bash: true, Stab: true}, 0x07, false},
		{"elemental", DamageType{Fire: true, Ice: true, Volt: true}, 0x38, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dt.Bitfield(); got != tt.wantBits {
				t.Errorf("Bitfield() = %d, want %d", got, tt.wantBits)
			}
			if got := tt.dt.Untyped(); got != tt.wantUntyped {
				t.Errorf("Untyped() = %v, want %v", got, tt.wantUntyped)
			}
		})
	}
}

func TestDamageType_OffensiveCombinations(t *testing.T) {
	weights := []uint16{1, 2, 4, 8, 16, 32, 64}

	for combo := range 128 {
		for _, noPenalty := range []bool{false, true} {
			set := func(bit int) bool { return combo&(1<<bit) != 0 }
			dt := DamageType{
				Cut:       set(0),
				Bash:      set(1),
				Stab:      set(2),
				Fire:      set(3),
				Ice:       set(4),
				Volt:      set(5),
				Almighty:  set(6),
				NoPenalty: noPenalty,
			}

			var sum uint16
			for bit, w := range weights {
				if set(bit) {
					sum += w
				}
			}

			masked := dt.Bitfield() & 0x7F
			if masked != sum {
				t.Errorf("combo %07b: Bitfield()&0x7F = %d, want %d", combo, masked, sum)
			}
			if dt.Untyped() != (masked == 0) {
				t.Errorf("combo %07b noPenalty=%v: Untyped() = %v", combo, noPenalty, dt.Untyped())
			}
			if dt.Bitfield()&0xFF00 != 0 {
				t.Errorf("combo %07b: high byte set: 0x%04X", combo, dt.Bitfield())
			}
		}
	}
}

func TestDamageTypeFromBitfield_RoundTrip(t *testing.T) {
	for b := range 256 {
		dt := DamageTypeFromBitfield(uint16(b))
		if got := dt.Bitfield(); got != uint16(b) {
			t.Errorf("DamageTypeFromBitfield(%d).Bitfield() = %d", b, got)
		}
	}
}

func TestDamageTypeFromBitfield_IgnoresHighByte(t *testing.T) {
	dt := DamageTypeFromBitfield(0xFF01)
	if dt != (DamageType{Cut: true}) {
		t.Errorf("DamageTypeFromBitfield(0xFF01) = %+v, want Cut only", dt)
	}
}

func TestDamageType_String(t *testing.T) {
	tests := []struct {
		dt   DamageType
		want string
	}{
		{DamageType{}, "Untyped"},
		{DamageType{NoPenalty: true}, "Untyped|NoPenalty"},
		{DamageType{Cut: true, Fire: true}, "Cut|Fire"},
		{DamageType{Volt: true, NoPenalty: true}, "Volt|NoPenalty"},
	}

	for _, tt := range tests {
		if got := tt.dt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
