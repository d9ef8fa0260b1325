package model

// InstantDeathLethalThreshold is the largest stored instant death vulnerability.
// Writes above it are stored as 0.
const InstantDeathLethalThreshold = 300

// DamageVulnerabilities holds percentage multipliers per damage type.
type DamageVulnerabilities struct {
	Cut      int
	Stab     int
	Bash     int
	Fire     int
	Ice      int
	Volt     int
	Almighty int
}

// DisableVulnerabilities holds percentage multipliers per disable.
type DisableVulnerabilities struct {
	Blind         int
	Paralysis     int
	Berserk       int
	Plague        int
	Sleep         int
	Poison        int
	Curse         int
	Petrification int
	Stunned       int
	HeadBind      int
	ArmBind       int
	LegBind       int

	instantDeath int
}

// InstantDeath returns the stored instant death vulnerability.
func (v *DisableVulnerabilities) InstantDeath() int {
	return v.instantDeath
}

// SetInstantDeath stores value, or 0 if value exceeds InstantDeathLethalThreshold
// (lethal resistance). The written value is not kept.
func (v *DisableVulnerabilities) SetInstantDeath(value int) {
	if value > InstantDeathLethalThreshold {
		v.instantDeath = 0
		return
	}
	v.instantDeath = value
}
