package model

const flagExecutionImmunity uint16 = 1 << 0

// EnemyFlags holds special enemy flags.
type EnemyFlags struct {
	// ExecutionImmunity protects the enemy from being killed outright by Execution.
	ExecutionImmunity bool

	// bits the editor does not interpret, kept for re-encoding
	other uint16
}

// EnemyFlagsFromBits decodes the table flag word.
func EnemyFlagsFromBits(bits uint16) EnemyFlags {
	return EnemyFlags{
		ExecutionImmunity: bits&flagExecutionImmunity != 0,
		other:             bits &^ flagExecutionImmunity,
	}
}

// Bits returns the table flag word.
func (f EnemyFlags) Bits() uint16 {
	bits := f.other
	if f.ExecutionImmunity {
		bits |= flagExecutionImmunity
	}
	return bits
}
