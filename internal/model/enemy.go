package model

import "github.com/udisondev/enemyedit/internal/table"

// Enemy is one record of the enemy table.
// Identity, base accuracy and drops are fixed when the table is loaded; the
// rest is editable.
type Enemy struct {
	names *table.NameTable
	index int

	Level      int
	Experience int
	HP         int
	STR        int
	TEC        int
	VIT        int
	WIS        int
	AGI        int
	LUC        int

	// DamageType is the typing of the enemy's normal attack.
	DamageType DamageType

	DamageVulnerabilities  DamageVulnerabilities
	DisableVulnerabilities DisableVulnerabilities
	Flags                  EnemyFlags

	baseAccuracy    int
	firstDrop       Drop
	secondDrop      Drop
	conditionalDrop ConditionalDrop
}

// NewEnemy creates the enemy at index of the enemy name table.
func NewEnemy(
	names *table.NameTable,
	index int,
	baseAccuracy int,
	firstDrop, secondDrop Drop,
	conditionalDrop ConditionalDrop,
) *Enemy {
	return &Enemy{
		names:           names,
		index:           index,
		baseAccuracy:    baseAccuracy,
		firstDrop:       firstDrop,
		secondDrop:      secondDrop,
		conditionalDrop: conditionalDrop,
	}
}

// Index returns the enemy's position in the enemy table.
func (e *Enemy) Index() int {
	return e.index
}

// Name looks up the enemy name. Returns table.ErrIndexOutOfRange if the
// enemy name table has no entry for Index.
func (e *Enemy) Name() (string, error) {
	return e.names.Lookup(e.index)
}

// NameTable returns the shared enemy name table.
func (e *Enemy) NameTable() *table.NameTable {
	return e.names
}

// BaseAccuracy returns the normal attack base accuracy.
func (e *Enemy) BaseAccuracy() int {
	return e.baseAccuracy
}

// FirstDrop returns the first drop slot. The slot itself cannot be replaced.
func (e *Enemy) FirstDrop() *Drop {
	return &e.firstDrop
}

// SecondDrop returns the second drop slot.
func (e *Enemy) SecondDrop() *Drop {
	return &e.secondDrop
}

// ConditionalDrop returns the conditional drop slot.
func (e *Enemy) ConditionalDrop() *ConditionalDrop {
	return &e.conditionalDrop
}
