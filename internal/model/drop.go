package model

import "github.com/udisondev/enemyedit/internal/table"

// Drop is an item an enemy can drop when killed.
type Drop struct {
	ItemRef
	chance int
}

// NewDrop creates a drop of item index with zero chance.
func NewDrop(items *table.NameTable, index int) Drop {
	return Drop{ItemRef: NewItemRef(items, index)}
}

// Chance returns the drop chance in percent.
func (d *Drop) Chance() int {
	return d.chance
}

// SetChance sets the drop chance. Values outside 0-100 are stored as given.
func (d *Drop) SetChance(chance int) {
	d.chance = chance
}

// ConditionalDrop is a drop that is only eligible when the kill meets Condition.
// The condition is stored here and evaluated by the battle engine.
type ConditionalDrop struct {
	Drop
	condition ConditionalDropFlags
}

// NewConditionalDrop creates a conditional drop with no condition set.
func NewConditionalDrop(items *table.NameTable, index int) ConditionalDrop {
	return ConditionalDrop{Drop: NewDrop(items, index)}
}

// Condition returns the kill condition.
func (d *ConditionalDrop) Condition() ConditionalDropFlags {
	return d.condition
}

// SetCondition sets the kill condition.
func (d *ConditionalDrop) SetCondition(c ConditionalDropFlags) {
	d.condition = c
}
