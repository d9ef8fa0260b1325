package data

import (
	"errors"
	"fmt"
	"math"

	"github.com/udisondev/enemyedit/internal/model"
	"github.com/udisondev/enemyedit/internal/packet"
	"github.com/udisondev/enemyedit/internal/table"
)

// EnemyRecordSize is the size of one enemytable.tbl record in bytes.
const EnemyRecordSize = 0x50

var (
	// ErrEnemyNotFound is returned for an enemy index outside the table.
	ErrEnemyNotFound = errors.New("enemy not found")
	// ErrValueOutOfRange is returned by EncodeEnemyTable when a field does not fit its slot.
	ErrValueOutOfRange = errors.New("value does not fit table field")
)

// EnemyTable is the decoded contents of enemytable.tbl.
// Record i is enemy i of the enemy name table.
type EnemyTable struct {
	enemies    []*model.Enemy
	enemyNames *table.NameTable
	itemNames  *table.NameTable
}

// NewEnemyTable wraps already built enemies.
func NewEnemyTable(enemies []*model.Enemy, enemyNames, itemNames *table.NameTable) *EnemyTable {
	return &EnemyTable{enemies: enemies, enemyNames: enemyNames, itemNames: itemNames}
}

// Len returns the number of records.
func (t *EnemyTable) Len() int { return len(t.enemies) }

// Enemies returns all records in table order.
func (t *EnemyTable) Enemies() []*model.Enemy { return t.enemies }

// EnemyNames returns the shared enemy name table.
func (t *EnemyTable) EnemyNames() *table.NameTable { return t.enemyNames }

// ItemNames returns the shared item name table.
func (t *EnemyTable) ItemNames() *table.NameTable { return t.itemNames }

// Enemy returns the record at index.
func (t *EnemyTable) Enemy(index int) (*model.Enemy, error) {
	if index < 0 || index >= len(t.enemies) {
		return nil, fmt.Errorf("%w: index %d, count %d", ErrEnemyNotFound, index, len(t.enemies))
	}
	return t.enemies[index], nil
}

// DecodeEnemyTable parses enemytable.tbl and binds every record to the shared name tables.
func DecodeEnemyTable(data []byte, enemyNames, itemNames *table.NameTable) (*EnemyTable, error) {
	r := packet.NewReader(data)

	count, err := r.ReadUInt()
	if err != nil {
		return nil, fmt.Errorf("reading enemy count: %w", err)
	}
	if uint64(count)*EnemyRecordSize != uint64(r.Remaining()) {
		return nil, fmt.Errorf("enemy table size mismatch: %d records need %d bytes, have %d",
			count, uint64(count)*EnemyRecordSize, r.Remaining())
	}

	enemies := make([]*model.Enemy, count)
	for i := range enemies {
		e, err := decodeEnemy(r, i, enemyNames, itemNames)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		enemies[i] = e
	}

	return NewEnemyTable(enemies, enemyNames, itemNames), nil
}

// fieldReader accumulates the first read error so a record decodes in one pass.
type fieldReader struct {
	r   *packet.Reader
	err error
}

func (f *fieldReader) u8() int {
	if f.err != nil {
		return 0
	}
	var v byte
	v, f.err = f.r.ReadByte()
	return int(v)
}

func (f *fieldReader) u16() int {
	if f.err != nil {
		return 0
	}
	var v uint16
	v, f.err = f.r.ReadUShort()
	return int(v)
}

func (f *fieldReader) i16() int {
	if f.err != nil {
		return 0
	}
	var v int16
	v, f.err = f.r.ReadShort()
	return int(v)
}

func (f *fieldReader) u32() int {
	if f.err != nil {
		return 0
	}
	var v uint32
	v, f.err = f.r.ReadUInt()
	return int(v)
}

func decodeEnemy(r *packet.Reader, index int, enemyNames, itemNames *table.NameTable) (*model.Enemy, error) {
	f := &fieldReader{r: r}

	level := f.u16()
	accuracy := f.u16()
	exp := f.u32()
	hp := f.u32()
	stats := [6]int{f.u16(), f.u16(), f.u16(), f.u16(), f.u16(), f.u16()}
	damageBits := f.u8()
	condCode := f.u8()
	flagBits := f.u16()

	var dmg model.DamageVulnerabilities
	dmg.Cut, dmg.Stab, dmg.Bash = f.i16(), f.i16(), f.i16()
	dmg.Fire, dmg.Ice, dmg.Volt = f.i16(), f.i16(), f.i16()
	dmg.Almighty = f.i16()

	var dis model.DisableVulnerabilities
	dis.Blind, dis.Paralysis, dis.Berserk = f.i16(), f.i16(), f.i16()
	dis.Plague, dis.Sleep, dis.Poison = f.i16(), f.i16(), f.i16()
	dis.Curse, dis.Petrification = f.i16(), f.i16()
	dis.SetInstantDeath(f.i16())
	dis.Stunned, dis.HeadBind, dis.ArmBind, dis.LegBind = f.i16(), f.i16(), f.i16(), f.i16()

	first := model.NewDrop(itemNames, f.u16())
	first.SetChance(f.u16())
	second := model.NewDrop(itemNames, f.u16())
	second.SetChance(f.u16())
	cond := model.NewConditionalDrop(itemNames, f.u16())
	cond.SetChance(f.u16())

	if f.err != nil {
		return nil, f.err
	}

	if condCode != 0 {
		c, err := model.ParseConditionalDropFlags(uint8(condCode))
		if err != nil {
			return nil, err
		}
		cond.SetCondition(c)
	}

	e := model.NewEnemy(enemyNames, index, accuracy, first, second, cond)
	e.Level = level
	e.Experience = exp
	e.HP = hp
	e.STR, e.TEC, e.VIT, e.WIS, e.AGI, e.LUC = stats[0], stats[1], stats[2], stats[3], stats[4], stats[5]
	e.DamageType = model.DamageTypeFromBitfield(uint16(damageBits))
	e.Flags = model.EnemyFlagsFromBits(uint16(flagBits))
	e.DamageVulnerabilities = dmg
	e.DisableVulnerabilities = dis
	return e, nil
}

// EncodeEnemyTable serializes t in the layout read by DecodeEnemyTable.
func EncodeEnemyTable(t *EnemyTable) ([]byte, error) {
	w := packet.Get()
	defer w.Put()

	w.WriteUInt(uint32(len(t.enemies)))
	for i, e := range t.enemies {
		if err := encodeEnemy(w, e); err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

// fieldWriter records the first field that does not fit its slot.
type fieldWriter struct {
	w   *packet.Writer
	err error
}

func (f *fieldWriter) check(name string, v, lo, hi int) bool {
	if f.err != nil {
		return false
	}
	if v < lo || v > hi {
		f.err = fmt.Errorf("%w: %s=%d (range %d..%d)", ErrValueOutOfRange, name, v, lo, hi)
		return false
	}
	return true
}

func (f *fieldWriter) u8(name string, v int) {
	if f.check(name, v, 0, math.MaxUint8) {
		_ = f.w.WriteByte(byte(v))
	}
}

func (f *fieldWriter) u16(name string, v int) {
	if f.check(name, v, 0, math.MaxUint16) {
		f.w.WriteUShort(uint16(v))
	}
}

func (f *fieldWriter) i16(name string, v int) {
	if f.check(name, v, math.MinInt16, math.MaxInt16) {
		f.w.WriteShort(int16(v))
	}
}

func (f *fieldWriter) u32(name string, v int) {
	if f.check(name, v, 0, math.MaxUint32) {
		f.w.WriteUInt(uint32(v))
	}
}

func encodeEnemy(w *packet.Writer, e *model.Enemy) error {
	f := &fieldWriter{w: w}

	f.u16("level", e.Level)
	f.u16("base_accuracy", e.BaseAccuracy())
	f.u32("experience", e.Experience)
	f.u32("hp", e.HP)
	f.u16("str", e.STR)
	f.u16("tec", e.TEC)
	f.u16("vit", e.VIT)
	f.u16("wis", e.WIS)
	f.u16("agi", e.AGI)
	f.u16("luc", e.LUC)
	f.u8("damage_type", int(e.DamageType.Bitfield()))
	cond := e.ConditionalDrop().Condition()
	if cond != 0 && !cond.Valid() && f.err == nil {
		f.err = fmt.Errorf("%w: 0x%02X", model.ErrUnknownCondition, cond.Code())
	}
	f.u8("condition", int(cond.Code()))
	f.u16("flags", int(e.Flags.Bits()))

	dmg := e.DamageVulnerabilities
	f.i16("cut", dmg.Cut)
	f.i16("stab", dmg.Stab)
	f.i16("bash", dmg.Bash)
	f.i16("fire", dmg.Fire)
	f.i16("ice", dmg.Ice)
	f.i16("volt", dmg.Volt)
	f.i16("almighty", dmg.Almighty)

	dis := &e.DisableVulnerabilities
	f.i16("blind", dis.Blind)
	f.i16("paralysis", dis.Paralysis)
	f.i16("berserk", dis.Berserk)
	f.i16("plague", dis.Plague)
	f.i16("sleep", dis.Sleep)
	f.i16("poison", dis.Poison)
	f.i16("curse", dis.Curse)
	f.i16("petrification", dis.Petrification)
	f.i16("instant_death", dis.InstantDeath())
	f.i16("stunned", dis.Stunned)
	f.i16("head_bind", dis.HeadBind)
	f.i16("arm_bind", dis.ArmBind)
	f.i16("leg_bind", dis.LegBind)

	for _, slot := range []struct {
		name string
		drop *model.Drop
	}{
		{"first_drop", e.FirstDrop()},
		{"second_drop", e.SecondDrop()},
		{"conditional_drop", &e.ConditionalDrop().Drop},
	} {
		f.u16(slot.name+".item", slot.drop.Index())
		f.u16(slot.name+".chance", slot.drop.Chance())
	}

	return f.err
}
