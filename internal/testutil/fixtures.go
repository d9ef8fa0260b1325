package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/udisondev/enemyedit/internal/packet"
	"github.com/udisondev/enemyedit/internal/table"
)

// EnemyRecord is one raw enemytable.tbl record, written field by field so
// codec tests do not depend on the encoder under test.
type EnemyRecord struct {
	Level        uint16
	BaseAccuracy uint16
	Experience   uint32
	HP           uint32
	Stats        [6]uint16 // STR, TEC, VIT, WIS, AGI, LUC
	DamageType   uint8
	Condition    uint8
	Flags        uint16
	DamageVuln   [7]int16  // Cut, Stab, Bash, Fire, Ice, Volt, Almighty
	DisableVuln  [13]int16 // Blind .. Petrification, InstantDeath, Stunned, HeadBind, ArmBind, LegBind
	Drops        [3][2]uint16
}

// EncodeEnemyRecords builds an enemytable.tbl image.
func EncodeEnemyRecords(records []EnemyRecord) []byte {
	w := packet.NewWriter(4 + len(records)*0x50)
	w.WriteUInt(uint32(len(records)))
	for _, rec := range records {
		w.WriteUShort(rec.Level)
		w.WriteUShort(rec.BaseAccuracy)
		w.WriteUInt(rec.Experience)
		w.WriteUInt(rec.HP)
		for _, s := range rec.Stats {
			w.WriteUShort(s)
		}
		_ = w.WriteByte(rec.DamageType)
		_ = w.WriteByte(rec.Condition)
		w.WriteUShort(rec.Flags)
		for _, v := range rec.DamageVuln {
			w.WriteShort(v)
		}
		for _, v := range rec.DisableVuln {
			w.WriteShort(v)
		}
		for _, d := range rec.Drops {
			w.WriteUShort(d[0])
			w.WriteUShort(d[1])
		}
	}
	return w.Bytes()
}

// SampleEnemyNames returns the enemy names matching SampleEnemyRecords.
func SampleEnemyNames() []string {
	return []string{"Forest Rat", "Venom Fly", "Snapper", "ヤマネコ"}
}

// SampleItemNames returns the item names referenced by SampleEnemyRecords.
func SampleItemNames() []string {
	return []string{"(none)", "Rat Tail", "Fly Wing", "Hard Shell", "Venom Sac", "Cat Claw"}
}

// SampleEnemyRecords returns three records covering the interesting encodings:
// a conditional drop, an instant death value above the lethal threshold and
// unknown flag bits.
func SampleEnemyRecords() []EnemyRecord {
	return []EnemyRecord{
		{
			Level: 1, BaseAccuracy: 95, Experience: 12, HP: 40,
			Stats:       [6]uint16{8, 6, 7, 5, 9, 10},
			DamageType:  0x02, // Bash
			DamageVuln:  [7]int16{100, 100, 100, 150, 100, 100, 100},
			DisableVuln: [13]int16{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100},
			Drops:       [3][2]uint16{{1, 60}, {0, 0}, {0, 0}},
		},
		{
			Level: 3, BaseAccuracy: 100, Experience: 55, HP: 120,
			Stats:       [6]uint16{12, 10, 9, 8, 14, 11},
			DamageType:  0x04 | 0x80, // Stab, NoPenalty
			Condition:   0x16,        // PoisonDamage
			Flags:       0x0001,
			DamageVuln:  [7]int16{100, 80, 100, 100, 120, 100, -50},
			DisableVuln: [13]int16{0, 50, 50, 50, 50, 0, 50, 50, 301, 50, 50, 50, 50},
			Drops:       [3][2]uint16{{2, 45}, {1, 10}, {4, 100}},
		},
		{
			Level: 7, BaseAccuracy: 110, Experience: 300, HP: 900,
			Stats:       [6]uint16{30, 20, 40, 10, 8, 12},
			DamageType:  0x00,
			Condition:   0x32, // FirstTurn
			Flags:       0x8000,
			DamageVuln:  [7]int16{50, 50, 50, 200, 200, 200, 100},
			DisableVuln: [13]int16{25, 25, 25, 25, 25, 25, 25, 25, 300, 25, 25, 25, 25},
			Drops:       [3][2]uint16{{3, 50}, {0, 0}, {3, 80}},
		},
	}
}

// TablePaths are the files written by WriteTableSet.
type TablePaths struct {
	Enemies    string
	EnemyNames string
	ItemNames  string
}

// WriteTableSet writes the sample tables into dir.
func WriteTableSet(tb testing.TB, dir string) TablePaths {
	tb.Helper()

	paths := TablePaths{
		Enemies:    filepath.Join(dir, "enemytable.tbl"),
		EnemyNames: filepath.Join(dir, "enemynametable.tbl"),
		ItemNames:  filepath.Join(dir, "useitemnametable.tbl"),
	}

	writeNames(tb, paths.EnemyNames, SampleEnemyNames())
	writeNames(tb, paths.ItemNames, SampleItemNames())
	if err := os.WriteFile(paths.Enemies, EncodeEnemyRecords(SampleEnemyRecords()), 0o644); err != nil {
		tb.Fatalf("writing %s: %v", paths.Enemies, err)
	}

	return paths
}

func writeNames(tb testing.TB, path string, names []string) {
	tb.Helper()
	raw, err := table.Encode(table.New(names))
	if err != nil {
		tb.Fatalf("encoding %s: %v", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
}
