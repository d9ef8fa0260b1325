package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/enemyedit/internal/data"
	"github.com/udisondev/enemyedit/internal/editor"
	"github.com/udisondev/enemyedit/internal/testutil"
)

func openSample(t *testing.T) *editor.Session {
	t.Helper()
	p := testutil.WriteTableSet(t, t.TempDir())
	s, err := editor.Open(context.Background(), data.TablePaths{
		Enemies:    p.Enemies,
		EnemyNames: p.EnemyNames,
		ItemNames:  p.ItemNames,
	})
	require.NoError(t, err)
	return s
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeList(&buf, openSample(t)))

	out := buf.String()
	assert.Contains(t, out, "Forest Rat")
	assert.Contains(t, out, "Venom Fly")
	assert.Contains(t, out, "Stab|NoPenalty")
	assert.Contains(t, out, "Untyped")
}

func TestWriteDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDump(&buf, openSample(t), 1))

	out := buf.String()
	assert.Contains(t, out, "Venom Fly")
	assert.Contains(t, out, "base_accuracy")
	assert.Contains(t, out, "(read-only)")
	assert.Contains(t, out, "Venom Sac, 100%")
	assert.Contains(t, out, "PoisonDamage: killed by poison damage")
}

func TestWriteDump_BadIndex(t *testing.T) {
	var buf bytes.Buffer
	err := writeDump(&buf, openSample(t), 42)
	assert.ErrorIs(t, err, data.ErrEnemyNotFound)
}

func TestApplyEdits(t *testing.T) {
	s := openSample(t)

	var buf bytes.Buffer
	err := applyEdits(&buf, s, 2, []string{
		"hp=0x400",
		"disable.instant_death=999",
		"cond_drop.condition=ElementalDamage",
		"damage_type.fire=true",
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "disable.instant_death: 999 stored as 0")

	hp, err := s.Get(2, "hp")
	require.NoError(t, err)
	assert.Equal(t, 1024, hp)

	code, err := s.Get(2, "cond_drop.condition")
	require.NoError(t, err)
	assert.Equal(t, 0x52, code)

	fire, err := s.Get(2, "damage_type.fire")
	require.NoError(t, err)
	assert.Equal(t, 1, fire)
}

func TestApplyEdits_Errors(t *testing.T) {
	s := openSample(t)
	var buf bytes.Buffer

	assert.Error(t, applyEdits(&buf, s, 0, []string{"hp"}))
	assert.Error(t, applyEdits(&buf, s, 0, []string{"hp=lots"}))
	assert.ErrorIs(t, applyEdits(&buf, s, 0, []string{"base_accuracy=1"}), editor.ErrReadOnlyField)
}

func TestSaveEdits(t *testing.T) {
	s := openSample(t)
	var buf bytes.Buffer

	// enemy 0 already has 40 hp
	require.NoError(t, applyEdits(&buf, s, 0, []string{"hp=40"}))
	buf.Reset()
	require.NoError(t, saveEdits(&buf, s, false))
	assert.Contains(t, buf.String(), "no changes")

	require.NoError(t, applyEdits(&buf, s, 1, []string{"cond_drop.condition=none"}))
	buf.Reset()
	require.NoError(t, saveEdits(&buf, s, false))
	assert.Contains(t, buf.String(), "saved enemies [1]")
	assert.Empty(t, s.Dirty())

	reopened, err := editor.Open(context.Background(), s.TableSet().Paths)
	require.NoError(t, err)
	code, err := reopened.Get(1, "cond_drop.condition")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		field string
		raw   string
		want  int
	}{
		{"hp", "120", 120},
		{"hp", "-5", -5},
		{"hp", "0x32", 0x32},
		{"execution_immunity", "yes", 1},
		{"execution_immunity", "False", 0},
		{"cond_drop.condition", "FirstTurn", 0x32},
		{"cond_drop.condition", "0x08", 0x08},
		{"cond_drop.condition", "none", 0},
		{"cond_drop.condition", "None", 0},
	}

	for _, tt := range tests {
		got, err := parseValue(tt.field, tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestWriteConditions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeConditions(&buf))

	out := buf.String()
	assert.Contains(t, out, "0x08")
	assert.Contains(t, out, "CurseDamage")
	assert.Contains(t, out, "0x52")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}
