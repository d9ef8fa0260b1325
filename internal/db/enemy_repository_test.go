package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/enemyedit/internal/model"
	"github.com/udisondev/enemyedit/internal/table"
	"github.com/udisondev/enemyedit/internal/testutil"
)

func sampleEnemies() []*model.Enemy {
	names := table.New([]string{"Forest Rat", "Venom Fly"})
	items := table.New([]string{"(none)", "Rat Tail", "Venom Sac"})

	rat := model.NewEnemy(names, 0, 95, model.NewDrop(items, 1), model.NewDrop(items, 0), model.NewConditionalDrop(items, 0))
	rat.Level = 1
	rat.HP = 40
	rat.FirstDrop().SetChance(60)

	cond := model.NewConditionalDrop(items, 2)
	cond.SetCondition(model.PoisonDamage)
	cond.SetChance(100)
	fly := model.NewEnemy(names, 1, 100, model.NewDrop(items, 0), model.NewDrop(items, 0), cond)
	fly.Level = 3
	fly.DamageType = model.DamageType{Stab: true, NoPenalty: true}
	fly.Flags.ExecutionImmunity = true
	fly.DamageVulnerabilities.Almighty = -50
	fly.DisableVulnerabilities.SetInstantDeath(250)

	return []*model.Enemy{rat, fly}
}

func TestEnemyRowFrom(t *testing.T) {
	row, err := EnemyRowFrom(sampleEnemies()[1])
	require.NoError(t, err)

	assert.Equal(t, int32(1), row.Index)
	assert.Equal(t, "Venom Fly", row.Name)
	assert.Equal(t, int16(0x84), row.DamageType)
	assert.Equal(t, int32(1), row.Flags)
	assert.Equal(t, int32(-50), row.DamageVuln[6])
	assert.Len(t, row.DisableVuln, 13)
	assert.Equal(t, int32(250), row.DisableVuln[8])
	assert.Equal(t, int16(0x16), row.CondDropCode)
	assert.Equal(t, int32(2), row.CondDropItem)
}

func TestEnemyRowFrom_NameOutOfRange(t *testing.T) {
	items := table.New(nil)
	e := model.NewEnemy(table.New(nil), 7, 0, model.NewDrop(items, 0), model.NewDrop(items, 0), model.NewConditionalDrop(items, 0))

	_, err := EnemyRowFrom(e)
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)
}

func TestEnemyRepository_SnapshotRoundTrip(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := NewEnemyRepository(pool)
	ctx := testutil.ContextWithTimeout(t, 30*time.Second)

	enemies := sampleEnemies()
	id, err := repo.SaveSnapshot(ctx, "abc123", enemies)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	snap, err := repo.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, snap.ID)
	assert.Equal(t, "abc123", snap.Digest)
	assert.Equal(t, 2, snap.EnemyCount)
	require.Len(t, snap.Enemies, 2)

	for i, e := range enemies {
		want, err := EnemyRowFrom(e)
		require.NoError(t, err)
		assert.Equal(t, want, snap.Enemies[i])
	}

	list, err := repo.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
}

func TestEnemyRepository_LoadSnapshotNotFound(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := NewEnemyRepository(pool)

	_, err := repo.LoadSnapshot(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestEnemyRepository_SaveSnapshotRejectsBadName(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := NewEnemyRepository(pool)

	items := table.New(nil)
	bad := model.NewEnemy(table.New(nil), 3, 0, model.NewDrop(items, 0), model.NewDrop(items, 0), model.NewConditionalDrop(items, 0))

	_, err := repo.SaveSnapshot(context.Background(), "x", []*model.Enemy{bad})
	assert.ErrorIs(t, err, table.ErrIndexOutOfRange)

	list, err := repo.ListSnapshots(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
