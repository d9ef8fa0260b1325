package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/enemyedit/internal/model"
)

// ErrSnapshotNotFound is returned by LoadSnapshot for an unknown id.
var ErrSnapshotNotFound = errors.New("enemy snapshot not found")

// EnemyRow is the flattened form of one exported enemy.
type EnemyRow struct {
	Index        int32
	Name         string
	Level        int32
	Experience   int64
	HP           int64
	STR          int32
	TEC          int32
	VIT          int32
	WIS          int32
	AGI          int32
	LUC          int32
	BaseAccuracy int32
	DamageType   int16
	Flags        int32
	DamageVuln   []int32 // Cut, Stab, Bash, Fire, Ice, Volt, Almighty
	DisableVuln  []int32 // Blind .. LegBind, InstantDeath in table order

	FirstDropItem    int32
	FirstDropChance  int32
	SecondDropItem   int32
	SecondDropChance int32
	CondDropItem     int32
	CondDropChance   int32
	CondDropCode     int16
}

// EnemyRowFrom flattens e. Fails if the enemy name cannot be resolved.
func EnemyRowFrom(e *model.Enemy) (EnemyRow, error) {
	name, err := e.Name()
	if err != nil {
		return EnemyRow{}, fmt.Errorf("enemy %d name: %w", e.Index(), err)
	}

	dv := e.DamageVulnerabilities
	sv := &e.DisableVulnerabilities
	return EnemyRow{
		Index:        int32(e.Index()),
		Name:         name,
		Level:        int32(e.Level),
		Experience:   int64(e.Experience),
		HP:           int64(e.HP),
		STR:          int32(e.STR),
		TEC:          int32(e.TEC),
		VIT:          int32(e.VIT),
		WIS:          int32(e.WIS),
		AGI:          int32(e.AGI),
		LUC:          int32(e.LUC),
		BaseAccuracy: int32(e.BaseAccuracy()),
		DamageType:   int16(e.DamageType.Bitfield()),
		Flags:        int32(e.Flags.Bits()),
		DamageVuln: []int32{
			int32(dv.Cut), int32(dv.Stab), int32(dv.Bash), int32(dv.Fire),
			int32(dv.Ice), int32(dv.Volt), int32(dv.Almighty),
		},
		DisableVuln: []int32{
			int32(sv.Blind), int32(sv.Paralysis), int32(sv.Berserk), int32(sv.Plague),
			int32(sv.Sleep), int32(sv.Poison), int32(sv.Curse), int32(sv.Petrification),
			int32(sv.InstantDeath()), int32(sv.Stunned), int32(sv.HeadBind),
			int32(sv.ArmBind), int32(sv.LegBind),
		},
		FirstDropItem:    int32(e.FirstDrop().Index()),
		FirstDropChance:  int32(e.FirstDrop().Chance()),
		SecondDropItem:   int32(e.SecondDrop().Index()),
		SecondDropChance: int32(e.SecondDrop().Chance()),
		CondDropItem:     int32(e.ConditionalDrop().Index()),
		CondDropChance:   int32(e.ConditionalDrop().Chance()),
		CondDropCode:     int16(e.ConditionalDrop().Condition().Code()),
	}, nil
}

// SnapshotInfo describes one stored snapshot.
type SnapshotInfo struct {
	ID         uuid.UUID
	Digest     string
	EnemyCount int
	CreatedAt  time.Time
}

// Snapshot is a stored copy of a whole enemy table.
type Snapshot struct {
	SnapshotInfo
	Enemies []EnemyRow
}

// EnemyRepository stores enemy table snapshots.
type EnemyRepository struct {
	pool *pgxpool.Pool
}

// NewEnemyRepository creates a new enemy snapshot repository.
func NewEnemyRepository(pool *pgxpool.Pool) *EnemyRepository {
	return &EnemyRepository{pool: pool}
}

// SaveSnapshot stores all enemies under a new snapshot id in a single transaction.
func (r *EnemyRepository) SaveSnapshot(ctx context.Context, digest string, enemies []*model.Enemy) (uuid.UUID, error) {
	rows := make([]EnemyRow, 0, len(enemies))
	for _, e := range enemies {
		row, err := EnemyRowFrom(e)
		if err != nil {
			return uuid.Nil, err
		}
		rows = append(rows, row)
	}

	id := uuid.New()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx,
		`INSERT INTO enemy_snapshots (id, table_digest, enemy_count) VALUES ($1, $2, $3)`,
		id.String(), digest, len(rows),
	); err != nil {
		return uuid.Nil, fmt.Errorf("insert snapshot: %w", err)
	}

	if len(rows) > 0 {
		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(
				`INSERT INTO snapshot_enemies
				 (snapshot_id, enemy_index, name, level, experience, hp,
				  str, tec, vit, wis, agi, luc, base_accuracy, damage_type, flags,
				  damage_vuln, disable_vuln,
				  first_drop_item, first_drop_chance, second_drop_item, second_drop_chance,
				  cond_drop_item, cond_drop_chance, cond_drop_code)
				 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)`,
				id.String(), row.Index, row.Name, row.Level, row.Experience, row.HP,
				row.STR, row.TEC, row.VIT, row.WIS, row.AGI, row.LUC,
				row.BaseAccuracy, row.DamageType, row.Flags,
				row.DamageVuln, row.DisableVuln,
				row.FirstDropItem, row.FirstDropChance, row.SecondDropItem, row.SecondDropChance,
				row.CondDropItem, row.CondDropChance, row.CondDropCode,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range rows {
			if _, err := br.Exec(); err != nil {
				br.Close() //nolint:errcheck
				return uuid.Nil, fmt.Errorf("insert snapshot enemies: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return uuid.Nil, fmt.Errorf("close enemy batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit snapshot: %w", err)
	}

	slog.Info("saved enemy snapshot", "id", id, "count", len(rows))
	return id, nil
}

// ListSnapshots returns all snapshots, newest first.
func (r *EnemyRepository) ListSnapshots(ctx context.Context) ([]SnapshotInfo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, table_digest, enemy_count, created_at
		 FROM enemy_snapshots ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		info, err := scanSnapshotInfo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return out, nil
}

// LoadSnapshot loads a snapshot with its enemies in table order.
func (r *EnemyRepository) LoadSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	info, err := scanSnapshotInfo(r.pool.QueryRow(ctx,
		`SELECT id::text, table_digest, enemy_count, created_at
		 FROM enemy_snapshots WHERE id = $1`, id.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT enemy_index, name, level, experience, hp,
		        str, tec, vit, wis, agi, luc, base_accuracy, damage_type, flags,
		        damage_vuln, disable_vuln,
		        first_drop_item, first_drop_chance, second_drop_item, second_drop_chance,
		        cond_drop_item, cond_drop_chance, cond_drop_code
		 FROM snapshot_enemies WHERE snapshot_id = $1 ORDER BY enemy_index`, id.String())
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s enemies: %w", id, err)
	}
	defer rows.Close()

	snap := &Snapshot{SnapshotInfo: info, Enemies: make([]EnemyRow, 0, info.EnemyCount)}
	for rows.Next() {
		var row EnemyRow
		if err := rows.Scan(
			&row.Index, &row.Name, &row.Level, &row.Experience, &row.HP,
			&row.STR, &row.TEC, &row.VIT, &row.WIS, &row.AGI, &row.LUC,
			&row.BaseAccuracy, &row.DamageType, &row.Flags,
			&row.DamageVuln, &row.DisableVuln,
			&row.FirstDropItem, &row.FirstDropChance, &row.SecondDropItem, &row.SecondDropChance,
			&row.CondDropItem, &row.CondDropChance, &row.CondDropCode,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot %s enemy: %w", id, err)
		}
		snap.Enemies = append(snap.Enemies, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot %s enemies: %w", id, err)
	}
	return snap, nil
}

func scanSnapshotInfo(row pgx.Row) (SnapshotInfo, error) {
	var (
		info SnapshotInfo
		id   string
	)
	if err := row.Scan(&id, &info.Digest, &info.EnemyCount, &info.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return info, err
		}
		return info, fmt.Errorf("scanning snapshot: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return info, fmt.Errorf("parsing snapshot id %q: %w", id, err)
	}
	info.ID = parsed
	return info, nil
}
