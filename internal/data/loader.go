package data

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/enemyedit/internal/table"
)

// ErrTableModified is returned by SaveTableSet when the enemy table on disk
// changed since it was loaded.
var ErrTableModified = errors.New("enemy table modified on disk since load")

// Digest identifies the raw contents of a table file.
type Digest [blake2b.Size256]byte

// String returns the hex form of the digest.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// DigestOf hashes raw table bytes.
func DigestOf(data []byte) Digest {
	return blake2b.Sum256(data)
}

// TablePaths locates the files of one table set.
type TablePaths struct {
	Enemies    string // enemytable.tbl
	EnemyNames string // enemynametable.tbl
	ItemNames  string // useitemnametable.tbl
}

// TableSet is an enemy table loaded together with its name tables.
type TableSet struct {
	Paths   TablePaths
	Enemies *EnemyTable

	digest Digest
}

// Digest returns the digest of the enemy table as last loaded or saved.
func (s *TableSet) Digest() Digest { return s.digest }

// LoadTableSet reads and decodes the three table files. The name tables are
// loaded once and shared by every record.
func LoadTableSet(ctx context.Context, paths TablePaths) (*TableSet, error) {
	var (
		enemyRaw   []byte
		enemyNames *table.NameTable
		itemNames  *table.NameTable
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := readFile(ctx, paths.Enemies)
		enemyRaw = raw
		return err
	})
	g.Go(func() error {
		t, err := loadNameTable(ctx, paths.EnemyNames)
		enemyNames = t
		return err
	})
	g.Go(func() error {
		t, err := loadNameTable(ctx, paths.ItemNames)
		itemNames = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	enemies, err := DecodeEnemyTable(enemyRaw, enemyNames, itemNames)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", paths.Enemies, err)
	}
	if enemies.Len() > enemyNames.Len() {
		slog.Warn("enemy table has more records than names",
			"records", enemies.Len(),
			"names", enemyNames.Len())
	}

	set := &TableSet{Paths: paths, Enemies: enemies, digest: DigestOf(enemyRaw)}
	slog.Info("loaded enemy table",
		"path", paths.Enemies,
		"count", enemies.Len(),
		"digest", set.digest.String()[:16])
	return set, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, nil
}

func loadNameTable(ctx context.Context, path string) (*table.NameTable, error) {
	raw, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	t, err := table.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	slog.Debug("loaded name table", "path", path, "count", t.Len())
	return t, nil
}

// SaveTableSet encodes the enemy table and replaces the file on disk.
// Unless force is set it fails with ErrTableModified when the file no longer
// matches the digest taken at load time.
func SaveTableSet(s *TableSet, force bool) error {
	if !force {
		current, err := os.ReadFile(s.Paths.Enemies)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reading %s: %w", s.Paths.Enemies, err)
		}
		if err == nil && DigestOf(current) != s.digest {
			return fmt.Errorf("%w: %s", ErrTableModified, s.Paths.Enemies)
		}
	}

	raw, err := EncodeEnemyTable(s.Enemies)
	if err != nil {
		return fmt.Errorf("encoding enemy table: %w", err)
	}

	if err := writeFileAtomic(s.Paths.Enemies, raw); err != nil {
		return err
	}
	s.digest = DigestOf(raw)

	slog.Info("saved enemy table",
		"path", s.Paths.Enemies,
		"count", s.Enemies.Len(),
		"bytes", len(raw))
	return nil
}

// writeFileAtomic replaces path keeping its current permissions (0644 for a
// new file).
func writeFileAtomic(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644, renameio.IgnoreUmask()); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
