// Command enemyedit reads, edits and re-encodes enemytable.tbl.
//
// Usage:
//
//	enemyedit list                               # one line per enemy
//	enemyedit dump -index 12                     # every field of one enemy
//	enemyedit set -index 12 hp=900 vuln.fire=150 # edit and save
//	enemyedit conditions                         # conditional drop codes
//	enemyedit export                             # snapshot into PostgreSQL
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/udisondev/enemyedit/internal/config"
	"github.com/udisondev/enemyedit/internal/data"
)

const defaultConfigPath = "config/enemyedit.yaml"

type command struct {
	name string
	desc string
	run  func(ctx context.Context, cfg config.Editor, args []string) error
}

var commands []command

func registerCommand(name, desc string, fn func(ctx context.Context, cfg config.Editor, args []string) error) {
	commands = append(commands, command{name: name, desc: desc, run: fn})
}

func init() {
	registerCommand("list", "List enemies with level, HP and attack type", runList)
	registerCommand("dump", "Print every field of one enemy (-index N)", runDump)
	registerCommand("set", "Edit fields of one enemy and save (-index N field=value ...)", runSet)
	registerCommand("conditions", "List conditional drop codes", runConditions)
	registerCommand("export", "Store a snapshot of the enemy table in PostgreSQL", runExport)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgPath := defaultConfigPath
	if p := os.Getenv("ENEMYEDIT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEditor(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		printUsage()
		return nil
	}

	for _, c := range commands {
		if c.name == args[0] {
			slog.Debug("running command", "command", c.name, "config", cfgPath)
			return c.run(ctx, cfg, args[1:])
		}
	}

	printUsage()
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: enemyedit <command> [flags]")
	fmt.Fprintln(os.Stderr, "\ncommands:")
	sorted := make([]command, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })
	for _, c := range sorted {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", c.name, c.desc)
	}
}

// tablePaths resolves the configured table files.
func tablePaths(cfg config.Editor) data.TablePaths {
	return data.TablePaths{
		Enemies:    cfg.Tables.Path(cfg.Tables.Enemies),
		EnemyNames: cfg.Tables.Path(cfg.Tables.EnemyNames),
		ItemNames:  cfg.Tables.Path(cfg.Tables.ItemNames),
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
