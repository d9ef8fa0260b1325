package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/udisondev/enemyedit/internal/config"
	"github.com/udisondev/enemyedit/internal/db"
	"github.com/udisondev/enemyedit/internal/editor"
	"github.com/udisondev/enemyedit/internal/model"
	"github.com/udisondev/enemyedit/internal/table"
)

// nameOrPlaceholder renders a name lookup failure inline instead of aborting a listing.
func nameOrPlaceholder(name string, err error) string {
	if errors.Is(err, table.ErrIndexOutOfRange) {
		return "<no name>"
	}
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return name
}

func runList(ctx context.Context, cfg config.Editor, _ []string) error {
	s, err := editor.Open(ctx, tablePaths(cfg))
	if err != nil {
		return err
	}
	return writeList(os.Stdout, s)
}

func writeList(out io.Writer, s *editor.Session) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tLV\tHP\tEXP\tATTACK")
	for _, e := range s.TableSet().Enemies.Enemies() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n",
			e.Index(), nameOrPlaceholder(e.Name()), e.Level, e.HP, e.Experience, e.DamageType)
	}
	return tw.Flush()
}

func runDump(ctx context.Context, cfg config.Editor, args []string) error {
	fl := flag.NewFlagSet("dump", flag.ContinueOnError)
	index := fl.Int("index", -1, "enemy index")
	if err := fl.Parse(args); err != nil {
		return err
	}

	s, err := editor.Open(ctx, tablePaths(cfg))
	if err != nil {
		return err
	}
	return writeDump(os.Stdout, s, *index)
}

func writeDump(out io.Writer, s *editor.Session, index int) error {
	e, err := s.Enemy(index)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "name\t%s\n", nameOrPlaceholder(e.Name()))
	fmt.Fprintf(tw, "damage_type\t%s (0x%02X)\n", e.DamageType, e.DamageType.Bitfield())
	for _, name := range editor.Fields() {
		v, err := s.Get(index, name)
		if err != nil {
			return err
		}
		ro := ""
		if !editor.Writable(name) {
			ro = " (read-only)"
		}
		fmt.Fprintf(tw, "%s\t%d%s\n", name, v, ro)
	}

	for _, slot := range []struct {
		label string
		drop  *model.Drop
	}{
		{"first_drop", e.FirstDrop()},
		{"second_drop", e.SecondDrop()},
		{"cond_drop", &e.ConditionalDrop().Drop},
	} {
		fmt.Fprintf(tw, "%s\t%s, %d%%\n", slot.label, nameOrPlaceholder(slot.drop.Name()), slot.drop.Chance())
	}
	if c := e.ConditionalDrop().Condition(); c != 0 {
		fmt.Fprintf(tw, "cond_drop condition\t%s: %s\n", c, c.Describe())
	}
	return tw.Flush()
}

func runSet(ctx context.Context, cfg config.Editor, args []string) error {
	fl := flag.NewFlagSet("set", flag.ContinueOnError)
	index := fl.Int("index", -1, "enemy index")
	force := fl.Bool("force", cfg.ForceSave, "overwrite even if the table changed on disk")
	if err := fl.Parse(args); err != nil {
		return err
	}
	if fl.NArg() == 0 {
		return errors.New("set: no field=value pairs given")
	}

	s, err := editor.Open(ctx, tablePaths(cfg))
	if err != nil {
		return err
	}
	if err := applyEdits(os.Stdout, s, *index, fl.Args()); err != nil {
		return err
	}
	return saveEdits(os.Stdout, s, *force)
}

// saveEdits writes the table only when some stored value changed.
func saveEdits(out io.Writer, s *editor.Session, force bool) error {
	dirty := s.Dirty()
	if len(dirty) == 0 {
		fmt.Fprintln(out, "no changes, table not written")
		return nil
	}
	if err := s.Save(force); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved enemies %v\n", dirty)
	return nil
}

// applyEdits parses field=value pairs and applies them in order.
func applyEdits(out io.Writer, s *editor.Session, index int, pairs []string) error {
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("set: %q is not field=value", pair)
		}
		value, err := parseValue(name, raw)
		if err != nil {
			return fmt.Errorf("set: %s: %w", name, err)
		}
		stored, err := s.Set(index, name, value)
		if err != nil {
			return err
		}
		if stored != value {
			fmt.Fprintf(out, "%s: %d stored as %d\n", name, value, stored)
		} else {
			fmt.Fprintf(out, "%s: %d\n", name, stored)
		}
	}
	return nil
}

// parseValue accepts integers in any Go base prefix, and condition names (or
// "none" to clear) for cond_drop.condition.
func parseValue(field, raw string) (int, error) {
	if field == "cond_drop.condition" {
		if strings.EqualFold(raw, "none") {
			return 0, nil
		}
		if c, err := model.ConditionByName(raw); err == nil {
			return int(c.Code()), nil
		}
	}
	switch strings.ToLower(raw) {
	case "true", "yes":
		return 1, nil
	case "false", "no":
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func runConditions(_ context.Context, _ config.Editor, _ []string) error {
	return writeConditions(os.Stdout)
}

func writeConditions(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tCONDITION")
	for _, c := range model.AllConditions {
		fmt.Fprintf(tw, "0x%02X\t%s\t%s\n", c.Code(), c, c.Describe())
	}
	return tw.Flush()
}

func runExport(ctx context.Context, cfg config.Editor, _ []string) error {
	s, err := editor.Open(ctx, tablePaths(cfg))
	if err != nil {
		return err
	}

	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	set := s.TableSet()
	id, err := database.Enemies().SaveSnapshot(ctx, set.Digest().String(), set.Enemies.Enemies())
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}
